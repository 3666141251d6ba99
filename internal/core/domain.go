package core

import (
	"errors"
	"strings"
)

const (
	BirthdayToday    BirthdayStatus = "today"
	BirthdayUpcoming BirthdayStatus = "upcoming"
	BirthdayNormal   BirthdayStatus = "normal"
)

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

const (
	RSVPGoing    RSVP = "going"
	RSVPMaybe    RSVP = "maybe"
	RSVPNotGoing RSVP = "not-going"
	RSVPPending  RSVP = "pending"
)

const (
	RelationshipBest      = "Best Friend"
	RelationshipClose     = "Close Friend"
	RelationshipColleague = "Colleague"
	RelationshipFriend    = "Friend"
)

type (
	BirthdayStatus string
	Priority       string
	Trend          string
	RSVP           string

	Money struct {
		Cents int64
	}

	// Place is a venue or activity shown on the Discover screen.
	Place struct {
		ID            int64
		Name          string
		Category      string // Restaurant, Activity, Event, Venue, Entertainment
		Rating        float64
		Reviews       int
		PriceLevel    string // "$", "$$" or "$$$"
		DistanceMiles float64
		Description   string
		Tags          []string
		OpenNow       bool
		PriceRange    string
	}

	Friend struct {
		ID            int64
		Name          string
		Birthday      string // display form, e.g. "March 12"
		DaysUntil     int
		Status        BirthdayStatus
		Age           int
		Location      string
		MutualFriends int
		Relationship  string
		Interests     []string
		LastActive    string
	}

	WishlistItem struct {
		ID              int64
		Name            string
		Price           string // display price, e.g. "$199.99"
		OriginalPrice   string // empty when never discounted
		Store           string
		AddedBy         string
		Priority        Priority
		Trend           Trend
		TrendPercentage int
		InStock         bool
		Category        string // Electronics, Kitchen, Fashion, Books
		Rating          float64
		Reviews         int
	}

	Event struct {
		ID           int64
		Title        string
		Date         string
		Time         string
		Location     string
		Attendees    int
		MaxAttendees int
		Organizer    string
		Category     string
		Price        string
		Rating       float64
		RSVP         RSVP
	}

	Achievement struct {
		ID          int64
		Title       string
		Description string
		Unlocked    bool
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")
	ErrNegativeDays  = errors.New("negative day count")
	ErrNegativeCount = errors.New("negative count")
)

// IsClose reports whether the friend is a close or best friend.
func (f Friend) IsClose() bool {
	return f.Relationship == RelationshipClose || f.Relationship == RelationshipBest
}

// OnSale reports whether the displayed price differs from the original one.
func (w WishlistItem) OnSale() bool {
	return w.OriginalPrice != "" && w.OriginalPrice != w.Price
}

func (p Place) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (f Friend) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}
	if f.DaysUntil < 0 {
		return ErrNegativeDays
	}
	return nil
}

// Validate checks the structural fields only. Prices are left to the
// aggregator, whose parse policy decides what a malformed one means.
func (w WishlistItem) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(w.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyName
	}
	if e.Attendees < 0 || e.MaxAttendees < 0 {
		return ErrNegativeCount
	}
	return nil
}

func (a Achievement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyName
	}
	return nil
}
