package views

import (
	"strconv"
	"strings"

	"celebrate/internal/core"
	"celebrate/internal/engine"
)

// Screen names a view.
type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenDiscover Screen = "discover"
	ScreenFriends  Screen = "friends"
	ScreenWishlist Screen = "wishlist"
	ScreenProfile  Screen = "profile"
)

// Screens lists every screen in tab order.
func Screens() []Screen {
	return []Screen{ScreenHome, ScreenDiscover, ScreenFriends, ScreenWishlist, ScreenProfile}
}

func (s Screen) IsValid() bool {
	switch s {
	case ScreenHome, ScreenDiscover, ScreenFriends, ScreenWishlist, ScreenProfile:
		return true
	default:
		return false
	}
}

// Discover chip thresholds.
const (
	RecommendedMinRating = 4.5
	NearbyMaxMiles       = 1.0
	PopularMinReviews    = 200
)

func idString(id int64) string { return strconv.FormatInt(id, 10) }

// PlaceSchema drives the Discover screen. Chip ids are plural or marketing
// names, record tags are singular.
func PlaceSchema() engine.Schema[core.Place] {
	return engine.Schema[core.Place]{
		ID:       func(p core.Place) string { return idString(p.ID) },
		Category: func(p core.Place) string { return p.Category },
		Search: []func(core.Place) string{
			func(p core.Place) string { return p.Name },
			func(p core.Place) string { return p.Description },
			func(p core.Place) string { return strings.Join(p.Tags, " ") },
		},
		Filters: map[string]engine.Predicate[core.Place]{
			"recommended": func(p core.Place) bool { return p.Rating >= RecommendedMinRating },
			"nearby":      func(p core.Place) bool { return p.DistanceMiles <= NearbyMaxMiles },
			"popular":     func(p core.Place) bool { return p.Reviews >= PopularMinReviews },
			"budget":      func(p core.Place) bool { return p.PriceLevel == "$" },
			"premium":     func(p core.Place) bool { return p.PriceLevel == "$$$" },
		},
		FilterOrder: []string{"recommended", "nearby", "popular", "budget", "premium"},
		Categories:  []string{"Restaurant", "Activity", "Event", "Venue", "Entertainment"},
		CategoryAliases: map[string]string{
			"restaurants":   "Restaurant",
			"activities":    "Activity",
			"events":        "Event",
			"venues":        "Venue",
			"entertainment": "Entertainment",
			"shows":         "Entertainment",
		},
	}
}

func FriendSchema() engine.Schema[core.Friend] {
	return engine.Schema[core.Friend]{
		ID:     func(f core.Friend) string { return idString(f.ID) },
		Search: []func(core.Friend) string{func(f core.Friend) string { return f.Name }},
		Filters: map[string]engine.Predicate[core.Friend]{
			"today":    func(f core.Friend) bool { return f.Status == core.BirthdayToday },
			"upcoming": func(f core.Friend) bool { return f.Status == core.BirthdayUpcoming },
			"close":    core.Friend.IsClose,
		},
		FilterOrder: []string{"today", "upcoming", "close"},
	}
}

func WishlistSchema() engine.Schema[core.WishlistItem] {
	return engine.Schema[core.WishlistItem]{
		ID:       func(w core.WishlistItem) string { return idString(w.ID) },
		Category: func(w core.WishlistItem) string { return w.Category },
		Search:   []func(core.WishlistItem) string{func(w core.WishlistItem) string { return w.Name }},
		Filters: map[string]engine.Predicate[core.WishlistItem]{
			"high":     func(w core.WishlistItem) bool { return w.Priority == core.PriorityHigh },
			"sale":     core.WishlistItem.OnSale,
			"trending": func(w core.WishlistItem) bool { return w.Trend == core.TrendDown },
		},
		FilterOrder: []string{"high", "sale", "trending"},
	}
}

func AchievementSchema() engine.Schema[core.Achievement] {
	return engine.Schema[core.Achievement]{
		ID: func(a core.Achievement) string { return idString(a.ID) },
		Search: []func(core.Achievement) string{
			func(a core.Achievement) string { return a.Title },
			func(a core.Achievement) string { return a.Description },
		},
		Filters: map[string]engine.Predicate[core.Achievement]{
			"unlocked": func(a core.Achievement) bool { return a.Unlocked },
			"locked":   func(a core.Achievement) bool { return !a.Unlocked },
		},
		FilterOrder: []string{"unlocked", "locked"},
	}
}

// WishlistAggregate is the aggregate spec of the wishlist banner.
func WishlistAggregate(policy engine.ParsePolicy) engine.AggregateSpec[core.WishlistItem] {
	return engine.AggregateSpec[core.WishlistItem]{
		ID:              func(w core.WishlistItem) string { return idString(w.ID) },
		Price:           func(w core.WishlistItem) string { return w.Price },
		OriginalPrice:   func(w core.WishlistItem) string { return w.OriginalPrice },
		Trend:           func(w core.WishlistItem) string { return string(w.Trend) },
		DecreasingTrend: string(core.TrendDown),
		Category:        func(w core.WishlistItem) string { return w.Category },
		Policy:          policy,
	}
}
