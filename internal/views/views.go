// Package views turns record snapshots into screen view models: the filtered
// records for the current selector, chip counts, aggregates and per-record
// tiers. Views are plain values and must be treated as read-only.
package views

import (
	"github.com/shopspring/decimal"

	"celebrate/internal/core"
	"celebrate/internal/engine"
)

type DiscoverView struct {
	Selector   engine.Selector
	Places     []core.Place
	Chips      []engine.FilterCount
	Categories []core.CategoryCount
	Total      int
}

// FriendCard is a friend with the derived urgency and tone keys.
type FriendCard struct {
	core.Friend
	Urgency          engine.Tier
	UrgencyText      string
	StatusTone       Tone
	RelationshipTone Tone
}

type FriendsView struct {
	Selector engine.Selector
	Friends  []FriendCard
	Chips    []engine.FilterCount
	Total    int
}

type WishlistCard struct {
	core.WishlistItem
	DiscountPercent int64
	Deal            engine.Tier
	PriorityTone    Tone
}

// WishlistView carries the filtered cards and the banner summary. The
// summary always covers the whole wishlist, not the current selection.
type WishlistView struct {
	Selector    engine.Selector
	Items       []WishlistCard
	Chips       []engine.FilterCount
	Summary     core.AggregateResult
	ShowSavings bool
}

type EventCard struct {
	core.Event
	RSVPLabel string
	RSVPTone  Tone
	SpotsLeft int
}

// HomeView splits the birthdays that fall in a non-fallback birthday tier:
// Highlights are the ones the highlight table flags, Upcoming the rest.
type HomeView struct {
	Greeting     string
	GreetingTier engine.Tier
	Highlights   []FriendCard
	Upcoming     []FriendCard
	UrgentCount  int
	Events       []EventCard
}

// HomeTables are the classifiers of the home screen.
type HomeTables struct {
	Birthday  engine.ThresholdTable
	Highlight engine.ThresholdTable
	Greeting  engine.ThresholdTable
}

type ProfileView struct {
	Selector     engine.Selector
	Achievements []core.Achievement
	Chips        []engine.FilterCount
	Unlocked     int
	Total        int
}

// Dashboard is every screen computed from one round of snapshots.
type Dashboard struct {
	Home     HomeView
	Discover DiscoverView
	Friends  FriendsView
	Wishlist WishlistView
	Profile  ProfileView
}

// Engines holds one filter engine per record type.
type Engines struct {
	Places       *engine.Engine[core.Place]
	Friends      *engine.Engine[core.Friend]
	Wishlist     *engine.Engine[core.WishlistItem]
	Achievements *engine.Engine[core.Achievement]
}

func BuildDiscover(e *engine.Engine[core.Place], places []core.Place, sel engine.Selector) DiscoverView {
	return DiscoverView{
		Selector:   sel,
		Places:     e.Filter(places, sel),
		Chips:      e.FilterCounts(places),
		Categories: e.CategoryCounts(places),
		Total:      len(places),
	}
}

func BuildFriends(e *engine.Engine[core.Friend], birthdays engine.ThresholdTable, friends []core.Friend, sel engine.Selector) (FriendsView, error) {
	filtered := e.Filter(friends, sel)
	cards, err := friendCards(birthdays, filtered)
	if err != nil {
		return FriendsView{}, err
	}
	return FriendsView{
		Selector: sel,
		Friends:  cards,
		Chips:    e.FilterCounts(friends),
		Total:    len(friends),
	}, nil
}

func friendCards(birthdays engine.ThresholdTable, friends []core.Friend) ([]FriendCard, error) {
	cards := make([]FriendCard, 0, len(friends))
	for _, f := range friends {
		tier, err := birthdays.Classify(float64(f.DaysUntil))
		if err != nil {
			return nil, err
		}
		cards = append(cards, FriendCard{
			Friend:           f,
			Urgency:          tier,
			UrgencyText:      UrgencyText(f.DaysUntil),
			StatusTone:       StatusTone(f.Status),
			RelationshipTone: RelationshipTone(f.Relationship),
		})
	}
	return cards, nil
}

func BuildWishlist(e *engine.Engine[core.WishlistItem], discounts engine.ThresholdTable, spec engine.AggregateSpec[core.WishlistItem], items []core.WishlistItem, sel engine.Selector) (WishlistView, error) {
	summary, err := engine.Aggregate(items, spec)
	if err != nil {
		return WishlistView{}, err
	}

	filtered := e.Filter(items, sel)
	cards := make([]WishlistCard, 0, len(filtered))
	for _, item := range filtered {
		pct := DiscountPercent(item)
		deal, err := discounts.Classify(float64(pct))
		if err != nil {
			return WishlistView{}, err
		}
		cards = append(cards, WishlistCard{
			WishlistItem:    item,
			DiscountPercent: pct,
			Deal:            deal,
			PriorityTone:    PriorityTone(item.Priority),
		})
	}

	return WishlistView{
		Selector:    sel,
		Items:       cards,
		Chips:       e.FilterCounts(items),
		Summary:     summary,
		ShowSavings: summary.HasSavings(),
	}, nil
}

// DiscountPercent is the rounded saving against the original price, 0 when
// the item is not on sale or either price does not parse.
func DiscountPercent(item core.WishlistItem) int64 {
	if !item.OnSale() {
		return 0
	}
	price, err := core.ParsePrice(item.Price)
	if err != nil {
		return 0
	}
	original, err := core.ParsePrice(item.OriginalPrice)
	if err != nil || original.Cents <= price.Cents {
		return 0
	}
	saving := decimal.NewFromInt(original.Cents - price.Cents)
	return saving.Div(decimal.NewFromInt(original.Cents)).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func BuildHome(tables HomeTables, hour int, friends []core.Friend, events []core.Event) (HomeView, error) {
	greeting, err := tables.Greeting.Classify(float64(hour))
	if err != nil {
		return HomeView{}, err
	}

	all, err := friendCards(tables.Birthday, friends)
	if err != nil {
		return HomeView{}, err
	}
	var highlights, upcoming []FriendCard
	for _, c := range all {
		if c.Urgency == tables.Birthday.Fallback() {
			continue
		}
		tier, err := tables.Highlight.Classify(float64(c.DaysUntil))
		if err != nil {
			return HomeView{}, err
		}
		if tier == tables.Highlight.Fallback() {
			upcoming = append(upcoming, c)
		} else {
			highlights = append(highlights, c)
		}
	}

	cards := make([]EventCard, 0, len(events))
	for _, ev := range events {
		spots := ev.MaxAttendees - ev.Attendees
		if spots < 0 {
			spots = 0
		}
		cards = append(cards, EventCard{
			Event:     ev,
			RSVPLabel: RSVPLabel(ev.RSVP),
			RSVPTone:  RSVPTone(ev.RSVP),
			SpotsLeft: spots,
		})
	}

	return HomeView{
		Greeting:     GreetingText(string(greeting)),
		GreetingTier: greeting,
		Highlights:   highlights,
		Upcoming:     upcoming,
		UrgentCount:  len(highlights),
		Events:       cards,
	}, nil
}

func BuildProfile(e *engine.Engine[core.Achievement], achievements []core.Achievement, sel engine.Selector) ProfileView {
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	return ProfileView{
		Selector:     sel,
		Achievements: e.Filter(achievements, sel),
		Chips:        e.FilterCounts(achievements),
		Unlocked:     unlocked,
		Total:        len(achievements),
	}
}
