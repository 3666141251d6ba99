package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"celebrate/internal/engine"
	"celebrate/internal/views"
)

func writeJSON(w io.Writer, view any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

func writeText(w io.Writer, view any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch v := view.(type) {
	case views.HomeView:
		renderHome(tw, v)
	case views.DiscoverView:
		renderDiscover(tw, v)
	case views.FriendsView:
		renderFriends(tw, v)
	case views.WishlistView:
		renderWishlist(tw, v)
	case views.ProfileView:
		renderProfile(tw, v)
	case *views.Dashboard:
		renderHome(tw, v.Home)
		fmt.Fprintln(tw)
		renderDiscover(tw, v.Discover)
		fmt.Fprintln(tw)
		renderFriends(tw, v.Friends)
		fmt.Fprintln(tw)
		renderWishlist(tw, v.Wishlist)
		fmt.Fprintln(tw)
		renderProfile(tw, v.Profile)
	default:
		return fmt.Errorf("no text renderer for %T", view)
	}
	return tw.Flush()
}

func chipLine(chips []engine.FilterCount) string {
	parts := make([]string, len(chips))
	for i, c := range chips {
		parts[i] = fmt.Sprintf("%s (%d)", c.ID, c.Count)
	}
	return strings.Join(parts, "  ")
}

func renderHome(w io.Writer, v views.HomeView) {
	fmt.Fprintf(w, "%s!\n\nToday's highlights (%d urgent)\n", v.Greeting, v.UrgentCount)
	writeBirthdays(w, v.Highlights)
	fmt.Fprintln(w, "\nUpcoming birthdays")
	writeBirthdays(w, v.Upcoming)
	fmt.Fprintln(w, "\nEvents")
	for _, e := range v.Events {
		fmt.Fprintf(w, "  %s\t%s %s\t%s\t%d/%d going\t%s\n",
			e.Title, e.Date, e.Time, e.Location, e.Attendees, e.MaxAttendees, e.RSVPLabel)
	}
}

func writeBirthdays(w io.Writer, cards []views.FriendCard) {
	for _, f := range cards {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Name, f.Birthday, f.UrgencyText, f.Urgency)
	}
}

func renderDiscover(w io.Writer, v views.DiscoverView) {
	fmt.Fprintf(w, "Discover: %d of %d places\n", len(v.Places), v.Total)
	fmt.Fprintf(w, "Filters: %s\n", chipLine(v.Chips))
	for _, p := range v.Places {
		fmt.Fprintf(w, "  %s\t%s\t%.1f★ (%s reviews)\t%s\t%.1f mi\n",
			p.Name, p.Category, p.Rating, humanize.Comma(int64(p.Reviews)), p.PriceLevel, p.DistanceMiles)
	}
}

func renderFriends(w io.Writer, v views.FriendsView) {
	fmt.Fprintf(w, "Friends: %d of %d\n", len(v.Friends), v.Total)
	fmt.Fprintf(w, "Filters: %s\n", chipLine(v.Chips))
	for _, f := range v.Friends {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", f.Name, f.Relationship, f.Birthday, f.UrgencyText, f.Location)
	}
}

func renderWishlist(w io.Writer, v views.WishlistView) {
	s := v.Summary
	fmt.Fprintf(w, "Wishlist: %d items, %s total, %d price drops\n", s.TotalCount, s.TotalValue, s.TrendCount)
	if v.ShowSavings {
		fmt.Fprintf(w, "You're saving %s!\n", s.TotalSavings)
	}
	if len(s.Skipped) > 0 {
		fmt.Fprintf(w, "%d items skipped with unreadable prices\n", len(s.Skipped))
	}
	fmt.Fprintf(w, "Filters: %s\n", chipLine(v.Chips))
	for _, item := range v.Items {
		sale := ""
		if item.DiscountPercent > 0 {
			sale = fmt.Sprintf("-%d%% (%s)", item.DiscountPercent, item.Deal)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s reviews\t%s\n",
			item.Name, item.Price, sale, item.Priority, humanize.Comma(int64(item.Reviews)), item.Store)
	}
}

func renderProfile(w io.Writer, v views.ProfileView) {
	fmt.Fprintf(w, "Achievements: %d of %d unlocked\n", v.Unlocked, v.Total)
	fmt.Fprintf(w, "Filters: %s\n", chipLine(v.Chips))
	for _, a := range v.Achievements {
		state := "locked"
		if a.Unlocked {
			state = "unlocked"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", a.Title, a.Description, state)
	}
}
