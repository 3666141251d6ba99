package engine

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"celebrate/internal/core"
	"celebrate/internal/log"
)

func testPlaces() []core.Place {
	return []core.Place{
		{ID: 1, Name: "The Rooftop Lounge", Category: "Restaurant", Rating: 4.8, Reviews: 324, PriceLevel: "$$$", DistanceMiles: 0.5},
		{ID: 2, Name: "Escape Room Adventure", Category: "Activity", Rating: 4.6, Reviews: 156, PriceLevel: "$$", DistanceMiles: 1.2},
		{ID: 3, Name: "Jazz & Blues Night", Category: "Event", Rating: 4.9, Reviews: 89, PriceLevel: "$", DistanceMiles: 2.1},
		{ID: 4, Name: "Bowling Alley & Bar", Category: "Venue", Rating: 4.4, Reviews: 267, PriceLevel: "$$", DistanceMiles: 0.8},
		{ID: 5, Name: "Artisan Coffee & Gallery", Category: "Restaurant", Rating: 4.7, Reviews: 198, PriceLevel: "$", DistanceMiles: 0.3},
		{ID: 6, Name: "Comedy Club Downtown", Category: "Entertainment", Rating: 4.5, Reviews: 142, PriceLevel: "$$", DistanceMiles: 1.8},
	}
}

func placeSchema() Schema[core.Place] {
	return Schema[core.Place]{
		ID:       func(p core.Place) string { return strconv.FormatInt(p.ID, 10) },
		Category: func(p core.Place) string { return p.Category },
		Search:   []func(core.Place) string{func(p core.Place) string { return p.Name }},
		Filters: map[string]Predicate[core.Place]{
			"nearby":  func(p core.Place) bool { return p.DistanceMiles <= 1 },
			"popular": func(p core.Place) bool { return p.Reviews >= 200 },
			"budget":  func(p core.Place) bool { return p.PriceLevel == "$" },
		},
		FilterOrder:     []string{"nearby", "popular", "budget"},
		Categories:      []string{"Restaurant", "Activity", "Event", "Venue", "Entertainment"},
		CategoryAliases: map[string]string{"restaurants": "Restaurant", "shows": "Entertainment"},
	}
}

func ids(places []core.Place) []int64 {
	out := make([]int64, len(places))
	for i, p := range places {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter_Scenarios(t *testing.T) {
	e := New(placeSchema(), log.Discard())
	places := testPlaces()

	tests := []struct {
		name string
		sel  Selector
		want []int64
	}{
		{"all and empty query returns everything", Selector{Category: "all"}, []int64{1, 2, 3, 4, 5, 6}},
		{"zero selector returns everything", Selector{}, []int64{1, 2, 3, 4, 5, 6}},
		{"category is case-insensitive", Selector{Category: "restaurant"}, []int64{1, 5}},
		{"category alias", Selector{Category: "Restaurants"}, []int64{1, 5}},
		{"named filter", Selector{Filter: "nearby"}, []int64{1, 4, 5}},
		{"query is case-insensitive substring", Selector{Query: "BAR"}, []int64{4}},
		{"conjunction", Selector{Category: "restaurant", Filter: "budget", Query: "coffee"}, []int64{5}},
		{"empty result", Selector{Category: "venue", Filter: "budget"}, []int64{}},
		{"unknown named filter is permissive", Selector{Filter: "recommended"}, []int64{1, 2, 3, 4, 5, 6}},
		{"unknown category is permissive", Selector{Category: "museums"}, []int64{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(e.Filter(places, tt.sel))
			if !equalIDs(got, tt.want) {
				t.Errorf("Filter(%+v) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}

func TestFilter_ReturnsCopy(t *testing.T) {
	e := New(placeSchema(), log.Discard())
	places := testPlaces()

	got := e.Filter(places, Selector{Category: All})
	if len(got) != len(places) {
		t.Fatalf("expected %d records, got %d", len(places), len(got))
	}
	got[0].Name = "changed"
	if places[0].Name == "changed" {
		t.Fatalf("Filter result aliases the input slice")
	}
}

func TestFilter_UnknownIDsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Handler: slog.NewTextHandler(&buf, nil)})
	e := New(placeSchema(), logger)

	e.Filter(testPlaces(), Selector{Category: "museums", Filter: "recommended"})

	out := buf.String()
	for _, want := range []string{"selector_category=museums", "selector_filter=recommended", "component=filter", "operation=filter"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestFilter_NoKnownCategoriesComparesDirectly(t *testing.T) {
	schema := placeSchema()
	schema.Categories = nil
	schema.CategoryAliases = nil
	e := New(schema, log.Discard())

	if got := e.Filter(testPlaces(), Selector{Category: "museums"}); len(got) != 0 {
		t.Fatalf("expected strict match without a known set, got %v", ids(got))
	}
	if got := ids(e.Filter(testPlaces(), Selector{Category: "VENUE"})); !equalIDs(got, []int64{4}) {
		t.Fatalf("expected [4], got %v", got)
	}
}

// selectors enumerates every combination of a small selector vocabulary.
func selectors() []Selector {
	var out []Selector
	for _, c := range []string{"", "all", "restaurant", "Venue", "event", "museums"} {
		for _, f := range []string{"", "all", "nearby", "popular", "budget", "unknown"} {
			for _, q := range []string{"", "a", "ROOM", "&", "zzz"} {
				out = append(out, Selector{Category: c, Filter: f, Query: q})
			}
		}
	}
	return out
}

func TestFilter_Properties(t *testing.T) {
	e := New(placeSchema(), log.Discard())
	schema := placeSchema()
	places := testPlaces()

	for _, sel := range selectors() {
		once := e.Filter(places, sel)

		// Idempotence
		if twice := e.Filter(once, sel); !equalIDs(ids(once), ids(twice)) {
			t.Fatalf("%+v: not idempotent: %v then %v", sel, ids(once), ids(twice))
		}

		// Order preservation: output is a subsequence of the input.
		j := 0
		for _, p := range places {
			if j < len(once) && once[j].ID == p.ID {
				j++
			}
		}
		if j != len(once) {
			t.Fatalf("%+v: %v is not a subsequence of the input", sel, ids(once))
		}

		// Conjunction: inclusion iff each predicate holds on its own.
		included := make(map[int64]bool, len(once))
		for _, p := range once {
			included[p.ID] = true
		}
		for _, p := range places {
			cat := e.Matches(p, Selector{Category: sel.Category})
			named := e.Matches(p, Selector{Filter: sel.Filter})
			text := e.Matches(p, Selector{Query: sel.Query})
			if want := cat && named && text; included[p.ID] != want {
				t.Fatalf("%+v: record %d included=%v, predicates=%v/%v/%v", sel, p.ID, included[p.ID], cat, named, text)
			}
		}

		// Text predicate agrees with a direct substring check.
		for _, p := range places {
			want := sel.Query == "" || strings.Contains(strings.ToLower(schema.Search[0](p)), strings.ToLower(sel.Query))
			if got := e.Matches(p, Selector{Query: sel.Query}); got != want {
				t.Fatalf("query %q on %q: got %v, want %v", sel.Query, p.Name, got, want)
			}
		}
	}
}

func TestFilterCounts(t *testing.T) {
	e := New(placeSchema(), log.Discard())

	got := e.FilterCounts(testPlaces())
	want := []FilterCount{{All, 6}, {"nearby", 3}, {"popular", 2}, {"budget", 2}}
	if len(got) != len(want) {
		t.Fatalf("FilterCounts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterCounts[%d] = %v, want %v", i, got[i], want[i])
		}
	}

}

func TestCategoryCounts(t *testing.T) {
	e := New(placeSchema(), log.Discard())

	got := e.CategoryCounts(testPlaces())
	want := []core.CategoryCount{
		{Name: "Restaurant", Count: 2},
		{Name: "Activity", Count: 1},
		{Name: "Event", Count: 1},
		{Name: "Venue", Count: 1},
		{Name: "Entertainment", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("CategoryCounts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CategoryCounts[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
