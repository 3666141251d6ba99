package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"celebrate/internal/core"
	"celebrate/internal/log"
	"celebrate/internal/store/memory"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "celebrate.db")
	repo, err := NewRepository(dbPath, log.Discard())
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, dbPath
}

func TestRepositoryMatchesFixtures(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	want := memory.Fixtures()

	places, err := repo.Places(ctx)
	if err != nil {
		t.Fatalf("Places: %v", err)
	}
	if !reflect.DeepEqual(places, want.Places) {
		t.Errorf("Places mismatch:\n got %+v\nwant %+v", places, want.Places)
	}

	friends, err := repo.Friends(ctx)
	if err != nil {
		t.Fatalf("Friends: %v", err)
	}
	if !reflect.DeepEqual(friends, want.Friends) {
		t.Errorf("Friends mismatch:\n got %+v\nwant %+v", friends, want.Friends)
	}

	items, err := repo.WishlistItems(ctx)
	if err != nil {
		t.Fatalf("WishlistItems: %v", err)
	}
	if !reflect.DeepEqual(items, want.Wishlist) {
		t.Errorf("WishlistItems mismatch:\n got %+v\nwant %+v", items, want.Wishlist)
	}

	events, err := repo.Events(ctx)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if !reflect.DeepEqual(events, want.Events) {
		t.Errorf("Events mismatch:\n got %+v\nwant %+v", events, want.Events)
	}

	achievements, err := repo.Achievements(ctx)
	if err != nil {
		t.Fatalf("Achievements: %v", err)
	}
	if !reflect.DeepEqual(achievements, want.Achievements) {
		t.Errorf("Achievements mismatch:\n got %+v\nwant %+v", achievements, want.Achievements)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	repo, dbPath := newTestRepository(t)

	if err := RunMigrations(dbPath); err != nil {
		t.Fatalf("second RunMigrations: %v", err)
	}

	version, dirty, err := SchemaVersion(dbPath)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version != 2 || dirty {
		t.Errorf("SchemaVersion = %d dirty=%v, want 2 clean", version, dirty)
	}

	places, err := repo.Places(context.Background())
	if err != nil || len(places) != 6 {
		t.Fatalf("Places after re-migration = %d, %v", len(places), err)
	}
}

func TestDecodeStrings(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"empty column", "", []string{}, false},
		{"empty array", "[]", []string{}, false},
		{"null", "null", []string{}, false},
		{"values", `["Jazz","Live Music"]`, []string{"Jazz", "Live Music"}, false},
		{"not json", "Jazz, Live Music", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeStrings(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeStrings(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeStrings(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRepositoryRejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name  string
		stmt  string
		read  func(*Repository, context.Context) error
		want  error
		label string
	}{
		{
			"unnamed place",
			`INSERT INTO places (id, name, category) VALUES (99, '', 'Venue')`,
			func(r *Repository, ctx context.Context) error { _, err := r.Places(ctx); return err },
			core.ErrEmptyName, "place 99",
		},
		{
			"wishlist item without category",
			`INSERT INTO wishlist_items (id, name, price, priority, trend, category) VALUES (99, 'Mixer', '$10', 'low', 'up', ' ')`,
			func(r *Repository, ctx context.Context) error { _, err := r.WishlistItems(ctx); return err },
			core.ErrEmptyCategory, "wishlist item 99",
		},
		{
			"event with negative attendees",
			`INSERT INTO events (id, title, attendees, rsvp) VALUES (99, 'Picnic', -2, 'going')`,
			func(r *Repository, ctx context.Context) error { _, err := r.Events(ctx); return err },
			core.ErrNegativeCount, "event 99",
		},
		{
			"untitled achievement",
			`INSERT INTO achievements (id, title) VALUES (99, '')`,
			func(r *Repository, ctx context.Context) error { _, err := r.Achievements(ctx); return err },
			core.ErrEmptyName, "achievement 99",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestRepository(t)
			ctx := context.Background()
			if _, err := repo.db.ExecContext(ctx, tt.stmt); err != nil {
				t.Fatalf("insert: %v", err)
			}
			err := tt.read(repo, ctx)
			if !errors.Is(err, tt.want) || !strings.Contains(err.Error(), tt.label) {
				t.Fatalf("read error = %v, want %v naming %q", err, tt.want, tt.label)
			}
		})
	}
}
