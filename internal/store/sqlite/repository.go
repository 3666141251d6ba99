// Package sqlite is a read-only record source backed by an SQLite file.
// The schema and seed records are applied by embedded migrations.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"celebrate/internal/core"
	"celebrate/internal/log"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db      *sql.DB
	queries *Queries
	logger  *log.Logger
}

func NewRepository(dbPath string, logger *log.Logger) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger = log.OrDefault(logger, log.ComponentStore)

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	version, dirty, err := SchemaVersion(dbPath)
	if err != nil {
		db.Close()
		return nil, err
	}
	if dirty {
		db.Close()
		return nil, fmt.Errorf("schema version %d is dirty", version)
	}

	logger.Info("SQLite record source ready",
		log.FieldOperation, log.OpMigrate,
		log.FieldBackend, "sqlite",
		"path", dbPath,
		"schema_version", version)

	return &Repository{
		db:      db,
		queries: NewQueries(db),
		logger:  logger,
	}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Repository) Places(ctx context.Context) ([]core.Place, error) {
	rows, err := r.queries.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	places := make([]core.Place, len(rows))
	for i, row := range rows {
		tags, err := decodeStrings(row.Tags)
		if err != nil {
			return nil, fmt.Errorf("decode tags of place %d: %w", row.ID, err)
		}
		places[i] = core.Place{
			ID:            row.ID,
			Name:          row.Name,
			Category:      row.Category,
			Rating:        row.Rating,
			Reviews:       int(row.Reviews),
			PriceLevel:    row.PriceLevel,
			DistanceMiles: row.DistanceMiles,
			Description:   row.Description,
			Tags:          tags,
			OpenNow:       row.OpenNow,
			PriceRange:    row.PriceRange,
		}
		if err := places[i].Validate(); err != nil {
			return nil, fmt.Errorf("place %d: %w", row.ID, err)
		}
	}

	r.logger.DebugContext(ctx, "Loaded places", log.FieldCount, len(places))
	return places, nil
}

func (r *Repository) Friends(ctx context.Context) ([]core.Friend, error) {
	rows, err := r.queries.ListFriends(ctx)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	friends := make([]core.Friend, len(rows))
	for i, row := range rows {
		interests, err := decodeStrings(row.Interests)
		if err != nil {
			return nil, fmt.Errorf("decode interests of friend %d: %w", row.ID, err)
		}
		friends[i] = core.Friend{
			ID:            row.ID,
			Name:          row.Name,
			Birthday:      row.Birthday,
			DaysUntil:     int(row.DaysUntil),
			Status:        core.BirthdayStatus(row.Status),
			Age:           int(row.Age),
			Location:      row.Location,
			MutualFriends: int(row.MutualFriends),
			Relationship:  row.Relationship,
			Interests:     interests,
			LastActive:    row.LastActive,
		}
		if err := friends[i].Validate(); err != nil {
			return nil, fmt.Errorf("friend %d: %w", row.ID, err)
		}
	}

	r.logger.DebugContext(ctx, "Loaded friends", log.FieldCount, len(friends))
	return friends, nil
}

func (r *Repository) WishlistItems(ctx context.Context) ([]core.WishlistItem, error) {
	rows, err := r.queries.ListWishlistItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wishlist items: %w", err)
	}

	items := make([]core.WishlistItem, len(rows))
	for i, row := range rows {
		items[i] = core.WishlistItem{
			ID:              row.ID,
			Name:            row.Name,
			Price:           row.Price,
			OriginalPrice:   row.OriginalPrice,
			Store:           row.Store,
			AddedBy:         row.AddedBy,
			Priority:        core.Priority(row.Priority),
			Trend:           core.Trend(row.Trend),
			TrendPercentage: int(row.TrendPercentage),
			InStock:         row.InStock,
			Category:        row.Category,
			Rating:          row.Rating,
			Reviews:         int(row.Reviews),
		}
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("wishlist item %d: %w", row.ID, err)
		}
	}

	r.logger.DebugContext(ctx, "Loaded wishlist items", log.FieldCount, len(items))
	return items, nil
}

func (r *Repository) Events(ctx context.Context) ([]core.Event, error) {
	rows, err := r.queries.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]core.Event, len(rows))
	for i, row := range rows {
		events[i] = core.Event{
			ID:           row.ID,
			Title:        row.Title,
			Date:         row.Date,
			Time:         row.Time,
			Location:     row.Location,
			Attendees:    int(row.Attendees),
			MaxAttendees: int(row.MaxAttendees),
			Organizer:    row.Organizer,
			Category:     row.Category,
			Price:        row.Price,
			Rating:       row.Rating,
			RSVP:         core.RSVP(row.Rsvp),
		}
		if err := events[i].Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", row.ID, err)
		}
	}
	return events, nil
}

func (r *Repository) Achievements(ctx context.Context) ([]core.Achievement, error) {
	rows, err := r.queries.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	achievements := make([]core.Achievement, len(rows))
	for i, row := range rows {
		achievements[i] = core.Achievement{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Unlocked:    row.Unlocked,
		}
		if err := achievements[i].Validate(); err != nil {
			return nil, fmt.Errorf("achievement %d: %w", row.ID, err)
		}
	}
	return achievements, nil
}

// decodeStrings reads a JSON array column. An empty column is an empty list.
func decodeStrings(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
