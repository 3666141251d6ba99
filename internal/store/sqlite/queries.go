package sqlite

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

type PlaceRow struct {
	ID            int64
	Name          string
	Category      string
	Rating        float64
	Reviews       int64
	PriceLevel    string
	DistanceMiles float64
	Description   string
	Tags          string
	OpenNow       bool
	PriceRange    string
}

const listPlaces = `-- name: ListPlaces :many
SELECT id, name, category, rating, reviews, price_level, distance_miles, description, tags, open_now, price_range
FROM places
ORDER BY id
`

func (q *Queries) ListPlaces(ctx context.Context) ([]PlaceRow, error) {
	rows, err := q.db.QueryContext(ctx, listPlaces)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PlaceRow
	for rows.Next() {
		var i PlaceRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Category, &i.Rating, &i.Reviews, &i.PriceLevel,
			&i.DistanceMiles, &i.Description, &i.Tags, &i.OpenNow, &i.PriceRange,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type FriendRow struct {
	ID            int64
	Name          string
	Birthday      string
	DaysUntil     int64
	Status        string
	Age           int64
	Location      string
	MutualFriends int64
	Relationship  string
	Interests     string
	LastActive    string
}

const listFriends = `-- name: ListFriends :many
SELECT id, name, birthday, days_until, status, age, location, mutual_friends, relationship, interests, last_active
FROM friends
ORDER BY id
`

func (q *Queries) ListFriends(ctx context.Context) ([]FriendRow, error) {
	rows, err := q.db.QueryContext(ctx, listFriends)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FriendRow
	for rows.Next() {
		var i FriendRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Birthday, &i.DaysUntil, &i.Status, &i.Age,
			&i.Location, &i.MutualFriends, &i.Relationship, &i.Interests, &i.LastActive,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type WishlistItemRow struct {
	ID              int64
	Name            string
	Price           string
	OriginalPrice   string
	Store           string
	AddedBy         string
	Priority        string
	Trend           string
	TrendPercentage int64
	InStock         bool
	Category        string
	Rating          float64
	Reviews         int64
}

const listWishlistItems = `-- name: ListWishlistItems :many
SELECT id, name, price, original_price, store, added_by, priority, trend, trend_percentage, in_stock, category, rating, reviews
FROM wishlist_items
ORDER BY id
`

func (q *Queries) ListWishlistItems(ctx context.Context) ([]WishlistItemRow, error) {
	rows, err := q.db.QueryContext(ctx, listWishlistItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WishlistItemRow
	for rows.Next() {
		var i WishlistItemRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Price, &i.OriginalPrice, &i.Store, &i.AddedBy, &i.Priority,
			&i.Trend, &i.TrendPercentage, &i.InStock, &i.Category, &i.Rating, &i.Reviews,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type EventRow struct {
	ID           int64
	Title        string
	Date         string
	Time         string
	Location     string
	Attendees    int64
	MaxAttendees int64
	Organizer    string
	Category     string
	Price        string
	Rating       float64
	Rsvp         string
}

const listEvents = `-- name: ListEvents :many
SELECT id, title, date, time, location, attendees, max_attendees, organizer, category, price, rating, rsvp
FROM events
ORDER BY id
`

func (q *Queries) ListEvents(ctx context.Context) ([]EventRow, error) {
	rows, err := q.db.QueryContext(ctx, listEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EventRow
	for rows.Next() {
		var i EventRow
		if err := rows.Scan(
			&i.ID, &i.Title, &i.Date, &i.Time, &i.Location, &i.Attendees, &i.MaxAttendees,
			&i.Organizer, &i.Category, &i.Price, &i.Rating, &i.Rsvp,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type AchievementRow struct {
	ID          int64
	Title       string
	Description string
	Unlocked    bool
}

const listAchievements = `-- name: ListAchievements :many
SELECT id, title, description, unlocked
FROM achievements
ORDER BY id
`

func (q *Queries) ListAchievements(ctx context.Context) ([]AchievementRow, error) {
	rows, err := q.db.QueryContext(ctx, listAchievements)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AchievementRow
	for rows.Next() {
		var i AchievementRow
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.Unlocked); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
