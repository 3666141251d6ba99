// Package store defines the read-only record sources the screens are built from.
package store

import (
	"context"

	"celebrate/internal/core"
)

// Ports for record sources. Every reader returns a fresh slice: callers own
// the snapshot they receive and may compute on it without further locking.
type (
	PlaceReader interface {
		Places(ctx context.Context) ([]core.Place, error)
	}

	FriendReader interface {
		Friends(ctx context.Context) ([]core.Friend, error)
	}

	WishlistReader interface {
		WishlistItems(ctx context.Context) ([]core.WishlistItem, error)
	}

	EventReader interface {
		Events(ctx context.Context) ([]core.Event, error)
	}

	AchievementReader interface {
		Achievements(ctx context.Context) ([]core.Achievement, error)
	}

	// Catalog is everything a screen may read.
	Catalog interface {
		PlaceReader
		FriendReader
		WishlistReader
		EventReader
		AchievementReader
	}
)
