package memory

import (
	"context"
	"fmt"

	"celebrate/internal/core"
)

// Store is a read-only catalog over fixed slices. It is never written after
// New, so concurrent readers need no locking.
type Store struct {
	places       []core.Place
	friends      []core.Friend
	wishlist     []core.WishlistItem
	events       []core.Event
	achievements []core.Achievement
}

// Data is the content of a Store.
type Data struct {
	Places       []core.Place
	Friends      []core.Friend
	Wishlist     []core.WishlistItem
	Events       []core.Event
	Achievements []core.Achievement
}

// New validates data and copies it into a new Store.
func New(data Data) (*Store, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &Store{
		places:       clonePlaces(data.Places),
		friends:      cloneFriends(data.Friends),
		wishlist:     append([]core.WishlistItem(nil), data.Wishlist...),
		events:       append([]core.Event(nil), data.Events...),
		achievements: append([]core.Achievement(nil), data.Achievements...),
	}, nil
}

// NewWithFixtures returns a Store holding the built-in sample data.
func NewWithFixtures() *Store {
	s, err := New(Fixtures())
	if err != nil {
		panic(fmt.Sprintf("memory: invalid fixtures: %v", err))
	}
	return s
}

func (d Data) validate() error {
	for _, p := range d.Places {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("place %d: %w", p.ID, err)
		}
	}
	for _, f := range d.Friends {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("friend %d: %w", f.ID, err)
		}
	}
	for _, w := range d.Wishlist {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("wishlist item %d: %w", w.ID, err)
		}
	}
	for _, e := range d.Events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("event %d: %w", e.ID, err)
		}
	}
	for _, a := range d.Achievements {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("achievement %d: %w", a.ID, err)
		}
	}
	return nil
}

func (s *Store) Places(_ context.Context) ([]core.Place, error) {
	return clonePlaces(s.places), nil
}

func (s *Store) Friends(_ context.Context) ([]core.Friend, error) {
	return cloneFriends(s.friends), nil
}

func (s *Store) WishlistItems(_ context.Context) ([]core.WishlistItem, error) {
	return append([]core.WishlistItem(nil), s.wishlist...), nil
}

func (s *Store) Events(_ context.Context) ([]core.Event, error) {
	return append([]core.Event(nil), s.events...), nil
}

func (s *Store) Achievements(_ context.Context) ([]core.Achievement, error) {
	return append([]core.Achievement(nil), s.achievements...), nil
}

// Places and friends carry slices; copy those too so snapshots never share memory.
func clonePlaces(in []core.Place) []core.Place {
	if in == nil {
		return nil
	}
	out := make([]core.Place, len(in))
	for i, p := range in {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

func cloneFriends(in []core.Friend) []core.Friend {
	if in == nil {
		return nil
	}
	out := make([]core.Friend, len(in))
	for i, f := range in {
		f.Interests = append([]string(nil), f.Interests...)
		out[i] = f
	}
	return out
}
