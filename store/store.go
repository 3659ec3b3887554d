// Package store holds the user-scoped catalog logic: image and palette
// upserts with their group/tag relations, filtered list queries and
// usage statistics. Every method takes the acting user id explicitly.
package store

import (
	"gorm.io/gorm"
)

// Views whose cached lists go stale after a mutation.
const (
	ViewImages   = "images"
	ViewPalettes = "palettes"
)

type Store struct {
	db    *gorm.DB
	views *ViewTracker
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		views: NewViewTracker(),
	}
}

// ViewVersion returns the current version of a user's list view. The
// version changes after every committed mutation touching that view,
// so it doubles as an ETag for list responses.
func (s *Store) ViewVersion(userID uint, view string) uint64 {
	return s.views.Version(userID, view)
}
