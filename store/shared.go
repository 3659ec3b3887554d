package store

import (
	"github.com/brandzone/brand-zone-server/models"
)

// ListGroups returns every group the user owns, name ascending.
func (s *Store) ListGroups(userID uint) ([]models.Group, error) {
	var groups []models.Group
	err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&groups).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list groups", Err: err}
	}
	return groups, nil
}

// ListTags returns every tag the user owns, name ascending.
func (s *Store) ListTags(userID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list tags", Err: err}
	}
	return tags, nil
}
