package store

import (
	"errors"

	"github.com/brandzone/brand-zone-server/models"
	"gorm.io/gorm"
)

// resolveGroup turns a group reference into a group id, creating the
// group when the reference is new. It must run inside the caller's
// transaction so a later failure rolls the new group back too.
// A nil reference, or an existing reference with no id, means the
// entity has no group.
func resolveGroup(tx *gorm.DB, userID uint, ref *RelationRef) (*string, error) {
	if ref == nil {
		return nil, nil
	}

	if ref.IsNew {
		group := models.Group{Name: ref.Name, UserID: userID}
		if err := tx.Create(&group).Error; err != nil {
			return nil, &PersistenceError{Op: "create group", Err: err}
		}
		return &group.ID, nil
	}

	if ref.ID == "" {
		return nil, nil
	}

	var group models.Group
	if err := tx.Where("id = ? AND user_id = ?", ref.ID, userID).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "group"}
		}
		return nil, &PersistenceError{Op: "look up group", Err: err}
	}
	return &group.ID, nil
}

// resolveTag resolves a tag reference to a tag id, creating the tag
// when the reference is new. Unlike groups, a tag reference always has
// to resolve: an existing reference without an id is invalid input.
func resolveTag(tx *gorm.DB, userID uint, ref RelationRef) (string, error) {
	if ref.IsNew {
		tag := models.Tag{Name: ref.Name, UserID: userID}
		if err := tx.Create(&tag).Error; err != nil {
			return "", &PersistenceError{Op: "create tag", Err: err}
		}
		return tag.ID, nil
	}

	if ref.ID == "" {
		return "", &ValidationError{Message: "invalid tag reference"}
	}

	var tag models.Tag
	if err := tx.Where("id = ? AND user_id = ?", ref.ID, userID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Resource: "tag"}
		}
		return "", &PersistenceError{Op: "look up tag", Err: err}
	}
	return tag.ID, nil
}
