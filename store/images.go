package store

import (
	"errors"

	"github.com/brandzone/brand-zone-server/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateImage persists a new image together with its group and tag
// relations in one transaction. Referenced groups/tags marked new are
// created inside the same transaction; existing references must belong
// to the acting user.
func (s *Store) CreateImage(userID uint, in CreateImageInput) (*models.Image, error) {
	in.normalize()
	if err := Validate(&in); err != nil {
		return nil, err
	}
	if err := checkRefs(in.Group, in.Tags); err != nil {
		return nil, err
	}

	var image models.Image
	err := s.db.Transaction(func(tx *gorm.DB) error {
		groupID, err := resolveGroup(tx, userID, in.Group)
		if err != nil {
			return err
		}

		image = models.Image{
			Name:     in.Name,
			Src:      in.Src,
			Comments: in.Comments,
			GroupID:  groupID,
			UserID:   userID,
		}
		if err := tx.Create(&image).Error; err != nil {
			return &PersistenceError{Op: "create image", Err: err}
		}

		return replaceImageTags(tx, userID, image.ID, in.Tags, false)
	})
	if err != nil {
		return nil, err
	}

	s.views.Bump(userID, ViewImages)
	return &image, nil
}

// UpdateImage rewrites an image's fields and replaces its tag set. The
// group is whatever the payload says: absent or id-less means the image
// ends up ungrouped.
func (s *Store) UpdateImage(userID uint, in UpdateImageInput) (*models.Image, error) {
	in.normalize()
	if err := Validate(&in); err != nil {
		return nil, err
	}
	if err := checkRefs(in.Group, in.Tags); err != nil {
		return nil, err
	}

	var image models.Image
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", in.ID, userID).First(&image).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "image"}
			}
			return &PersistenceError{Op: "look up image", Err: err}
		}

		groupID, err := resolveGroup(tx, userID, in.Group)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":     in.Name,
			"comments": in.Comments,
			"group_id": groupID,
		}
		if err := tx.Model(&image).Updates(updates).Error; err != nil {
			return &PersistenceError{Op: "update image", Err: err}
		}

		return replaceImageTags(tx, userID, image.ID, in.Tags, true)
	})
	if err != nil {
		return nil, err
	}

	s.views.Bump(userID, ViewImages)
	return &image, nil
}

// DeleteImage removes an image and its join rows, children first, in
// one transaction. A second delete of the same id reports not found.
func (s *Store) DeleteImage(userID uint, id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var image models.Image
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&image).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "image"}
			}
			return &PersistenceError{Op: "look up image", Err: err}
		}

		if err := tx.Where("image_id = ?", id).Delete(&models.TagsOnImages{}).Error; err != nil {
			return &PersistenceError{Op: "delete image tags", Err: err}
		}
		if err := tx.Delete(&image).Error; err != nil {
			return &PersistenceError{Op: "delete image", Err: err}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.views.Bump(userID, ViewImages)
	return nil
}

// ListImages returns the user's images matching the filter, most
// recently updated first, with group and tags loaded.
func (s *Store) ListImages(userID uint, f Filter) ([]models.Image, error) {
	q := s.db.Model(&models.Image{}).Where("user_id = ?", userID)
	q = f.apply(q, "tags_on_images", "image_id")

	var images []models.Image
	err := q.Preload("Group").Preload("Tags.Tag").Order("updated_at DESC").Find(&images).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list images", Err: err}
	}
	return images, nil
}

// replaceImageTags implements full-replace semantics on the join
// relation: drop every existing row, then insert one row per resolved
// reference. Duplicate references resolving to the same tag collapse
// into a single row via the conflict clause.
func replaceImageTags(tx *gorm.DB, userID uint, imageID string, tags []RelationRef, clearFirst bool) error {
	if clearFirst {
		if err := tx.Where("image_id = ?", imageID).Delete(&models.TagsOnImages{}).Error; err != nil {
			return &PersistenceError{Op: "clear image tags", Err: err}
		}
	}

	for _, ref := range tags {
		tagID, err := resolveTag(tx, userID, ref)
		if err != nil {
			return err
		}

		join := models.TagsOnImages{ImageID: imageID, TagID: tagID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&join).Error; err != nil {
			return &PersistenceError{Op: "tag image", Err: err}
		}
	}
	return nil
}
