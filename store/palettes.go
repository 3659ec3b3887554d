package store

import (
	"errors"

	"github.com/brandzone/brand-zone-server/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreatePalette mirrors CreateImage for color palettes.
func (s *Store) CreatePalette(userID uint, in CreatePaletteInput) (*models.Palette, error) {
	in.normalize()
	if err := Validate(&in); err != nil {
		return nil, err
	}
	if err := checkRefs(in.Group, in.Tags); err != nil {
		return nil, err
	}

	var palette models.Palette
	err := s.db.Transaction(func(tx *gorm.DB) error {
		groupID, err := resolveGroup(tx, userID, in.Group)
		if err != nil {
			return err
		}

		palette = models.Palette{
			Name:     in.Name,
			Colors:   models.ColorList(in.Colors),
			Comments: in.Comments,
			GroupID:  groupID,
			UserID:   userID,
		}
		if err := tx.Create(&palette).Error; err != nil {
			return &PersistenceError{Op: "create palette", Err: err}
		}

		return replacePaletteTags(tx, userID, palette.ID, in.Tags, false)
	})
	if err != nil {
		return nil, err
	}

	s.views.Bump(userID, ViewPalettes)
	return &palette, nil
}

func (s *Store) UpdatePalette(userID uint, in UpdatePaletteInput) (*models.Palette, error) {
	in.normalize()
	if err := Validate(&in); err != nil {
		return nil, err
	}
	if err := checkRefs(in.Group, in.Tags); err != nil {
		return nil, err
	}

	var palette models.Palette
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", in.ID, userID).First(&palette).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "palette"}
			}
			return &PersistenceError{Op: "look up palette", Err: err}
		}

		groupID, err := resolveGroup(tx, userID, in.Group)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":     in.Name,
			"colors":   models.ColorList(in.Colors),
			"comments": in.Comments,
			"group_id": groupID,
		}
		if err := tx.Model(&palette).Updates(updates).Error; err != nil {
			return &PersistenceError{Op: "update palette", Err: err}
		}

		return replacePaletteTags(tx, userID, palette.ID, in.Tags, true)
	})
	if err != nil {
		return nil, err
	}

	s.views.Bump(userID, ViewPalettes)
	return &palette, nil
}

func (s *Store) DeletePalette(userID uint, id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var palette models.Palette
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&palette).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "palette"}
			}
			return &PersistenceError{Op: "look up palette", Err: err}
		}

		if err := tx.Where("palette_id = ?", id).Delete(&models.TagsOnPalettes{}).Error; err != nil {
			return &PersistenceError{Op: "delete palette tags", Err: err}
		}
		if err := tx.Delete(&palette).Error; err != nil {
			return &PersistenceError{Op: "delete palette", Err: err}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.views.Bump(userID, ViewPalettes)
	return nil
}

func (s *Store) ListPalettes(userID uint, f Filter) ([]models.Palette, error) {
	q := s.db.Model(&models.Palette{}).Where("user_id = ?", userID)
	q = f.apply(q, "tags_on_palettes", "palette_id")

	var palettes []models.Palette
	err := q.Preload("Group").Preload("Tags.Tag").Order("updated_at DESC").Find(&palettes).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list palettes", Err: err}
	}
	return palettes, nil
}

func replacePaletteTags(tx *gorm.DB, userID uint, paletteID string, tags []RelationRef, clearFirst bool) error {
	if clearFirst {
		if err := tx.Where("palette_id = ?", paletteID).Delete(&models.TagsOnPalettes{}).Error; err != nil {
			return &PersistenceError{Op: "clear palette tags", Err: err}
		}
	}

	for _, ref := range tags {
		tagID, err := resolveTag(tx, userID, ref)
		if err != nil {
			return err
		}

		join := models.TagsOnPalettes{PaletteID: paletteID, TagID: tagID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&join).Error; err != nil {
			return &PersistenceError{Op: "tag palette", Err: err}
		}
	}
	return nil
}
