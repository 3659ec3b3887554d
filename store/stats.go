package store

import (
	"sort"

	"github.com/brandzone/brand-zone-server/models"
)

type GroupStat struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ImagesCount   int64  `json:"imagesCount"`
	PalettesCount int64  `json:"palettesCount"`
	TotalCount    int64  `json:"totalCount"`
}

type TagStat struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ImagesCount   int64  `json:"imagesCount"`
	PalettesCount int64  `json:"palettesCount"`
	TotalCount    int64  `json:"totalCount"`
}

type Summary struct {
	TotalImages   int64 `json:"totalImages"`
	TotalPalettes int64 `json:"totalPalettes"`
	TotalGroups   int64 `json:"totalGroups"`
	TotalTags     int64 `json:"totalTags"`
}

// GroupStats counts, per owned group, the images and palettes that
// reference it. Ungrouped entities appear in no group's counts. Results
// are ordered by total usage, busiest group first; groups with equal
// totals keep name order.
func (s *Store) GroupStats(userID uint) ([]GroupStat, error) {
	var groups []models.Group
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&groups).Error; err != nil {
		return nil, &PersistenceError{Op: "list groups", Err: err}
	}

	stats := make([]GroupStat, 0, len(groups))
	for _, g := range groups {
		var imagesCount, palettesCount int64

		err := s.db.Model(&models.Image{}).
			Where("user_id = ? AND group_id = ?", userID, g.ID).
			Count(&imagesCount).Error
		if err != nil {
			return nil, &PersistenceError{Op: "count group images", Err: err}
		}

		err = s.db.Model(&models.Palette{}).
			Where("user_id = ? AND group_id = ?", userID, g.ID).
			Count(&palettesCount).Error
		if err != nil {
			return nil, &PersistenceError{Op: "count group palettes", Err: err}
		}

		stats = append(stats, GroupStat{
			ID:            g.ID,
			Name:          g.Name,
			ImagesCount:   imagesCount,
			PalettesCount: palettesCount,
			TotalCount:    imagesCount + palettesCount,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalCount > stats[j].TotalCount
	})
	return stats, nil
}

// TagStats counts, per owned tag, the join rows linking it to the
// user's images and palettes.
func (s *Store) TagStats(userID uint) ([]TagStat, error) {
	var tags []models.Tag
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, &PersistenceError{Op: "list tags", Err: err}
	}

	stats := make([]TagStat, 0, len(tags))
	for _, t := range tags {
		var imagesCount, palettesCount int64

		err := s.db.Model(&models.TagsOnImages{}).
			Joins("JOIN images ON images.id = tags_on_images.image_id").
			Where("tags_on_images.tag_id = ? AND images.user_id = ?", t.ID, userID).
			Count(&imagesCount).Error
		if err != nil {
			return nil, &PersistenceError{Op: "count tag images", Err: err}
		}

		err = s.db.Model(&models.TagsOnPalettes{}).
			Joins("JOIN color_palettes ON color_palettes.id = tags_on_palettes.palette_id").
			Where("tags_on_palettes.tag_id = ? AND color_palettes.user_id = ?", t.ID, userID).
			Count(&palettesCount).Error
		if err != nil {
			return nil, &PersistenceError{Op: "count tag palettes", Err: err}
		}

		stats = append(stats, TagStat{
			ID:            t.ID,
			Name:          t.Name,
			ImagesCount:   imagesCount,
			PalettesCount: palettesCount,
			TotalCount:    imagesCount + palettesCount,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalCount > stats[j].TotalCount
	})
	return stats, nil
}

// Summary returns the user's global totals. Unlike GroupStats it counts
// every image and palette, grouped or not.
func (s *Store) Summary(userID uint) (*Summary, error) {
	var out Summary

	counts := []struct {
		model interface{}
		dst   *int64
		op    string
	}{
		{&models.Image{}, &out.TotalImages, "count images"},
		{&models.Palette{}, &out.TotalPalettes, "count palettes"},
		{&models.Group{}, &out.TotalGroups, "count groups"},
		{&models.Tag{}, &out.TotalTags, "count tags"},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Where("user_id = ?", userID).Count(c.dst).Error; err != nil {
			return nil, &PersistenceError{Op: c.op, Err: err}
		}
	}
	return &out, nil
}
