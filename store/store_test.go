package store

import (
	"testing"

	"github.com/brandzone/brand-zone-server/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testUser  uint = 1
	otherUser uint = 2
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see a fresh in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Group{},
		&models.Tag{},
		&models.Image{},
		&models.Palette{},
		&models.TagsOnImages{},
		&models.TagsOnPalettes{},
	))

	return New(db)
}

func seedGroup(t *testing.T, s *Store, userID uint, name string) models.Group {
	t.Helper()
	group := models.Group{Name: name, UserID: userID}
	require.NoError(t, s.db.Create(&group).Error)
	return group
}

func seedTag(t *testing.T, s *Store, userID uint, name string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name, UserID: userID}
	require.NoError(t, s.db.Create(&tag).Error)
	return tag
}

func imageTagIDs(t *testing.T, s *Store, imageID string) []string {
	t.Helper()
	var ids []string
	require.NoError(t, s.db.Model(&models.TagsOnImages{}).
		Where("image_id = ?", imageID).
		Order("tag_id ASC").
		Pluck("tag_id", &ids).Error)
	return ids
}

func paletteTagIDs(t *testing.T, s *Store, paletteID string) []string {
	t.Helper()
	var ids []string
	require.NoError(t, s.db.Model(&models.TagsOnPalettes{}).
		Where("palette_id = ?", paletteID).
		Order("tag_id ASC").
		Pluck("tag_id", &ids).Error)
	return ids
}
