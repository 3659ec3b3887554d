package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupStats_CountsBothKinds(t *testing.T) {
	s := newTestStore(t)
	core := seedGroup(t, s, testUser, "Core")
	spare := seedGroup(t, s, testUser, "Spare")

	for i := 0; i < 2; i++ {
		_, err := s.CreateImage(testUser, CreateImageInput{
			Name:  "Img",
			Src:   "https://cdn.example.com/i.png",
			Group: &RelationRef{ID: core.ID},
		})
		require.NoError(t, err)
	}
	_, err := s.CreatePalette(testUser, CreatePaletteInput{
		Name:   "Pal",
		Colors: []string{"#000000"},
		Group:  &RelationRef{ID: core.ID},
	})
	require.NoError(t, err)

	stats, err := s.GroupStats(testUser)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Busiest group first.
	assert.Equal(t, core.ID, stats[0].ID)
	assert.EqualValues(t, 2, stats[0].ImagesCount)
	assert.EqualValues(t, 1, stats[0].PalettesCount)
	assert.EqualValues(t, 3, stats[0].TotalCount)

	assert.Equal(t, spare.ID, stats[1].ID)
	assert.Zero(t, stats[1].TotalCount)
}

func TestGroupStats_UngroupedEntitiesExcluded(t *testing.T) {
	s := newTestStore(t)
	group := seedGroup(t, s, testUser, "Only")

	_, err := s.CreateImage(testUser, CreateImageInput{
		Name:  "Grouped",
		Src:   "https://cdn.example.com/g.png",
		Group: &RelationRef{ID: group.ID},
	})
	require.NoError(t, err)
	_, err = s.CreateImage(testUser, CreateImageInput{
		Name: "Ungrouped",
		Src:  "https://cdn.example.com/u.png",
	})
	require.NoError(t, err)
	_, err = s.CreatePalette(testUser, CreatePaletteInput{
		Name:   "Ungrouped palette",
		Colors: []string{"#FFFFFF"},
	})
	require.NoError(t, err)

	stats, err := s.GroupStats(testUser)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.EqualValues(t, 1, stats[0].ImagesCount)
	assert.Zero(t, stats[0].PalettesCount)

	// The summary still counts every entity, grouped or not.
	summary, err := s.Summary(testUser)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.TotalImages)
	assert.EqualValues(t, 1, summary.TotalPalettes)
	assert.EqualValues(t, 1, summary.TotalGroups)
}

func TestTagStats_CountsJoinRowsPerKind(t *testing.T) {
	s := newTestStore(t)
	primary := seedTag(t, s, testUser, "primary")
	unused := seedTag(t, s, testUser, "unused")

	_, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Tagged image",
		Src:  "https://cdn.example.com/t.png",
		Tags: []RelationRef{{ID: primary.ID}},
	})
	require.NoError(t, err)
	_, err = s.CreatePalette(testUser, CreatePaletteInput{
		Name:   "Tagged palette",
		Colors: []string{"#112233"},
		Tags:   []RelationRef{{ID: primary.ID}},
	})
	require.NoError(t, err)

	stats, err := s.TagStats(testUser)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, primary.ID, stats[0].ID)
	assert.EqualValues(t, 1, stats[0].ImagesCount)
	assert.EqualValues(t, 1, stats[0].PalettesCount)
	assert.EqualValues(t, 2, stats[0].TotalCount)

	assert.Equal(t, unused.ID, stats[1].ID)
	assert.Zero(t, stats[1].TotalCount)
}

func TestStats_EqualTotalsKeepNameOrder(t *testing.T) {
	s := newTestStore(t)
	seedGroup(t, s, testUser, "Beta")
	seedGroup(t, s, testUser, "Alpha")

	stats, err := s.GroupStats(testUser)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Alpha", stats[0].Name)
	assert.Equal(t, "Beta", stats[1].Name)
}

func TestStats_TenantIsolation(t *testing.T) {
	s := newTestStore(t)
	seedGroup(t, s, otherUser, "Foreign")
	seedTag(t, s, otherUser, "foreign")
	_, err := s.CreateImage(otherUser, CreateImageInput{
		Name: "Foreign image",
		Src:  "https://cdn.example.com/f.png",
	})
	require.NoError(t, err)

	stats, err := s.GroupStats(testUser)
	require.NoError(t, err)
	assert.Empty(t, stats)

	tagStats, err := s.TagStats(testUser)
	require.NoError(t, err)
	assert.Empty(t, tagStats)

	summary, err := s.Summary(testUser)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalImages)
	assert.Zero(t, summary.TotalPalettes)
	assert.Zero(t, summary.TotalGroups)
	assert.Zero(t, summary.TotalTags)
}

func TestSummary_AllTotals(t *testing.T) {
	s := newTestStore(t)
	group := seedGroup(t, s, testUser, "G")
	tag := seedTag(t, s, testUser, "t")

	_, err := s.CreateImage(testUser, CreateImageInput{
		Name:  "I",
		Src:   "https://cdn.example.com/i.png",
		Group: &RelationRef{ID: group.ID},
		Tags:  []RelationRef{{ID: tag.ID}},
	})
	require.NoError(t, err)
	_, err = s.CreatePalette(testUser, CreatePaletteInput{
		Name:   "P",
		Colors: []string{"#FF00FF"},
	})
	require.NoError(t, err)

	summary, err := s.Summary(testUser)
	require.NoError(t, err)
	assert.EqualValues(t, 1, summary.TotalImages)
	assert.EqualValues(t, 1, summary.TotalPalettes)
	assert.EqualValues(t, 1, summary.TotalGroups)
	assert.EqualValues(t, 1, summary.TotalTags)
}
