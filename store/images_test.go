package store

import (
	"sort"
	"testing"

	"github.com/brandzone/brand-zone-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateImage_NewGroupAndTags(t *testing.T) {
	s := newTestStore(t)

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name:  "Logo",
		Src:   "https://cdn.example.com/logo.png",
		Group: &RelationRef{IsNew: true, Name: "Branding"},
		Tags: []RelationRef{
			{IsNew: true, Name: "logo"},
			{IsNew: true, Name: "dark"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, image.ID)

	var groups []models.Group
	require.NoError(t, s.db.Find(&groups).Error)
	require.Len(t, groups, 1)
	assert.Equal(t, "Branding", groups[0].Name)
	assert.Equal(t, testUser, groups[0].UserID)
	require.NotNil(t, image.GroupID)
	assert.Equal(t, groups[0].ID, *image.GroupID)

	var tags []models.Tag
	require.NoError(t, s.db.Order("name ASC").Find(&tags).Error)
	require.Len(t, tags, 2)
	assert.Equal(t, "dark", tags[0].Name)
	assert.Equal(t, "logo", tags[1].Name)
	for _, tag := range tags {
		assert.Equal(t, testUser, tag.UserID)
	}

	want := []string{tags[0].ID, tags[1].ID}
	sort.Strings(want)
	assert.Equal(t, want, imageTagIDs(t, s, image.ID))
}

func TestCreateImage_ExistingRelations(t *testing.T) {
	s := newTestStore(t)
	group := seedGroup(t, s, testUser, "Assets")
	tag := seedTag(t, s, testUser, "hero")

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name:  "Hero shot",
		Src:   "https://cdn.example.com/hero.png",
		Group: &RelationRef{ID: group.ID},
		Tags:  []RelationRef{{ID: tag.ID}},
	})
	require.NoError(t, err)

	require.NotNil(t, image.GroupID)
	assert.Equal(t, group.ID, *image.GroupID)
	assert.Equal(t, []string{tag.ID}, imageTagIDs(t, s, image.ID))

	// No extra groups or tags were created along the way.
	var groupCount, tagCount int64
	require.NoError(t, s.db.Model(&models.Group{}).Count(&groupCount).Error)
	require.NoError(t, s.db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, groupCount)
	assert.EqualValues(t, 1, tagCount)
}

func TestCreateImage_UnownedGroupRollsBack(t *testing.T) {
	s := newTestStore(t)
	foreign := seedGroup(t, s, otherUser, "Theirs")

	_, err := s.CreateImage(testUser, CreateImageInput{
		Name:  "Sneaky",
		Src:   "https://cdn.example.com/sneaky.png",
		Group: &RelationRef{ID: foreign.ID},
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	var count int64
	require.NoError(t, s.db.Model(&models.Image{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateImage_UnownedTagRollsBack(t *testing.T) {
	s := newTestStore(t)
	foreign := seedTag(t, s, otherUser, "theirs")

	_, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Sneaky",
		Src:  "https://cdn.example.com/sneaky.png",
		Tags: []RelationRef{{ID: foreign.ID}},
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	// The failed tag resolution aborted the whole transaction.
	var images, joins int64
	require.NoError(t, s.db.Model(&models.Image{}).Count(&images).Error)
	require.NoError(t, s.db.Model(&models.TagsOnImages{}).Count(&joins).Error)
	assert.Zero(t, images)
	assert.Zero(t, joins)
}

func TestCreateImage_Validation(t *testing.T) {
	s := newTestStore(t)

	cases := []struct {
		name  string
		input CreateImageInput
	}{
		{"missing name", CreateImageInput{Src: "https://cdn.example.com/a.png"}},
		{"missing url", CreateImageInput{Name: "A"}},
		{"invalid url", CreateImageInput{Name: "A", Src: "not a url"}},
		{"blank name after trim", CreateImageInput{Name: "   ", Src: "https://cdn.example.com/a.png"}},
		{"new tag without name", CreateImageInput{
			Name: "A",
			Src:  "https://cdn.example.com/a.png",
			Tags: []RelationRef{{IsNew: true}},
		}},
		{"existing tag without id", CreateImageInput{
			Name: "A",
			Src:  "https://cdn.example.com/a.png",
			Tags: []RelationRef{{Name: "orphan"}},
		}},
		{"new group without name", CreateImageInput{
			Name:  "A",
			Src:   "https://cdn.example.com/a.png",
			Group: &RelationRef{IsNew: true},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateImage(testUser, tc.input)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}

	var count int64
	require.NoError(t, s.db.Model(&models.Image{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateImage_ReplacesTagSet(t *testing.T) {
	s := newTestStore(t)
	tagA := seedTag(t, s, testUser, "a")
	tagB := seedTag(t, s, testUser, "b")
	tagC := seedTag(t, s, testUser, "c")

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Banner",
		Src:  "https://cdn.example.com/banner.png",
		Tags: []RelationRef{{ID: tagA.ID}, {ID: tagB.ID}},
	})
	require.NoError(t, err)

	_, err = s.UpdateImage(testUser, UpdateImageInput{
		ID:   image.ID,
		Name: "Banner",
		Tags: []RelationRef{{ID: tagB.ID}, {ID: tagC.ID}},
	})
	require.NoError(t, err)

	want := []string{tagB.ID, tagC.ID}
	sort.Strings(want)
	assert.Equal(t, want, imageTagIDs(t, s, image.ID))
}

func TestUpdateImage_ClearsGroupWhenOmitted(t *testing.T) {
	s := newTestStore(t)
	group := seedGroup(t, s, testUser, "Keep")

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name:  "Grouped",
		Src:   "https://cdn.example.com/g.png",
		Group: &RelationRef{ID: group.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, image.GroupID)

	_, err = s.UpdateImage(testUser, UpdateImageInput{
		ID:   image.ID,
		Name: "Grouped",
	})
	require.NoError(t, err)

	var reloaded models.Image
	require.NoError(t, s.db.First(&reloaded, "id = ?", image.ID).Error)
	assert.Nil(t, reloaded.GroupID)

	// The group row itself stays around.
	var count int64
	require.NoError(t, s.db.Model(&models.Group{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateImage_AbortsWithoutPartialTagSet(t *testing.T) {
	s := newTestStore(t)
	tagA := seedTag(t, s, testUser, "a")

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Stable",
		Src:  "https://cdn.example.com/s.png",
		Tags: []RelationRef{{ID: tagA.ID}},
	})
	require.NoError(t, err)

	_, err = s.UpdateImage(testUser, UpdateImageInput{
		ID:   image.ID,
		Name: "Stable",
		Tags: []RelationRef{
			{IsNew: true, Name: "fresh"},
			{ID: "does-not-exist"},
		},
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	// The old tag set survives and the inline tag was rolled back.
	assert.Equal(t, []string{tagA.ID}, imageTagIDs(t, s, image.ID))
	var tagCount int64
	require.NoError(t, s.db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)
}

func TestUpdateImage_TenantIsolation(t *testing.T) {
	s := newTestStore(t)

	image, err := s.CreateImage(otherUser, CreateImageInput{
		Name: "Private",
		Src:  "https://cdn.example.com/p.png",
	})
	require.NoError(t, err)

	_, err = s.UpdateImage(testUser, UpdateImageInput{ID: image.ID, Name: "Hijacked"})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	var reloaded models.Image
	require.NoError(t, s.db.First(&reloaded, "id = ?", image.ID).Error)
	assert.Equal(t, "Private", reloaded.Name)
}

func TestDeleteImage_Idempotence(t *testing.T) {
	s := newTestStore(t)
	tag := seedTag(t, s, testUser, "keep")

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Doomed",
		Src:  "https://cdn.example.com/d.png",
		Tags: []RelationRef{{ID: tag.ID}},
	})
	require.NoError(t, err)

	other, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Survivor",
		Src:  "https://cdn.example.com/s.png",
		Tags: []RelationRef{{ID: tag.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteImage(testUser, image.ID))

	err = s.DeleteImage(testUser, image.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	// The other image and its join rows are untouched.
	assert.Equal(t, []string{tag.ID}, imageTagIDs(t, s, other.ID))
	assert.Empty(t, imageTagIDs(t, s, image.ID))
}

func TestDeleteImage_TenantIsolation(t *testing.T) {
	s := newTestStore(t)

	image, err := s.CreateImage(otherUser, CreateImageInput{
		Name: "Private",
		Src:  "https://cdn.example.com/p.png",
	})
	require.NoError(t, err)

	err = s.DeleteImage(testUser, image.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	var count int64
	require.NoError(t, s.db.Model(&models.Image{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateImage_DuplicateTagRefsCollapse(t *testing.T) {
	s := newTestStore(t)
	tag := seedTag(t, s, testUser, "twice")

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Duped",
		Src:  "https://cdn.example.com/d.png",
		Tags: []RelationRef{{ID: tag.ID}, {ID: tag.ID}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{tag.ID}, imageTagIDs(t, s, image.ID))
}

func TestImageMutations_BumpViewVersion(t *testing.T) {
	s := newTestStore(t)

	assert.Zero(t, s.ViewVersion(testUser, ViewImages))

	image, err := s.CreateImage(testUser, CreateImageInput{
		Name: "Tracked",
		Src:  "https://cdn.example.com/t.png",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, s.ViewVersion(testUser, ViewImages))

	_, err = s.UpdateImage(testUser, UpdateImageInput{ID: image.ID, Name: "Tracked v2"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, s.ViewVersion(testUser, ViewImages))

	require.NoError(t, s.DeleteImage(testUser, image.ID))
	assert.EqualValues(t, 3, s.ViewVersion(testUser, ViewImages))

	// Failed mutations leave the version alone.
	_, err = s.CreateImage(testUser, CreateImageInput{Name: "bad"})
	require.Error(t, err)
	assert.EqualValues(t, 3, s.ViewVersion(testUser, ViewImages))

	// Other users and other views are independent.
	assert.Zero(t, s.ViewVersion(otherUser, ViewImages))
	assert.Zero(t, s.ViewVersion(testUser, ViewPalettes))
}
