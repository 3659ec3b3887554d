package store

import (
	"testing"

	"github.com/brandzone/brand-zone-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveGroup_NoReferenceMeansNoGroup(t *testing.T) {
	s := newTestStore(t)

	id, err := resolveGroup(s.db, testUser, nil)
	require.NoError(t, err)
	assert.Nil(t, id)

	// An existing reference without an id clears the group rather than
	// failing; the UI sends this shape when the group picker is empty.
	id, err = resolveGroup(s.db, testUser, &RelationRef{})
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestResolveGroup_CreatesOwnedRow(t *testing.T) {
	s := newTestStore(t)

	id, err := resolveGroup(s.db, testUser, &RelationRef{IsNew: true, Name: "Fresh"})
	require.NoError(t, err)
	require.NotNil(t, id)

	var group models.Group
	require.NoError(t, s.db.First(&group, "id = ?", *id).Error)
	assert.Equal(t, "Fresh", group.Name)
	assert.Equal(t, testUser, group.UserID)
}

func TestResolveGroup_NeverReassignsForeignRow(t *testing.T) {
	s := newTestStore(t)
	foreign := seedGroup(t, s, otherUser, "Theirs")

	_, err := resolveGroup(s.db, testUser, &RelationRef{ID: foreign.ID})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestResolveTag_EmptyExistingIDIsInvalid(t *testing.T) {
	s := newTestStore(t)

	_, err := resolveTag(s.db, testUser, RelationRef{})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestResolveTag_ExistingAndForeign(t *testing.T) {
	s := newTestStore(t)
	mine := seedTag(t, s, testUser, "mine")
	foreign := seedTag(t, s, otherUser, "foreign")

	id, err := resolveTag(s.db, testUser, RelationRef{ID: mine.ID})
	require.NoError(t, err)
	assert.Equal(t, mine.ID, id)

	_, err = resolveTag(s.db, testUser, RelationRef{ID: foreign.ID})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
