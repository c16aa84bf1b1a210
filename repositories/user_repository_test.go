package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-api/models"
)

func TestCreateProfileIdempotent(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)

	profile, created, err := users.CreateProfile("acct-1", "alice")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", profile.DisplayName)

	// Same account again: the existing record wins, nothing is written.
	same, created, err := users.CreateProfile("acct-1", "bob")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, profile.ID, same.ID)
	assert.Equal(t, "alice", same.DisplayName)
}

func TestGetProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)

	_, err := users.GetProfile("missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = users.GetProfileByID(999)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)

	profile := seedProfile(t, db, "alice")

	updated, err := users.UpdateProfile(profile.AccountID, map[string]interface{}{
		"display_name": "Alice Cooper",
		"image_bucket": "avatar-1.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.DisplayName)
	require.NotNil(t, updated.ImageBucket)
	assert.Equal(t, "avatar-1.png", *updated.ImageBucket)

	_, err = users.UpdateProfile("missing", map[string]interface{}{"display_name": "x"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteProfileLeavesContent(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)

	profile := seedProfile(t, db, "alice")
	post := seedPost(t, db, profile.ID, "still here", time.Now())

	require.NoError(t, users.DeleteProfile(profile.AccountID))

	exists, err := users.ProfileExists(profile.AccountID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Authored content is not cascaded.
	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSearchProfilesCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)

	seedProfile(t, db, "Alice")
	seedProfile(t, db, "alicia")
	seedProfile(t, db, "bob")

	profiles, err := users.SearchProfiles("ALIC", 10, 0)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	profiles, err = users.SearchProfiles("nobody", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestRandomProfilesRespectsLimit(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		seedProfile(t, db, name)
	}

	profiles, err := users.RandomProfiles(3)
	require.NoError(t, err)
	assert.Len(t, profiles, 3)

	// Fewer rows than the limit returns everything.
	profiles, err = users.RandomProfiles(20)
	require.NoError(t, err)
	assert.Len(t, profiles, 5)
}
