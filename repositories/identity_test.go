package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNumericPassthrough(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	// Numeric candidates are already internal ids; no lookup happens.
	id, err := resolver.Resolve("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestResolveExternalIdentity(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	profile := seedProfile(t, db, "alice")

	id, err := resolver.Resolve(profile.AccountID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, id)
}

func TestResolveUnknownIdentity(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	_, err := resolver.Resolve("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestResolveOrCreateBackfills(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)
	users := NewUserRepository(db)

	id, err := resolver.ResolveOrCreate("ext-identity-1", "alice")
	require.NoError(t, err)
	require.NotZero(t, id)

	profile, err := users.GetProfileByID(id)
	require.NoError(t, err)
	assert.Equal(t, "ext-identity-1", profile.AccountID)
	assert.Equal(t, "alice", profile.DisplayName)

	// Second call resolves the existing record instead of creating another.
	again, err := resolver.ResolveOrCreate("ext-identity-1", "someone-else")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	profiles, err := users.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, "alice", profiles[0].DisplayName)
}
