package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	likes := NewLikeRepository(db)

	author := seedProfile(t, db, "alice")
	fan := seedProfile(t, db, "bob")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	liked, err := likes.Toggle(post.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	likeCount, _ := postCounters(t, db, post.ID)
	assert.Equal(t, 1, likeCount)

	liked, err = likes.Toggle(post.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	likeCount, _ = postCounters(t, db, post.ID)
	assert.Equal(t, 0, likeCount)
}

func TestCounterMatchesLedger(t *testing.T) {
	db := setupTestDB(t)
	likes := NewLikeRepository(db)

	author := seedProfile(t, db, "alice")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	fans := []uint{
		seedProfile(t, db, "bob").ID,
		seedProfile(t, db, "carol").ID,
		seedProfile(t, db, "dave").ID,
	}
	for _, fan := range fans {
		require.NoError(t, likes.Like(post.ID, fan))
	}
	require.NoError(t, likes.Unlike(post.ID, fans[1], 0))

	ledger, err := likes.Count(post.ID)
	require.NoError(t, err)
	likeCount, _ := postCounters(t, db, post.ID)
	assert.Equal(t, int(ledger), likeCount)
	assert.Equal(t, 2, likeCount)
}

func TestDuplicateLikeRejected(t *testing.T) {
	db := setupTestDB(t)
	likes := NewLikeRepository(db)

	author := seedProfile(t, db, "alice")
	fan := seedProfile(t, db, "bob")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	require.NoError(t, likes.Like(post.ID, fan.ID))

	// The composite unique index refuses a second row for the same pair.
	err := likes.Like(post.ID, fan.ID)
	assert.Error(t, err)

	likeCount, _ := postCounters(t, db, post.ID)
	assert.Equal(t, 1, likeCount)
}

func TestHasLiked(t *testing.T) {
	db := setupTestDB(t)
	likes := NewLikeRepository(db)

	author := seedProfile(t, db, "alice")
	fan := seedProfile(t, db, "bob")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	liked, err := likes.HasLiked(post.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, likes.Like(post.ID, fan.ID))

	liked, err = likes.HasLiked(post.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestListLikers(t *testing.T) {
	db := setupTestDB(t)
	likes := NewLikeRepository(db)

	author := seedProfile(t, db, "alice")
	bob := seedProfile(t, db, "bob")
	carol := seedProfile(t, db, "carol")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	require.NoError(t, likes.Like(post.ID, bob.ID))
	require.NoError(t, likes.Like(post.ID, carol.ID))

	likers, err := likes.ListLikers(post.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, likers, 2)
	for _, l := range likers {
		assert.NotEmpty(t, l.User.DisplayName)
	}
}
