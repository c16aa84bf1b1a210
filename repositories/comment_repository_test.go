package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-api/models"
)

func TestCreateCommentRefreshesCounter(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentRepository(db)

	author := seedProfile(t, db, "alice")
	commenter := seedProfile(t, db, "bob")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	comment, err := comments.Create(post.ID, commenter.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, "nice one", comment.Body)
	assert.Equal(t, "bob", comment.User.DisplayName)

	_, commentCount := postCounters(t, db, post.ID)
	assert.Equal(t, 1, commentCount)
}

func TestDeleteCommentRefreshesCounter(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentRepository(db)

	author := seedProfile(t, db, "alice")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	first, err := comments.Create(post.ID, author.ID, "first")
	require.NoError(t, err)
	_, err = comments.Create(post.ID, author.ID, "second")
	require.NoError(t, err)

	require.NoError(t, comments.Delete(first.ID))

	_, commentCount := postCounters(t, db, post.ID)
	assert.Equal(t, 1, commentCount)

	assert.ErrorIs(t, comments.Delete(first.ID), ErrCommentNotFound)
}

func TestListByPostOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentRepository(db)

	author := seedProfile(t, db, "alice")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	base := time.Now().Add(-time.Hour)
	for i, body := range []string{"first", "second", "third"} {
		c := models.Comment{
			PostID:    post.ID,
			UserID:    author.ID,
			Body:      body,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&c).Error)
	}

	page, err := comments.ListByPost(post.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "first", page[0].Body)
	assert.Equal(t, "third", page[2].Body)
}

func TestUpdateCommentReplacesBody(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentRepository(db)

	author := seedProfile(t, db, "alice")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	comment, err := comments.Create(post.ID, author.ID, "tpyo")
	require.NoError(t, err)

	updated, err := comments.Update(comment.ID, "typo")
	require.NoError(t, err)
	assert.Equal(t, "typo", updated.Body)

	_, err = comments.Update(999, "x")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestListCommentsByUser(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentRepository(db)

	author := seedProfile(t, db, "alice")
	other := seedProfile(t, db, "bob")
	post := seedPost(t, db, author.ID, "hello", time.Now())

	_, err := comments.Create(post.ID, author.ID, "mine")
	require.NoError(t, err)
	_, err = comments.Create(post.ID, other.ID, "theirs")
	require.NoError(t, err)

	page, err := comments.ListByUser(author.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "mine", page[0].Body)
}
