package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulse-api/config"
	"pulse-api/models"
)

type fakeSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m...)
	return nil
}

func setupNotifier(t *testing.T) (*gorm.DB, *Notifier, *fakeSender) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	))

	cfg := &config.Config{
		FromEmail: "noreply@pulse.test",
		FromName:  "Pulse",
	}
	sender := &fakeSender{}
	notifier := NewNotifier(db, NewEmailServiceWithSender(cfg, sender))
	return db, notifier, sender
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.Profile {
	t.Helper()

	account := models.Account{
		ID:       uuid.New().String(),
		Email:    name + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&account).Error)

	profile := models.Profile{AccountID: account.ID, DisplayName: name}
	require.NoError(t, db.Create(&profile).Error)
	return &profile
}

func TestCommentCreatedNotifiesOwner(t *testing.T) {
	db, notifier, sender := setupNotifier(t)

	owner := createUser(t, db, "alice")
	commenter := createUser(t, db, "bob")
	post := models.Post{UserID: owner.ID, Description: "my first post"}
	require.NoError(t, db.Create(&post).Error)

	notifier.CommentCreated(post.ID, commenter.ID, "great stuff")

	require.Len(t, sender.messages, 1)
	m := sender.messages[0]
	assert.Equal(t, []string{"alice@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"bob commented on your post!"}, m.GetHeader("Subject"))
}

func TestCommentCreatedSuppressesSelf(t *testing.T) {
	db, notifier, sender := setupNotifier(t)

	owner := createUser(t, db, "alice")
	post := models.Post{UserID: owner.ID, Description: "talking to myself"}
	require.NoError(t, db.Create(&post).Error)

	notifier.CommentCreated(post.ID, owner.ID, "me again")

	assert.Empty(t, sender.messages)
}

func TestCommentCreatedSwallowsFailures(t *testing.T) {
	db, notifier, sender := setupNotifier(t)
	sender.err = assert.AnError

	owner := createUser(t, db, "alice")
	commenter := createUser(t, db, "bob")
	post := models.Post{UserID: owner.ID, Description: "whatever"}
	require.NoError(t, db.Create(&post).Error)

	// Must not panic or propagate anything.
	notifier.CommentCreated(post.ID, commenter.ID, "hi")
	assert.Empty(t, sender.messages)
}

func TestCommentCreatedMissingPost(t *testing.T) {
	_, notifier, sender := setupNotifier(t)

	notifier.CommentCreated(999, 1, "hi")
	assert.Empty(t, sender.messages)
}

func TestLikeAddedNotifiesOwner(t *testing.T) {
	db, notifier, sender := setupNotifier(t)

	owner := createUser(t, db, "alice")
	liker := createUser(t, db, "bob")
	post := models.Post{UserID: owner.ID, Description: "my first post"}
	require.NoError(t, db.Create(&post).Error)

	notifier.LikeAdded(post.ID, liker.ID)
	notifier.LikeAdded(post.ID, owner.ID)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{"bob liked your post!"}, sender.messages[0].GetHeader("Subject"))
}

func TestExcerptTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 150)
	assert.Equal(t, strings.Repeat("x", 100)+"...", excerpt(long))

	exact := strings.Repeat("y", 100)
	assert.Equal(t, exact, excerpt(exact))
	assert.Equal(t, "short", excerpt("short"))
}
