package repositories

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"pulse-api/models"
)

// ErrProfileNotFound distinguishes "no directory record" from real store
// failures. Write paths translate it to a 404 instead of creating profiles
// on behalf of other callers.
var ErrProfileNotFound = errors.New("profile not found")

// Resolver maps external (auth) identities to internal directory ids.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve accepts either a numeric string (already an internal id) or an
// opaque external identity. Resolution failures propagate; there is no
// fallback to the raw input.
func (r *Resolver) Resolve(candidate string) (uint, error) {
	if id, err := strconv.ParseUint(candidate, 10, 32); err == nil {
		return uint(id), nil
	}

	var profile models.Profile
	if err := r.db.Where("account_id = ?", candidate).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProfileNotFound
		}
		return 0, err
	}
	return profile.ID, nil
}

// ResolveOrCreate backfills a missing profile. Only the sign-in and
// current-user paths use it; explicit write paths call Resolve and fail.
func (r *Resolver) ResolveOrCreate(accountID, defaultDisplayName string) (uint, error) {
	id, err := r.Resolve(accountID)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return 0, err
	}

	profile := models.Profile{
		AccountID:   accountID,
		DisplayName: defaultDisplayName,
	}
	if createErr := r.db.Create(&profile).Error; createErr != nil {
		// A concurrent backfill may have won the unique index on account_id
		if id, retryErr := r.Resolve(accountID); retryErr == nil {
			return id, nil
		}
		return 0, createErr
	}
	return profile.ID, nil
}
