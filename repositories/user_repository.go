package repositories

import (
	"errors"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"pulse-api/models"
)

// UserRepository is the directory of profile records keyed by external
// identity.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateProfile is idempotent: if a profile already exists for the account
// it is returned with created == false and nothing is written.
func (r *UserRepository) CreateProfile(accountID, displayName string) (*models.Profile, bool, error) {
	var existing models.Profile
	err := r.db.Where("account_id = ?", accountID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	profile := models.Profile{
		AccountID:   accountID,
		DisplayName: displayName,
	}
	if err := r.db.Create(&profile).Error; err != nil {
		return nil, false, err
	}
	return &profile, true, nil
}

func (r *UserRepository) GetProfile(accountID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) GetProfileByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial column update and returns the fresh row.
func (r *UserRepository) UpdateProfile(accountID string, updates map[string]interface{}) (*models.Profile, error) {
	profile, err := r.GetProfile(accountID)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetProfile(accountID)
}

func (r *UserRepository) UpdateDisplayName(accountID, displayName string) (*models.Profile, error) {
	return r.UpdateProfile(accountID, map[string]interface{}{"display_name": displayName})
}

func (r *UserRepository) UpdateProfileImage(accountID, imageBucket string) (*models.Profile, error) {
	return r.UpdateProfile(accountID, map[string]interface{}{"image_bucket": imageBucket})
}

// DeleteProfile removes the directory record only. Posts, likes and
// comments authored by the profile are left in place.
func (r *UserRepository) DeleteProfile(accountID string) error {
	return r.db.Where("account_id = ?", accountID).Delete(&models.Profile{}).Error
}

func (r *UserRepository) ProfileExists(accountID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("account_id = ?", accountID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) ListProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

// SearchProfiles matches display names case-insensitively by substring.
func (r *UserRepository) SearchProfiles(query string, limit, offset int) ([]models.Profile, error) {
	var profiles []models.Profile
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := r.db.Where("LOWER(display_name) LIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&profiles).Error
	return profiles, err
}

// RandomProfiles oversamples the newest profiles threefold, shuffles and
// cuts to limit.
func (r *UserRepository) RandomProfiles(limit int) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("created_at DESC").Limit(limit * 3).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(profiles), func(i, j int) {
		profiles[i], profiles[j] = profiles[j], profiles[i]
	})
	if len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles, nil
}
