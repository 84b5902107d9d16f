package repositories

import (
	"errors"

	"artlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ArtistProfileRepository interface {
	Create(db *gorm.DB, profile *models.ArtistProfile) error
	FindByUserID(db *gorm.DB, userID string) (*models.ArtistProfile, error)
	// Upsert обновляет профиль по user_id, создавая его при отсутствии.
	// Возвращает true, если запись была создана.
	Upsert(db *gorm.DB, userID string, fields map[string]interface{}) (bool, error)
}

type ArtistProfileRepositoryImpl struct{}

func NewArtistProfileRepository() ArtistProfileRepository {
	return &ArtistProfileRepositoryImpl{}
}

func (r *ArtistProfileRepositoryImpl) Create(db *gorm.DB, profile *models.ArtistProfile) error {
	// Check if profile already exists for this user
	var existing models.ArtistProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(profile).Error
}

func (r *ArtistProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ArtistProfileRepositoryImpl) Upsert(db *gorm.DB, userID string, fields map[string]interface{}) (bool, error) {
	if len(fields) > 0 {
		res := db.Model(&models.ArtistProfile{}).Where("user_id = ?", userID).Updates(fields)
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected > 0 {
			return false, nil
		}
	} else {
		var existing models.ArtistProfile
		err := db.Where("user_id = ?", userID).First(&existing).Error
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
	}

	profile := &models.ArtistProfile{UserID: userID}
	if err := db.Create(profile).Error; err != nil {
		return false, err
	}

	if len(fields) > 0 {
		if err := db.Model(profile).Updates(fields).Error; err != nil {
			return false, err
		}
	}

	return true, nil
}
