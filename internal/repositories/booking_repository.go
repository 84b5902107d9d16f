package repositories

import (
	"errors"

	"artlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.BookingRequest) error
	FindByID(db *gorm.DB, id string) (*models.BookingRequest, error)
	// FindByIDWithParties возвращает заявку вместе с клиентом и артистом.
	FindByIDWithParties(db *gorm.DB, id string) (*models.BookingRequest, error)
	ListByClient(db *gorm.DB, clientID string) ([]models.BookingRequest, error)
	ListByArtist(db *gorm.DB, artistID string) ([]models.BookingRequest, error)
	Save(db *gorm.DB, booking *models.BookingRequest) error
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.BookingRequest) error {
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.BookingRequest, error) {
	var booking models.BookingRequest
	err := db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByIDWithParties(db *gorm.DB, id string) (*models.BookingRequest, error) {
	var booking models.BookingRequest
	err := db.Preload("Client").Preload("Artist").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) ListByClient(db *gorm.DB, clientID string) ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	err := db.Preload("Artist").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) ListByArtist(db *gorm.DB, artistID string) ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	err := db.Preload("Client").
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) Save(db *gorm.DB, booking *models.BookingRequest) error {
	return db.Save(booking).Error
}
