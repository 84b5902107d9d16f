package dto

import (
	"time"

	"artlink_backend/internal/models"
)

// CreateBookingRequest - заявка клиента на бронирование артиста.
// Контактные поля опциональны: по умолчанию берутся из записи клиента.
type CreateBookingRequest struct {
	ArtistID      string   `json:"artist_id" validate:"required"`
	EventType     string   `json:"event_type" validate:"required"`
	EventDate     string   `json:"event_date" validate:"required"`
	EventLocation string   `json:"event_location" validate:"required"`
	Budget        *float64 `json:"budget" validate:"omitempty,gte=0"`
	Message       string   `json:"message" validate:"required"`
	ClientName    string   `json:"client_name"`
	ClientEmail   string   `json:"client_email"`
	ClientPhone   string   `json:"client_phone"`
}

// UpdateBookingStatusRequest - смена статуса заявки артистом
type UpdateBookingStatusRequest struct {
	Status         models.BookingStatus `json:"status" validate:"required,is-booking-status"`
	ArtistResponse string               `json:"artist_response"`
}

// BookingPartyDTO - публичные данные контрагента заявки.
// Для артиста заполняются category/city, для клиента - phone.
type BookingPartyDTO struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Email    string  `json:"email"`
	Category *string `json:"category,omitempty"`
	City     *string `json:"city,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// BookingView - заявка со снимком контактов и обогащением контрагентами
type BookingView struct {
	ID             string               `json:"id"`
	ClientID       string               `json:"client_id"`
	ArtistID       string               `json:"artist_id"`
	EventType      string               `json:"event_type"`
	EventDate      time.Time            `json:"event_date"`
	EventLocation  string               `json:"event_location"`
	Budget         *float64             `json:"budget"`
	Message        string               `json:"message"`
	Status         models.BookingStatus `json:"status"`
	ArtistResponse string               `json:"artist_response,omitempty"`
	ClientName     string               `json:"client_name,omitempty"`
	ClientEmail    string               `json:"client_email,omitempty"`
	ClientPhone    string               `json:"client_phone,omitempty"`
	Artist         *BookingPartyDTO     `json:"artist,omitempty"`
	Client         *BookingPartyDTO     `json:"client,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// BookingResponse - ответ на операции с одной заявкой
type BookingResponse struct {
	Success bool        `json:"success"`
	Booking BookingView `json:"booking"`
	Message string      `json:"message,omitempty"`
}

// BookingListResponse - ответ на списочные операции
type BookingListResponse struct {
	Success  bool          `json:"success"`
	Bookings []BookingView `json:"bookings"`
	Count    int           `json:"count"`
}

func OptString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewArtistParty собирает контрагента-артиста (name, email, category, city)
func NewArtistParty(u *models.User) *BookingPartyDTO {
	if u == nil {
		return nil
	}
	return &BookingPartyDTO{
		ID:       u.ID,
		Name:     OptString(u.Name),
		Email:    u.Email,
		Category: OptString(u.Category),
		City:     OptString(u.City),
	}
}

// NewClientParty собирает контрагента-клиента (name, email, phone)
func NewClientParty(u *models.User) *BookingPartyDTO {
	if u == nil {
		return nil
	}
	return &BookingPartyDTO{
		ID:    u.ID,
		Name:  OptString(u.Name),
		Email: u.Email,
		Phone: OptString(u.Phone),
	}
}

// NewBookingView маппит модель заявки в представление без обогащения
func NewBookingView(b *models.BookingRequest) BookingView {
	return BookingView{
		ID:             b.ID,
		ClientID:       b.ClientID,
		ArtistID:       b.ArtistID,
		EventType:      b.EventType,
		EventDate:      b.EventDate,
		EventLocation:  b.EventLocation,
		Budget:         b.Budget,
		Message:        b.Message,
		Status:         b.Status,
		ArtistResponse: b.ArtistResponse,
		ClientName:     b.ClientName,
		ClientEmail:    b.ClientEmail,
		ClientPhone:    b.ClientPhone,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
