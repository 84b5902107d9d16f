package handlers

import (
	"artlink_backend/internal/services"
	"artlink_backend/internal/validator"
)

// AppHandlers объединяет все HTTP-обработчики приложения.
type AppHandlers struct {
	Auth    *AuthHandler
	Artist  *ArtistHandler
	Booking *BookingHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		Artist:  NewArtistHandler(base, sc.ArtistService, sc.SearchService),
		Booking: NewBookingHandler(base, sc.BookingService),
	}
}
