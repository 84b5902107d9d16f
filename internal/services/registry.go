package services

import "artlink_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	ArtistService  ArtistService
	BookingService BookingService
	SearchService  SearchService
	EmailService   email.Provider
}
