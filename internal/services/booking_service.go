package services

import (
	"time"

	"artlink_backend/internal/email"
	"artlink_backend/internal/logger"
	"artlink_backend/internal/models"
	"artlink_backend/internal/repositories"
	"artlink_backend/internal/services/dto"
	"artlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookingService interface {
	Create(db *gorm.DB, clientID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListForClient(db *gorm.DB, clientID string) (*dto.BookingListResponse, error)
	ListForArtist(db *gorm.DB, artistID string) (*dto.BookingListResponse, error)
	Get(db *gorm.DB, bookingID, requesterID string) (*dto.BookingResponse, error)
	UpdateStatus(db *gorm.DB, bookingID, requesterID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	Cancel(db *gorm.DB, bookingID, requesterID string) error
}

type BookingServiceImpl struct {
	bookingRepo   repositories.BookingRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo:   bookingRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// parseEventDate принимает дату события как RFC3339 или "2006-01-02"
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// Create создает заявку со статусом pending. Дубликаты не подавляются:
// клиент может отправить несколько заявок одному артисту.
func (s *BookingServiceImpl) Create(db *gorm.DB, clientID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid event_date")
	}

	// Адресат должен существовать и быть артистом
	artist, err := s.userRepo.FindByID(db, req.ArtistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	if !artist.IsArtist() {
		return nil, apperrors.ErrArtistNotFound
	}

	client, err := s.userRepo.FindByID(db, clientID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	// Снимок контактов: явные значения из запроса, иначе из записи клиента
	clientName := req.ClientName
	if clientName == "" {
		clientName = client.Name
	}
	clientEmail := req.ClientEmail
	if clientEmail == "" {
		clientEmail = client.Email
	}
	clientPhone := req.ClientPhone
	if clientPhone == "" {
		clientPhone = client.Phone
	}

	booking := &models.BookingRequest{
		ClientID:      clientID,
		ArtistID:      artist.ID,
		EventType:     req.EventType,
		EventDate:     eventDate,
		EventLocation: req.EventLocation,
		Budget:        req.Budget,
		Message:       req.Message,
		Status:        models.BookingStatusPending,
		ClientName:    clientName,
		ClientEmail:   clientEmail,
		ClientPhone:   clientPhone,
	}

	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, apperrors.StorageError(err)
	}

	s.notifyArtist(artist, booking)

	view := dto.NewBookingView(booking)
	view.Artist = dto.NewArtistParty(artist)
	view.Client = dto.NewClientParty(client)

	return &dto.BookingResponse{
		Success: true,
		Booking: view,
		Message: "Booking request sent successfully",
	}, nil
}

// ListForClient - заявки, отправленные клиентом, новые первыми,
// с публичными данными артиста-контрагента
func (s *BookingServiceImpl) ListForClient(db *gorm.DB, clientID string) (*dto.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListByClient(db, clientID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	views := make([]dto.BookingView, 0, len(bookings))
	for i := range bookings {
		view := dto.NewBookingView(&bookings[i])
		view.Artist = dto.NewArtistParty(bookings[i].Artist)
		views = append(views, view)
	}

	return &dto.BookingListResponse{Success: true, Bookings: views, Count: len(views)}, nil
}

// ListForArtist - заявки, полученные артистом, новые первыми,
// с контактами клиента-контрагента
func (s *BookingServiceImpl) ListForArtist(db *gorm.DB, artistID string) (*dto.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListByArtist(db, artistID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	views := make([]dto.BookingView, 0, len(bookings))
	for i := range bookings {
		view := dto.NewBookingView(&bookings[i])
		view.Client = dto.NewClientParty(bookings[i].Client)
		views = append(views, view)
	}

	return &dto.BookingListResponse{Success: true, Bookings: views, Count: len(views)}, nil
}

// Get возвращает заявку с обоими контрагентами. Доступ - только
// сторонам заявки.
func (s *BookingServiceImpl) Get(db *gorm.DB, bookingID, requesterID string) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByIDWithParties(db, bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if booking.ClientID != requesterID && booking.ArtistID != requesterID {
		return nil, apperrors.ErrBookingAccessDenied
	}

	view := dto.NewBookingView(booking)
	view.Artist = dto.NewArtistParty(booking.Artist)
	view.Client = dto.NewClientParty(booking.Client)

	return &dto.BookingResponse{Success: true, Booking: view}, nil
}

// UpdateStatus применяет переход статуса от имени артиста.
// Допустимые целевые статусы: accepted, rejected, completed.
// Отмена клиентом - отдельная операция Cancel.
func (s *BookingServiceImpl) UpdateStatus(db *gorm.DB, bookingID, requesterID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	switch req.Status {
	case models.BookingStatusAccepted, models.BookingStatusRejected, models.BookingStatusCompleted:
	default:
		return nil, apperrors.ErrInvalidBookingStatus
	}

	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	// Менять статус может только артист, на которого оформлена заявка
	if booking.ArtistID != requesterID {
		return nil, apperrors.ErrBookingUpdateDenied
	}

	if !models.CanTransition(booking.Status, req.Status) {
		return nil, apperrors.InvalidTransition(string(booking.Status), string(req.Status))
	}

	booking.Status = req.Status
	if req.ArtistResponse != "" {
		booking.ArtistResponse = req.ArtistResponse
	}

	if err := s.bookingRepo.Save(db, booking); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.BookingResponse{
		Success: true,
		Booking: dto.NewBookingView(booking),
		Message: "Booking status updated",
	}, nil
}

// Cancel - идемпотентная по намерению отмена клиентом: разрешена только
// из pending, повторная отмена отклоняется как недопустимый переход.
func (s *BookingServiceImpl) Cancel(db *gorm.DB, bookingID, requesterID string) error {
	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return apperrors.StorageError(err)
	}

	if booking.ClientID != requesterID {
		return apperrors.ErrBookingCancelDenied
	}

	if booking.Status != models.BookingStatusPending {
		return apperrors.ErrOnlyPendingCancelable
	}

	booking.Status = models.BookingStatusCancelled
	if err := s.bookingRepo.Save(db, booking); err != nil {
		return apperrors.StorageError(err)
	}

	return nil
}

func (s *BookingServiceImpl) notifyArtist(artist *models.User, booking *models.BookingRequest) {
	if s.emailProvider == nil {
		return
	}
	if err := s.emailProvider.SendBookingNotice(artist.Email, booking.ClientName, booking.EventType); err != nil {
		logger.Warn("Failed to send booking notice",
			"artist_id", artist.ID,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
