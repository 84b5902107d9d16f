package services

import (
	"artlink_backend/internal/email"
	"artlink_backend/internal/models"
	"artlink_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Фейковые репозитории в памяти. db игнорируется: сервисный слой
// тестируется изолированно от GORM.

type fakeUserRepo struct {
	users map[string]*models.User

	searchCriteria *repositories.ArtistSearchCriteria
	searchRows     []repositories.ArtistRow
	searchErr      error

	updatedFields map[string]map[string]interface{}
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[string]*models.User),
		updatedFields: make(map[string]map[string]interface{}),
	}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmailAndRole(db *gorm.DB, email string, role models.UserRole) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.updatedFields[userID] = fields
	return nil
}

func (r *fakeUserRepo) SearchArtists(db *gorm.DB, criteria repositories.ArtistSearchCriteria) ([]repositories.ArtistRow, error) {
	r.searchCriteria = &criteria
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	return r.searchRows, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.ArtistProfile // по userID

	upsertFields  map[string]interface{}
	upsertCreated bool
	upsertErr     error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.ArtistProfile)}
}

func (r *fakeProfileRepo) Create(db *gorm.DB, profile *models.ArtistProfile) error {
	if _, ok := r.profiles[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByUserID(db *gorm.DB, userID string) (*models.ArtistProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Upsert(db *gorm.DB, userID string, fields map[string]interface{}) (bool, error) {
	r.upsertFields = fields
	if r.upsertErr != nil {
		return false, r.upsertErr
	}
	_, exists := r.profiles[userID]
	if !exists {
		r.profiles[userID] = &models.ArtistProfile{UserID: userID}
	}
	r.upsertCreated = !exists
	return !exists, nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.BookingRequest
	saveErr  error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.BookingRequest)}
}

func (r *fakeBookingRepo) add(b *models.BookingRequest) *models.BookingRequest {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	r.bookings[b.ID] = b
	return b
}

func (r *fakeBookingRepo) Create(db *gorm.DB, booking *models.BookingRequest) error {
	r.add(booking)
	return nil
}

func (r *fakeBookingRepo) FindByID(db *gorm.DB, id string) (*models.BookingRequest, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, repositories.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) FindByIDWithParties(db *gorm.DB, id string) (*models.BookingRequest, error) {
	return r.FindByID(db, id)
}

func (r *fakeBookingRepo) ListByClient(db *gorm.DB, clientID string) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByArtist(db *gorm.DB, artistID string) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, b := range r.bookings {
		if b.ArtistID == artistID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Save(db *gorm.DB, booking *models.BookingRequest) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.bookings[booking.ID] = booking
	return nil
}

// fakeEmail фиксирует отправленные уведомления
type fakeEmail struct {
	welcomes []string
	notices  []string
	sendErr  error
}

var _ email.Provider = (*fakeEmail)(nil)

func (f *fakeEmail) Send(msg *email.Email) error { return f.sendErr }
func (f *fakeEmail) SendWelcome(to, name string) error {
	f.welcomes = append(f.welcomes, to)
	return f.sendErr
}
func (f *fakeEmail) SendBookingNotice(to, clientName, eventType string) error {
	f.notices = append(f.notices, to)
	return f.sendErr
}
func (f *fakeEmail) Validate() error { return nil }
func (f *fakeEmail) Close() error    { return nil }

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
