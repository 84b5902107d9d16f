package services

import (
	"strings"

	"artlink_backend/internal/models"
	"artlink_backend/internal/repositories"
	"artlink_backend/internal/services/dto"
	"artlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ArtistService interface {
	Me(db *gorm.DB, userID string) (*dto.ArtistMeResponse, error)
	UpdateMe(db *gorm.DB, userID string, req *dto.UpdateArtistRequest) (*dto.UpdateArtistResponse, error)
}

type ArtistServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ArtistProfileRepository
}

func NewArtistService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ArtistProfileRepository,
) ArtistService {
	return &ArtistServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Me возвращает денормализованный вид артиста: идентичность + профиль.
// Отсутствие профиля - не ошибка: все его поля читаются как null.
func (s *ArtistServiceImpl) Me(db *gorm.DB, userID string) (*dto.ArtistMeResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if !user.IsArtist() {
		return nil, apperrors.ErrNotAnArtist
	}

	resp := &dto.ArtistMeResponse{
		ID:      user.ID,
		Role:    user.Role,
		Name:    dto.OptString(user.Name),
		Email:   user.Email,
		Service: dto.OptString(user.Category),
		City:    dto.OptString(user.City),
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.StorageError(err)
		}
		return resp, nil
	}

	resp.Img = dto.OptString(profile.ImgURL)
	resp.Bio = dto.OptString(profile.Bio)
	resp.BudgetMin = profile.BudgetMin
	resp.BudgetMax = profile.BudgetMax
	resp.Availability = dto.OptString(string(profile.AvailabilityStatus))
	resp.Rating = profile.RatingAvg
	resp.Reviews = profile.ReviewsCount

	return resp, nil
}

// UpdateMe применяет частичное обновление: поля идентичности ложатся в
// users, поля профиля - в artist_profiles (upsert по user_id). Обе записи
// обновляются в одной транзакции.
func (s *ArtistServiceImpl) UpdateMe(db *gorm.DB, userID string, req *dto.UpdateArtistRequest) (*dto.UpdateArtistResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if !user.IsArtist() {
		return nil, apperrors.ErrNotAnArtist
	}

	// Проверка диапазона только когда оба поля пришли в одном запросе
	if req.BudgetMin != nil && req.BudgetMax != nil && *req.BudgetMin > *req.BudgetMax {
		return nil, apperrors.ErrInvalidBudgetRange
	}

	userFields := map[string]interface{}{}
	if req.Name != nil {
		userFields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		userFields["city"] = strings.TrimSpace(*req.City)
	}
	if req.Service != nil {
		userFields["category"] = strings.TrimSpace(*req.Service)
	}

	profileFields := map[string]interface{}{}
	if req.Bio != nil {
		profileFields["bio"] = *req.Bio
	}
	if req.Img != nil {
		profileFields["img_url"] = *req.Img
	}
	if req.BudgetMin != nil {
		profileFields["budget_min"] = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		profileFields["budget_max"] = *req.BudgetMax
	}
	if req.Availability != nil {
		if !models.ValidAvailability(models.AvailabilityStatus(*req.Availability)) {
			return nil, apperrors.ErrInvalidAvailability
		}
		profileFields["availability_status"] = *req.Availability
	}

	resp := &dto.UpdateArtistResponse{Success: true}

	// Пустой запрос - no-op
	if len(userFields) == 0 && len(profileFields) == 0 {
		return resp, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(userFields) > 0 {
			if err := s.userRepo.UpdateFields(tx, userID, userFields); err != nil {
				return err
			}
		}

		if len(profileFields) > 0 {
			created, err := s.profileRepo.Upsert(tx, userID, profileFields)
			if err != nil {
				return err
			}
			resp.ProfileCreated = created
		}

		return nil
	})
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	if req.Img != nil {
		resp.Img = *req.Img
	}

	return resp, nil
}
