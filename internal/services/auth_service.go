package services

import (
	"strings"

	"artlink_backend/internal/auth"
	"artlink_backend/internal/email"
	"artlink_backend/internal/logger"
	"artlink_backend/internal/models"
	"artlink_backend/internal/repositories"
	"artlink_backend/internal/services/dto"
	"artlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(db *gorm.DB, userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ArtistProfileRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ArtistProfileRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового пользователя.
// Email нормализуется к нижнему регистру; уникальность - по всем ролям.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Role != models.UserRoleArtist && req.Role != models.UserRoleClient {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	emailNorm := strings.ToLower(strings.TrimSpace(req.Email))
	if emailNorm == "" {
		return nil, apperrors.ErrInvalidEmail
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Role:         req.Role,
		Email:        emailNorm,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		City:         strings.TrimSpace(req.City),
		Category:     strings.TrimSpace(req.Category),
		PortfolioURL: strings.TrimSpace(req.PortfolioURL),
		BusinessType: strings.TrimSpace(req.BusinessType),
		AddressLine:  strings.TrimSpace(req.AddressLine),
		StateRegion:  strings.TrimSpace(req.StateRegion),
		PostalCode:   strings.TrimSpace(req.PostalCode),
		Country:      strings.TrimSpace(req.Country),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.StorageError(err)
	}

	resp := &dto.RegisterResponse{
		Success: true,
		User:    dto.NewUserDTO(user),
	}

	// Профиль артиста создается сразу только если при регистрации
	// передано фото; иначе - лениво при первом обновлении профиля.
	if user.Role == models.UserRoleArtist && req.ImgURL != "" {
		profile := &models.ArtistProfile{
			UserID: user.ID,
			ImgURL: req.ImgURL,
		}
		if err := s.profileRepo.Create(db, profile); err != nil {
			return nil, apperrors.StorageError(err)
		}
		resp.Img = req.ImgURL
	}

	s.sendWelcomeEmail(user)

	return resp, nil
}

// Login - аутентификация пользователя. Если роль указана, поиск
// ограничивается аккаунтом этой роли; неверная роль неотличима
// от неверного пароля.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	emailNorm := strings.ToLower(strings.TrimSpace(req.Email))

	var user *models.User
	var err error
	if req.Role != "" {
		if req.Role != models.UserRoleArtist && req.Role != models.UserRoleClient {
			return nil, apperrors.ErrInvalidUserRole
		}
		user, err = s.userRepo.FindByEmailAndRole(db, emailNorm, req.Role)
	} else {
		user, err = s.userRepo.FindByEmail(db, emailNorm)
	}

	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.NewUserDTO(user),
	}, nil
}

// Me возвращает текущую идентичность запрашивающего
func (s *AuthServiceImpl) Me(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	u := dto.NewUserDTO(user)
	return &u, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}
	if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
		logger.Warn("Failed to send welcome email", "email", user.Email, "error", err)
	}
}
