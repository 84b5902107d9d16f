package repositories

import (
	"errors"

	"artlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindByEmailAndRole(db *gorm.DB, email string, role models.UserRole) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	SearchArtists(db *gorm.DB, criteria ArtistSearchCriteria) ([]ArtistRow, error)
}

type UserRepositoryImpl struct{}

// ArtistSearchCriteria - критерии поиска артистов.
// Лимиты и смещение должны быть уже нормализованы сервисным слоем.
type ArtistSearchCriteria struct {
	Query     string
	Service   string
	Location  string
	MinBudget *float64
	MaxBudget *float64
	Limit     int
	Offset    int
}

// ArtistRow - денормализованная строка users LEFT JOIN artist_profiles.
// Поля профиля nullable: у свежезарегистрированного артиста профиля нет.
type ArtistRow struct {
	ID           string
	Name         string
	Category     string
	City         string
	ImgURL       *string
	Bio          *string
	BudgetMin    *float64
	BudgetMax    *float64
	RatingAvg    *float64
	ReviewsCount *int
}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("ArtistProfile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmailAndRole(db *gorm.DB, email string, role models.UserRole) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ? AND role = ?", email, role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	// Check if user already exists
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	res := db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SearchArtists выполняет LEFT JOIN users с artist_profiles и применяет
// фильтры поиска. Бюджетные фильтры - намеренно "мягкий" OR-тест на
// пересечение диапазонов (см. комментарий в search_service).
func (r *UserRepositoryImpl) SearchArtists(db *gorm.DB, criteria ArtistSearchCriteria) ([]ArtistRow, error) {
	query := db.Table("users").
		Select(`users.id, users.name, users.category, users.city,
			artist_profiles.img_url, artist_profiles.bio,
			artist_profiles.budget_min, artist_profiles.budget_max,
			artist_profiles.rating_avg, artist_profiles.reviews_count`).
		Joins("LEFT JOIN artist_profiles ON artist_profiles.user_id = users.id").
		Where("users.role = ?", models.UserRoleArtist)

	// Text search
	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("(users.name ILIKE ? OR users.category ILIKE ?)", search, search)
	}

	if criteria.Service != "" {
		query = query.Where("users.category = ?", criteria.Service)
	}

	if criteria.Location != "" {
		query = query.Where("users.city ILIKE ?", "%"+criteria.Location+"%")
	}

	// У артистов без профиля оба бюджета NULL - ни одна из веток OR не
	// срабатывает, и активный бюджетный фильтр их исключает.
	if criteria.MinBudget != nil {
		query = query.Where("(artist_profiles.budget_max >= ? OR artist_profiles.budget_min >= ?)",
			*criteria.MinBudget, *criteria.MinBudget)
	}

	if criteria.MaxBudget != nil {
		query = query.Where("(artist_profiles.budget_min <= ? OR artist_profiles.budget_max <= ?)",
			*criteria.MaxBudget, *criteria.MaxBudget)
	}

	var rows []ArtistRow
	err := query.
		Order("users.created_at DESC, users.id DESC").
		Offset(criteria.Offset).
		Limit(criteria.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
