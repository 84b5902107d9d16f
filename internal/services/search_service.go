package services

import (
	"strings"

	"artlink_backend/internal/repositories"
	"artlink_backend/internal/services/dto"
	"artlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 100
)

type SearchService interface {
	SearchArtists(db *gorm.DB, req *dto.SearchArtistsRequest) (*dto.SearchArtistsResponse, error)
}

type SearchServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewSearchService(userRepo repositories.UserRepository) SearchService {
	return &SearchServiceImpl{userRepo: userRepo}
}

// SearchArtists - фильтрованная пагинированная выдача артистов.
//
// Бюджетные фильтры - намеренно "мягкий" OR-тест: вопрос не "лежит ли
// число клиента внутри диапазона артиста", а "может ли артист в принципе
// подойти под такой бюджет". Артист без верхней границы, но с высоким
// минимумом, проходит фильтр по minBudget через ветку budget_min.
func (s *SearchServiceImpl) SearchArtists(db *gorm.DB, req *dto.SearchArtistsRequest) (*dto.SearchArtistsResponse, error) {
	criteria := repositories.ArtistSearchCriteria{
		Query:     strings.TrimSpace(req.Query),
		Service:   strings.TrimSpace(req.Service),
		Location:  strings.TrimSpace(req.Location),
		MinBudget: req.MinBudget,
		MaxBudget: req.MaxBudget,
		Limit:     clampLimit(req.Limit),
		Offset:    clampOffset(req.Offset),
	}

	rows, err := s.userRepo.SearchArtists(db, criteria)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	items := make([]dto.ArtistSearchItem, 0, len(rows))
	for _, row := range rows {
		item := dto.ArtistSearchItem{
			ID:        row.ID,
			Name:      dto.OptString(row.Name),
			Role:      "artist",
			Service:   dto.OptString(row.Category),
			BudgetMin: row.BudgetMin,
			BudgetMax: row.BudgetMax,
			Rating:    row.RatingAvg,
			Location:  dto.OptString(row.City),
			Img:       row.ImgURL,
			Bio:       row.Bio,
		}
		// reviews по умолчанию 0, даже когда профиля нет
		if row.ReviewsCount != nil {
			item.Reviews = *row.ReviewsCount
		}
		items = append(items, item)
	}

	return &dto.SearchArtistsResponse{
		Success: true,
		Items:   items,
		Count:   len(items),
	}, nil
}

// clampLimit нормализует limit: по умолчанию 50, диапазон [1,100]
func clampLimit(v *int) int {
	limit := defaultSearchLimit
	if v != nil {
		limit = *v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return limit
}

// clampOffset нормализует offset: не меньше нуля
func clampOffset(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
