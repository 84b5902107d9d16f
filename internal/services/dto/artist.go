package dto

import "artlink_backend/internal/models"

// ArtistMeResponse - денормализованное представление артиста:
// идентичность из users + атрибуты из artist_profiles.
type ArtistMeResponse struct {
	ID           string          `json:"id"`
	Role         models.UserRole `json:"role"`
	Name         *string         `json:"name"`
	Email        string          `json:"email"`
	Service      *string         `json:"service"`
	City         *string         `json:"city"`
	Img          *string         `json:"img"`
	Bio          *string         `json:"bio"`
	BudgetMin    *float64        `json:"budget_min"`
	BudgetMax    *float64        `json:"budget_max"`
	Availability *string         `json:"availability"`
	Rating       *float64        `json:"rating"`
	Reviews      int             `json:"reviews"`
}

// UpdateArtistRequest - частичное обновление артиста.
// nil означает "поле не передано"; различаем отсутствие и пустое значение.
type UpdateArtistRequest struct {
	// Поля идентичности (users)
	Name    *string `json:"name,omitempty"`
	City    *string `json:"city,omitempty"`
	Service *string `json:"service,omitempty"`

	// Поля профиля (artist_profiles)
	Bio          *string  `json:"bio,omitempty"`
	Img          *string  `json:"img,omitempty"`
	BudgetMin    *float64 `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax    *float64 `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	Availability *string  `json:"availability,omitempty" validate:"omitempty,is-availability"`
}

// UpdateArtistResponse - результат обновления
type UpdateArtistResponse struct {
	Success        bool   `json:"success"`
	Img            string `json:"img,omitempty"`
	ProfileCreated bool   `json:"profile_created,omitempty"`
}
