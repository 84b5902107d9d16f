package models

// ArtistProfile - расширение пользователя с ролью artist (один-к-одному).
// Создается лениво: при первом обновлении профиля либо при регистрации с фото.
type ArtistProfile struct {
	BaseModel
	UserID             string `gorm:"uniqueIndex;not null"`
	ImgURL             string
	Bio                string
	BudgetMin          *float64
	BudgetMax          *float64
	AvailabilityStatus AvailabilityStatus `gorm:"type:varchar(20);default:'available'"`
	RatingAvg          *float64
	ReviewsCount       int `gorm:"default:0"`
}
