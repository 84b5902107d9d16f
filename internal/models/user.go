package models

type User struct {
	BaseModel
	Role         UserRole `gorm:"type:varchar(20);not null;index"`
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	Phone        string
	Category     string // вид услуги (только для артистов)
	City         string
	PortfolioURL string
	PasswordHash string `gorm:"not null"`

	// Бизнес-поля клиента
	BusinessType string
	AddressLine  string
	StateRegion  string
	PostalCode   string
	Country      string

	// Relations
	ArtistProfile *ArtistProfile `gorm:"foreignKey:UserID"`
}

func (u *User) IsArtist() bool {
	return u.Role == UserRoleArtist
}
