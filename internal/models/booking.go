package models

import "time"

// BookingRequest - заявка клиента на выступление артиста.
// Запись никогда не удаляется физически: отмена - это терминальный статус.
type BookingRequest struct {
	BaseModel
	ClientID      string    `gorm:"type:uuid;not null;index:idx_bookings_client,priority:1"`
	ArtistID      string    `gorm:"type:uuid;not null;index:idx_bookings_artist,priority:1"`
	EventType     string    `gorm:"not null"`
	EventDate     time.Time `gorm:"not null"`
	EventLocation string    `gorm:"not null"`
	Budget        *float64
	Message       string        `gorm:"not null"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending';index"`

	// Ответ артиста; выставляется только артистом вместе со сменой статуса
	ArtistResponse string

	// Снимок контактов клиента на момент создания заявки
	ClientName  string
	ClientEmail string
	ClientPhone string

	// Relations
	Client *User `gorm:"foreignKey:ClientID"`
	Artist *User `gorm:"foreignKey:ArtistID"`
}
