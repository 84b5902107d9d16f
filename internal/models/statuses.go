package models

type UserRole string
type AvailabilityStatus string
type BookingStatus string

const (
	UserRoleArtist UserRole = "artist"
	UserRoleClient UserRole = "client"

	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookingTransitions описывает допустимые переходы статусов заявки.
// rejected, completed и cancelled - терминальные состояния.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusAccepted: {BookingStatusCompleted},
}

// CanTransition проверяет, достижим ли статус to из статуса from.
// Повторное применение одного и того же перехода всегда запрещено.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidBookingStatus проверяет, что строка является известным статусом заявки.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusRejected,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// ValidAvailability проверяет значение статуса доступности артиста.
func ValidAvailability(s AvailabilityStatus) bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	default:
		return false
	}
}
