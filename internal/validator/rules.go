package validator

import (
	"log"

	"artlink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Правило не зарегистрировалось - приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': роль пользователя (artist | client)
	mustRegister("is-user-role", validateUserRole)

	// 'is-availability': статус доступности артиста
	mustRegister("is-availability", validateAvailability)

	// 'is-booking-status': статус заявки на бронирование
	mustRegister("is-booking-status", validateBookingStatus)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleArtist, models.UserRoleClient:
		return true
	default:
		return false
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidAvailability(models.AvailabilityStatus(value))
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidBookingStatus(models.BookingStatus(value))
}
