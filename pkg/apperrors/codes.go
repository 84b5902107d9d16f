package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeArtistNotFound  ErrorCode = "ARTIST_NOT_FOUND"
	CodeProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	CodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists      ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeNotAnArtist             ErrorCode = "NOT_AN_ARTIST"
	CodeInvalidBudgetRange      ErrorCode = "INVALID_BUDGET_RANGE"
	CodeInvalidAvailability     ErrorCode = "INVALID_AVAILABILITY"
	CodeInvalidBookingStatus    ErrorCode = "INVALID_BOOKING_STATUS"
	CodeInvalidStatusTransition ErrorCode = "INVALID_STATUS_TRANSITION"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
