package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails возвращает копию ошибки с деталями, чтобы не мутировать
// предопределенные переменные при конкурентных запросах.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already registered", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid role", http.StatusBadRequest)
	ErrInvalidEmail       = New(CodeInvalidEmail, "Invalid email", http.StatusBadRequest)

	// Артисты и профили
	ErrArtistNotFound      = New(CodeArtistNotFound, "Artist not found", http.StatusNotFound)
	ErrNotAnArtist         = New(CodeNotAnArtist, "Not an artist account", http.StatusForbidden)
	ErrProfileNotFound     = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrInvalidBudgetRange  = New(CodeInvalidBudgetRange, "budget_min cannot exceed budget_max", http.StatusBadRequest)
	ErrInvalidAvailability = New(CodeInvalidAvailability, "Invalid availability value", http.StatusBadRequest)

	// Заявки
	ErrBookingNotFound       = New(CodeBookingNotFound, "Booking not found", http.StatusNotFound)
	ErrBookingAccessDenied   = New(CodeForbidden, "Not authorized to view this booking", http.StatusForbidden)
	ErrBookingUpdateDenied   = New(CodeForbidden, "Not authorized to update this booking", http.StatusForbidden)
	ErrBookingCancelDenied   = New(CodeForbidden, "Not authorized to cancel this booking", http.StatusForbidden)
	ErrInvalidBookingStatus  = New(CodeInvalidBookingStatus, "Invalid status", http.StatusBadRequest)
	ErrOnlyPendingCancelable = New(CodeInvalidStatusTransition, "Can only cancel pending bookings", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// InvalidTransition создает ошибку недопустимого перехода статусов.
func InvalidTransition(from, to string) *AppError {
	return New(CodeInvalidStatusTransition,
		fmt.Sprintf("Cannot change booking status from '%s' to '%s'", from, to),
		http.StatusBadRequest)
}

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// StorageError оборачивает сбой хранилища; ретраев внутри ядра нет,
// политика повторов - забота вызывающего.
func StorageError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Database error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}
