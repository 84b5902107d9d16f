package dto

import "artlink_backend/internal/models"

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`

	// Общие поля
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`

	// Поля артиста
	Category     string `json:"category"`
	PortfolioURL string `json:"portfolio_url"`

	// Фото профиля артиста (URL, загрузка файлов - вне ядра)
	ImgURL string `json:"img_url"`

	// Бизнес-поля клиента
	BusinessType string `json:"business_type"`
	AddressLine  string `json:"address_line"`
	StateRegion  string `json:"state_region"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// LoginRequest - запрос входа. Роль опциональна: при наличии логин
// ограничивается аккаунтом этой роли.
type LoginRequest struct {
	Email    string          `json:"email" validate:"required"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

// UserDTO - публичная информация о пользователе
type UserDTO struct {
	ID    string          `json:"id"`
	Role  models.UserRole `json:"role"`
	Name  *string         `json:"name"`
	Email string          `json:"email"`
}

// RegisterResponse - ответ регистрации
type RegisterResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
	Img     string  `json:"img,omitempty"`
}

// LoginResponse - ответ входа с токеном
type LoginResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// NewUserDTO собирает публичное представление пользователя.
// name сериализуется как null если не заполнено, как в исходном API.
func NewUserDTO(user *models.User) UserDTO {
	dto := UserDTO{
		ID:    user.ID,
		Role:  user.Role,
		Email: user.Email,
	}
	if user.Name != "" {
		name := user.Name
		dto.Name = &name
	}
	return dto
}
