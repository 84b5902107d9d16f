package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// HandleError - обработка ошибок для Gin контекста
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}

	c.JSON(err.HTTPCode, ErrorResponse{Success: false, Error: err})
}

// HandleValidationError - специальный обработчик для ошибок валидации
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}
