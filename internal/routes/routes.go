package routes

import (
	"artlink_backend/internal/handlers"
	"artlink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP-маршруты приложения.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers, // <-- Принимаем ГОТОВЫЕ хэндлеры
) {
	// Регистрация HTTP API
	api := ginRouter.Group("/api")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Artist.RegisterRoutes(api)
		appHandlers.Booking.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered", "base_path", "/api")
}
