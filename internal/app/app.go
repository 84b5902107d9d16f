package app

import (
	"fmt"

	"artlink_backend/database"
	"artlink_backend/internal/config"
	"artlink_backend/internal/email"
	"artlink_backend/internal/handlers"
	"artlink_backend/internal/logger"
	"artlink_backend/internal/middleware"
	"artlink_backend/internal/repositories"
	"artlink_backend/internal/routes"
	"artlink_backend/internal/services"
	"artlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.Username,
			Password:  cfg.Email.Password,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		})
		if err := emailService.Validate(); err != nil {
			logger.Fatal("Invalid email configuration", "error", err)
		}
		logger.Info("Email service initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("--- Email-сервис отключен. Используется MOCK. ---")
		emailService = &MockEmailProvider{}
	}

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewArtistProfileRepository()
	bookingRepo := repositories.NewBookingRepository()

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, profileRepo, emailService)
	artistService := services.NewArtistService(userRepo, profileRepo)
	bookingService := services.NewBookingService(bookingRepo, userRepo, emailService)
	searchService := services.NewSearchService(userRepo)

	return &services.ServiceContainer{
		AuthService:    authService,
		ArtistService:  artistService,
		BookingService: bookingService,
		SearchService:  searchService,
		EmailService:   emailService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	return handlers.NewAppHandlers(customValidator, sc)
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
