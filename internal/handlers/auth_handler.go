package handlers

import (
	"net/http"

	"artlink_backend/internal/middleware"
	"artlink_backend/internal/services"
	"artlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	// Protected routes
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.Me)
	}
}

// Register обрабатывает POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login обрабатывает POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me обрабатывает GET /api/me — профиль текущего пользователя.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	user, err := h.authService.Me(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
