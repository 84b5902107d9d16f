package handlers

import (
	"net/http"

	"artlink_backend/internal/middleware"
	"artlink_backend/internal/models"
	"artlink_backend/internal/services"
	"artlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	*BaseHandler
	artistService services.ArtistService
	searchService services.SearchService
}

func NewArtistHandler(base *BaseHandler, artistService services.ArtistService, searchService services.SearchService) *ArtistHandler {
	return &ArtistHandler{
		BaseHandler:   base,
		artistService: artistService,
		searchService: searchService,
	}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.GET("/artists", h.Search)

	// Protected routes
	artist := r.Group("/artist")
	artist.Use(middleware.AuthMiddleware())
	{
		artist.GET("/me", middleware.RoleMiddleware(models.UserRoleArtist), h.Me)
		artist.POST("/update", middleware.RoleMiddleware(models.UserRoleArtist), h.Update)
	}
}

// Me обрабатывает GET /api/artist/me — собственный профиль артиста.
func (h *ArtistHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.artistService.Me(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update обрабатывает POST /api/artist/update — частичное обновление
// аккаунта и профиля артиста.
func (h *ArtistHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateArtistRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.artistService.UpdateMe(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Search обрабатывает GET /api/artists — публичный поиск артистов.
func (h *ArtistHandler) Search(c *gin.Context) {
	var req dto.SearchArtistsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.searchService.SearchArtists(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
