package handlers

import (
	"net/http"

	"artlink_backend/internal/middleware"
	"artlink_backend/internal/services"
	"artlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("", h.Create)
		bookings.GET("/my-requests", h.MyRequests)
		bookings.GET("/received", h.Received)
		bookings.GET("/:id", h.Get)
		bookings.PATCH("/:id/status", h.UpdateStatus)
		bookings.DELETE("/:id", h.Cancel)
	}
}

// Create обрабатывает POST /api/bookings — клиент отправляет заявку артисту.
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.bookingService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// MyRequests обрабатывает GET /api/bookings/my-requests — заявки,
// отправленные текущим клиентом.
func (h *BookingHandler) MyRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.bookingService.ListForClient(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Received обрабатывает GET /api/bookings/received — заявки, полученные
// текущим артистом.
func (h *BookingHandler) Received(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	resp, err := h.bookingService.ListForArtist(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get обрабатывает GET /api/bookings/:id — заявка доступна только её сторонам.
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")

	db := h.GetDB(c)
	resp, err := h.bookingService.Get(db, bookingID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStatus обрабатывает PATCH /api/bookings/:id/status — артист
// принимает, отклоняет или завершает заявку.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")

	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.bookingService.UpdateStatus(db, bookingID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Cancel обрабатывает DELETE /api/bookings/:id — клиент отменяет заявку
// в статусе pending.
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")

	db := h.GetDB(c)
	if err := h.bookingService.Cancel(db, bookingID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking request cancelled",
	})
}
