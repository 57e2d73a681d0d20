package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/application"
	"github.com/shareit-app/backend/internal/middleware"
	"github.com/shareit-app/backend/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.ActorMiddleware())
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListByBooker)
		bookings.GET("/owner", h.ListByOwner)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.PATCH("/:bookingId", h.SetApproval)
		bookings.DELETE("/:bookingId", h.CancelBooking)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SetApproval handles PATCH /bookings/:bookingId?approved={true|false}.
func (h *BookingHandler) SetApproval(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "approved must be true or false")
		return
	}

	result, err := h.service.SetApproval(c.Request.Context(), actorID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CancelBooking handles DELETE /bookings/:bookingId.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), actorID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), actorID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListByBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	state, from, size, err := parseListQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListByBooker(c.Request.Context(), actorID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListByOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	state, from, size, err := parseListQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListByOwner(c.Request.Context(), actorID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
