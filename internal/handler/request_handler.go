package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/application"
	"github.com/shareit-app/backend/internal/middleware"
	"github.com/shareit-app/backend/internal/response"
)

// RequestHandler handles HTTP requests for item request operations.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers all item request routes on the given router
// group.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(middleware.ActorMiddleware())
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListOwnRequests)
		requests.GET("/all", h.ListOtherRequests)
		requests.GET("/:requestId", h.GetRequest)
	}
}

// CreateRequest handles POST /requests.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}

	var req application.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListOwnRequests handles GET /requests.
func (h *RequestHandler) ListOwnRequests(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}

	result, err := h.service.GetOwn(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListOtherRequests handles GET /requests/all?from=&size=.
func (h *RequestHandler) ListOtherRequests(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	from, size, err := parsePagination(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetOthers(c.Request.Context(), actorID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetRequest handles GET /requests/:requestId.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	requestID, err := parseIDParam(c, "requestId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), actorID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
