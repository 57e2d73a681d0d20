package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/application"
	"github.com/shareit-app/backend/internal/middleware"
	"github.com/shareit-app/backend/internal/response"
)

// ItemHandler handles HTTP requests for item operations.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item routes on the given router group.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	items.Use(middleware.ActorMiddleware())
	{
		items.POST("", h.CreateItem)
		items.PATCH("/:itemId", h.UpdateItem)
		items.GET("/:itemId", h.GetItem)
		items.GET("", h.ListOwnItems)
		items.GET("/search", h.SearchItems)
		items.POST("/:itemId/comment", h.AddComment)
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}

	var req application.CreateItemRequest
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

// UpdateItem handles PATCH /items/:itemId.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), actorID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetItem handles GET /items/:itemId.
func (h *ItemHandler) GetItem(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), actorID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListOwnItems handles GET /items.
func (h *ItemHandler) ListOwnItems(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}

	result, err := h.service.GetAllByOwner(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SearchItems handles GET /items/search?text=.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddComment handles POST /items/:itemId/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.BadRequest(c, "missing or invalid X-Sharer-User-Id header")
		return
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req application.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddComment(c.Request.Context(), actorID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
