package gateway

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/application"
	bookingDomain "github.com/shareit-app/backend/internal/domain/booking"
	"github.com/shareit-app/backend/internal/middleware"
	"github.com/shareit-app/backend/internal/response"
)

// Handler exposes the gateway's validating HTTP surface.
type Handler struct {
	client *Client
}

// NewHandler creates a gateway Handler forwarding through client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// RegisterRoutes registers the full gateway surface on the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("", h.createUser)
		users.PATCH("/:userId", h.updateUser)
		users.GET("/:userId", h.passthrough)
		users.GET("", h.passthrough)
		users.DELETE("/:userId", h.passthrough)
	}

	items := r.Group("/items")
	items.Use(middleware.ActorMiddleware(), requireActor())
	{
		items.POST("", h.createItem)
		items.PATCH("/:itemId", h.forwardJSON)
		items.GET("/:itemId", h.passthrough)
		items.GET("", h.passthrough)
		items.GET("/search", h.passthrough)
		items.POST("/:itemId/comment", h.createComment)
	}

	bookings := r.Group("/bookings")
	bookings.Use(middleware.ActorMiddleware(), requireActor())
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/owner", h.listBookings)
		bookings.GET("/:bookingId", h.passthrough)
		bookings.PATCH("/:bookingId", h.setApproval)
		bookings.DELETE("/:bookingId", h.passthrough)
	}

	requests := r.Group("/requests")
	requests.Use(middleware.ActorMiddleware(), requireActor())
	{
		requests.POST("", h.createRequest)
		requests.GET("", h.passthrough)
		requests.GET("/all", h.listOtherRequests)
		requests.GET("/:requestId", h.passthrough)
	}
}

// --- Validating endpoints ---

func (h *Handler) createBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ItemID <= 0 {
		response.BadRequest(c, "itemId must be positive")
		return
	}
	now := time.Now()
	if req.Start.Before(now) {
		response.BadRequest(c, "start must not be in the past")
		return
	}
	if !req.Start.Before(req.End) {
		response.BadRequest(c, "start must be before end")
		return
	}
	h.relay(c, req)
}

func (h *Handler) setApproval(c *gin.Context) {
	approved := c.Query("approved")
	if approved != "true" && approved != "false" {
		response.BadRequest(c, "approved must be true or false")
		return
	}
	h.relay(c, nil)
}

func (h *Handler) listBookings(c *gin.Context) {
	state := c.DefaultQuery("state", "ALL")
	if _, err := bookingDomain.ParseState(state); err != nil {
		response.Error(c, err)
		return
	}
	if !validPagination(c) {
		response.BadRequest(c, "from must be non-negative and size positive")
		return
	}
	h.relay(c, nil)
}

func (h *Handler) createItem(c *gin.Context) {
	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		response.BadRequest(c, "name and description must not be blank")
		return
	}
	h.relay(c, req)
}

func (h *Handler) createComment(c *gin.Context) {
	var req application.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		response.BadRequest(c, "text must not be blank")
		return
	}
	h.relay(c, req)
}

func (h *Handler) createUser(c *gin.Context) {
	var req application.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !validEmail(req.Email) {
		response.BadRequest(c, "email must be a valid address")
		return
	}
	h.relay(c, req)
}

func (h *Handler) updateUser(c *gin.Context) {
	var req application.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Email != nil && !validEmail(*req.Email) {
		response.BadRequest(c, "email must be a valid address")
		return
	}
	h.relay(c, req)
}

func (h *Handler) createRequest(c *gin.Context) {
	var req application.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		response.BadRequest(c, "description must not be blank")
		return
	}
	h.relay(c, req)
}

func (h *Handler) listOtherRequests(c *gin.Context) {
	if !validPagination(c) {
		response.BadRequest(c, "from must be non-negative and size positive")
		return
	}
	h.relay(c, nil)
}

// forwardJSON relays the request body without shape checks beyond it being
// valid JSON.
func (h *Handler) forwardJSON(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.relay(c, body)
}

// passthrough relays a bodyless request as-is.
func (h *Handler) passthrough(c *gin.Context) {
	h.relay(c, nil)
}

// --- Relay plumbing ---

func (h *Handler) relay(c *gin.Context, body interface{}) {
	actorID, _ := middleware.GetActorID(c)
	query := url.Values(c.Request.URL.Query())
	result, err := h.client.Forward(c.Request.Context(), c.Request.Method, c.Request.URL.Path, query, actorID, body)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorBody{
			Error:       "Core server unavailable",
			Description: err.Error(),
		})
		return
	}
	if len(result.Body) == 0 {
		c.Status(result.Status)
		return
	}
	c.Data(result.Status, "application/json", result.Body)
}

// requireActor rejects requests lacking a usable sharer-user header before
// they leave the gateway.
func requireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.GetActorID(c); !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorBody{
				Error: "missing or invalid X-Sharer-User-Id header",
			})
			return
		}
		c.Next()
	}
}

func validPagination(c *gin.Context) bool {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		return false
	}
	return from >= 0 && size > 0
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
