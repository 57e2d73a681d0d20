package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/domain"
)

// ErrorBody is the JSON envelope for error responses.
type ErrorBody struct {
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Error maps a domain error to its HTTP status. Unknown errors become a
// generic 500 so internal detail never reaches the caller.
func Error(c *gin.Context, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindNotFound:
			c.JSON(http.StatusNotFound, ErrorBody{Error: "Entity not found", Description: de.Message})
		case domain.KindBadRequest, domain.KindInvalidState:
			c.JSON(http.StatusBadRequest, ErrorBody{Error: de.Message})
		case domain.KindConflict:
			c.JSON(http.StatusConflict, ErrorBody{Error: "Conflict with server status", Description: de.Message})
		default:
			c.JSON(http.StatusInternalServerError, ErrorBody{Error: "An unexpected error"})
		}
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "An unexpected error"})
}
