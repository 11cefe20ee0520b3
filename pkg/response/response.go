package response

import (
	"errors"
	"net/http"

	"github.com/Eman-Abukhater/kanban-board-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AppError is a structured application error carrying the HTTP status it maps
// to. Details, when present, are merged into the error envelope (used by the
// close-board precondition to report the current progress).
type AppError struct {
	HTTPStatus int
	Message    string
	Details    map[string]interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

// Error constructors, one per taxonomy entry.

// NewValidation reports missing or malformed caller input (400).
func NewValidation(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: msg}
}

// NewNotFound reports a missing id or an id that does not belong to the
// claimed parent (404).
func NewNotFound(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Message: msg}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Message: msg}
}

func NewForbidden(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusForbidden, Message: msg}
}

// NewPreconditionFailed reports a business-rule gate with a diagnostic
// payload, surfaced as 400.
func NewPreconditionFailed(msg string, details map[string]interface{}) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: msg, Details: details}
}

// NewConflict reports a cascading step that could not complete (409).
func NewConflict(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusConflict, Message: msg}
}

func NewPayloadTooLarge(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusRequestEntityTooLarge, Message: msg}
}

// --- Gin response helpers ---

// Success sends a 200 OK response with the entity payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 Created response with the entity payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends the wire error envelope {"error": <message>}. An *AppError maps
// to its own status; anything else is an unexpected store failure: it is
// logged and returned as an opaque 500.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		for k, v := range appErr.Details {
			body[k] = v
		}
		c.JSON(appErr.HTTPStatus, body)
		return
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// Convenience error responses for handler-level input failures.

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func PayloadTooLarge(c *gin.Context, msg string) {
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": msg})
}
