// Package api defines the shared JSON response envelopes and the central
// error-to-status translation used by all HTTP handlers.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authusecase "questify_backend/internal/feature/auth/usecase"
	taskusecase "questify_backend/internal/feature/tasks/usecase"
	"questify_backend/internal/platform/validation"
)

// ErrorResponse is the body for a single-error failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the body for a schema validation failure.
// Message carries one violation per offending field.
type ValidationErrorResponse struct {
	Message []validation.Violation `json:"message"`
}

// UserResponse is the public projection of a user.
// The password hash and session token are never serialized.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WriteValidationError renders a 400 with the structured violation list.
func WriteValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Message: validation.Describe(err)})
}

// WriteError translates a usecase error into an HTTP status and body.
// Unrecognized errors become a uniform 500 so infrastructure failures are
// never leaked to clients unformatted.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authusecase.ErrEmailInUse):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Email in use"})
	case errors.Is(err, authusecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Email or password is wrong"})
	case errors.Is(err, taskusecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Task not found"})
	default:
		slog.Error("unhandled error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	}
}
