// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"questify_backend/internal/api"
	"questify_backend/internal/feature/auth/domain/entity"
	"questify_backend/internal/feature/auth/transport/http/dto"
	jwtmw "questify_backend/internal/platform/jwt"
)

// AuthUsecase defines the usecase interface for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with the given name, email and password.
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login authenticates a user and returns a session token on success.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// Logout clears the user's stored session token.
	Logout(ctx context.Context, userID uint) error
}

// AuthHandler handles HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and deals in JSON requests/responses.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// - Binds the request JSON to SignupReq
// - Returns 400 with the violation list when validation fails
// - Returns 409 when the email is already registered
// - Returns 201 with the public user fields on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteValidationError(c, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}
	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignupResponse{
		User: api.UserResponse{Name: user.Name, Email: user.Email},
	})
}

// Login handles the user login endpoint.
// - Binds the request JSON to LoginReq
// - Returns 400 with the violation list when validation fails
// - Returns 401 on bad credentials, identically for an unknown email and a
//   wrong password
// - Returns 200 with the session token and public user fields on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteValidationError(c, err)
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}
	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  api.UserResponse{Name: user.Name, Email: user.Email},
	})
}

// Logout handles the logout endpoint.
// It clears the stored session token, which revokes every token previously
// issued to the user, and returns 204.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), user.ID); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("user logout successful", "email", user.Email)
	c.Status(http.StatusNoContent)
}

// Current handles the current-user endpoint.
// The middleware already resolved the user, so no further store access
// happens here.
func (h *AuthHandler) Current(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
		return
	}
	c.JSON(http.StatusOK, api.UserResponse{Name: user.Name, Email: user.Email})
}
