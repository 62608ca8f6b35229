// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "questify_backend/internal/feature/auth/transport/handler"
	taskhandler "questify_backend/internal/feature/tasks/transport/handler"
	"questify_backend/internal/platform/http/handler"
)

// NewRouter wires the handlers into a gin engine.
// authMW is the bearer-token middleware guarding the protected routes.
func NewRouter(authHandler *authhandler.AuthHandler, taskHandler *taskhandler.TaskHandler,
	authMW gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	// New user registration
	r.POST("/signup", authHandler.Signup)
	// Login (issues the session token)
	r.POST("/login", authHandler.Login)

	// Protected routes: a valid bearer token is required
	auth := r.Group("/")
	auth.Use(authMW)
	{
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/current", authHandler.Current)

		auth.GET("/tasks", taskHandler.List)
		auth.POST("/tasks", taskHandler.Create)
		auth.PATCH("/tasks/:taskId", taskHandler.Update)
		auth.DELETE("/tasks/:taskId", taskHandler.Delete)
		auth.POST("/tasks/:taskId/finish", taskHandler.Finish)
	}

	return r
}
