package controllers

import (
	"ClinicBridge/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine, sessionAuth gin.HandlerFunc) {
	// Public routes: No authentication required
	router.POST("/api/auth/register", ac.Handler.Register)
	router.POST("/api/auth/login", ac.Handler.Login)
	router.POST("/api/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/api/auth/change-password", ac.Handler.ChangePassword)

	// Protected routes: Requires a valid session
	authGroup := router.Group("/api/auth").Use(sessionAuth)
	{
		authGroup.POST("/logout", ac.Handler.Logout)
		authGroup.GET("/me", ac.Handler.Me)
		authGroup.PUT("/role", ac.Handler.SwitchRole)
		authGroup.PUT("/profile", ac.Handler.UpdateProfile)
	}
}
