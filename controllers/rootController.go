package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusHandler reports that the API is up.
func statusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ClinicBridge",
		"status":  "ok",
	})
}

// SetupRootRoute registers the liveness endpoints.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", statusHandler)
	router.GET("/health", statusHandler)
}
