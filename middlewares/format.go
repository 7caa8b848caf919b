package middlewares

import (
	"ClinicBridge/utils"
	"log"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"error": message})
}

// HttpErrorFrom maps a service error onto the appropriate HTTP status
// and writes it to the client.
func HttpErrorFrom(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	log.Printf("HTTP %d - %v", status, err)
	c.JSON(status, gin.H{"error": err.Error()})
}
