package middlewares

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"ClinicBridge/sessions"
	"ClinicBridge/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// SessionAuthMiddleware validates the session token from the Authorization
// header and loads the authenticated user into the request context.
func SessionAuthMiddleware(symmetricKey []byte, directory sessions.Directory, userRepo *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing or malformed"})
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(symmetricKey, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}

		// The directory is the source of truth for revocation: a token that
		// decrypts but was logged out must be rejected.
		session, found, err := directory.Lookup(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate session"})
			c.Abort()
			return
		}
		if !found || session.UserID != claims.UserID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			c.Abort()
			return
		}

		user, ok := userRepo.GetByID(claims.UserID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// BearerToken extracts the Bearer token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

// CurrentUser retrieves the authenticated user placed in the context by
// SessionAuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
