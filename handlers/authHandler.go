package handlers

import (
	"ClinicBridge/middlewares"
	"ClinicBridge/models"
	"ClinicBridge/services"
	"ClinicBridge/sessions"
	"ClinicBridge/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService  *services.UserService
	Directory    sessions.Directory
	SymmetricKey []byte
}

func NewAuthHandler(userService *services.UserService, directory sessions.Directory, symmetricKey []byte) *AuthHandler {
	return &AuthHandler{
		UserService:  userService,
		Directory:    directory,
		SymmetricKey: symmetricKey,
	}
}

// Register creates the account and opens a session for it, so a fresh
// registrant is signed in without a separate login round trip.
func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.UserService.Register(input)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}

	token, expires, err := utils.GenerateSessionToken(h.SymmetricKey, user.ID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate session token"})
		return
	}

	session := sessions.Session{UserID: user.ID, Expires: expires}
	if err := h.Directory.Put(c.Request.Context(), token, session); err != nil {
		c.JSON(500, gin.H{"error": "Failed to open session"})
		return
	}

	c.JSON(201, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login authenticates the user and opens a session
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.UserService.Authenticate(credentials.Username, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid username or password"})
		return
	}

	token, expires, err := utils.GenerateSessionToken(h.SymmetricKey, user.ID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate session token"})
		return
	}

	session := sessions.Session{UserID: user.ID, Expires: expires}
	if err := h.Directory.Put(c.Request.Context(), token, session); err != nil {
		c.JSON(500, gin.H{"error": "Failed to open session"})
		return
	}

	c.JSON(200, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout revokes the current session token
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middlewares.BearerToken(c)
	if !ok {
		c.JSON(400, gin.H{"error": "Authorization header is missing or malformed"})
		return
	}

	if err := h.Directory.Revoke(c.Request.Context(), token); err != nil {
		c.JSON(500, gin.H{"error": "Failed to revoke session"})
		return
	}

	c.Status(200)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(200, gin.H{"user": user})
}

// SwitchRole changes the user's active role for subsequent requests
func (h *AuthHandler) SwitchRole(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var data struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.UserService.SwitchRole(actor.ID, data.Role)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}

	c.JSON(200, gin.H{"user": user})
}

// UpdateProfile updates the user's profile information
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.UserService.UpdateProfile(actor.ID, upd)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}

	c.JSON(200, gin.H{"user": user})
}

// SendResetCode sends a password reset code to the user's email
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.SendResetCode(c.Request.Context(), data.Email); err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}

	c.Status(200)
}

// ChangePassword resets the user's password using an emailed code
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.ResetPassword(c.Request.Context(), data.Email, data.Code, data.NewPassword); err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}

	c.Status(200)
}
