package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tasksphere/tasksphere/dto"
	"github.com/tasksphere/tasksphere/services"
)

// AuthController exposes registration, login and the current-user profile.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	user, err := ctrl.auth.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	authResponse, err := ctrl.auth.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Set token as HttpOnly cookie for browser clients; API clients use the
	// token from the response body as a Bearer header.
	c.SetCookie(
		"access_token",
		authResponse.Token,
		int(time.Until(authResponse.ExpiresAt).Seconds()),
		"/",
		"",
		true,
		true,
	)
	c.JSON(http.StatusOK, authResponse)
}

// Me handles GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := ctrl.auth.CurrentUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
