package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasksphere/tasksphere/apperrors"
)

// respondError maps a service error to its HTTP status. Internal failures are
// logged server-side and surface only a generic message.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"message": apperrors.PublicMessage(err)})
}

// currentUserID reads the user id resolved by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return "", false
	}
	return userID.(string), true
}
