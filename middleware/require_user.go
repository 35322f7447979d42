package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// RequireSignedIn rejects requests whose session has no signed-in user.
// Must be used AFTER SessionMiddleware.
func RequireSignedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := GetSession(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialised"))
			c.Abort()
			return
		}

		user, ok := s.Auth.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not signed in"))
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Next()
	}
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}
