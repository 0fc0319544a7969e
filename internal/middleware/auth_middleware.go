package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"coursework/internal/auth"
	"coursework/internal/model"
	"coursework/internal/repository"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the resolved *model.User.
const CurrentUserKey = "currentUser"

// JWTAuthMiddleware resolves the bearer credential to a full user record.
// A missing or malformed header, an invalid or expired token, and a subject
// with no matching user all end the request with 401.
func JWTAuthMiddleware(jwtSecret string, users repository.UserRepositoryInterface, storeTimeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		email, err := auth.ParseToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// The user lookup is a store call like any other and runs under the
		// same bounded timeout as the service layer.
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}
		if user == nil {
			// Token subject no longer exists; same response as a bad token.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
