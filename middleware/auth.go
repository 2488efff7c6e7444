package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/config"
	"github.com/mechcorp/maintenance-api/models"
	"github.com/mechcorp/maintenance-api/services"
	"go.uber.org/zap"
)

const currentUserKey = "current_user"

// RequireAuth validates the bearer credential on the request and attaches
// the resolved caller to the gin context. The token's subject must match an
// existing user; a token for a deleted user is rejected.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header"})
			return
		}

		claims, err := services.GetTokenService().Validate(parts[1])
		if err != nil {
			config.Logger().Warn("rejected bearer token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		var user models.User
		if err := config.GetDB().First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the required set. It
// must run after RequireAuth. An empty set admits any authenticated caller.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := CurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		if !models.RoleAllowed(user.Role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the caller RequireAuth resolved for this request.
func CurrentUser(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, errors.New("no authenticated user in context")
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, errors.New("authenticated user has unexpected type")
	}
	return user, nil
}

// SetCurrentUser attaches a caller to the context (primarily for testing)
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
}
