package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/utils"
)

// TokenChecker reports whether token is the active token of userID.
type TokenChecker interface {
	TokenActive(ctx context.Context, userID int, token string) (bool, error)
}

// AuthMiddleware проверяет Bearer JWT и сохраняет user_id и role в контексте
func AuthMiddleware(tokens TokenChecker, jwtKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT([]byte(jwtKey), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		active, err := tokens.TokenActive(c.Request.Context(), claims.UserID, tokenStr)
		if err != nil {
			logrus.Errorf("token check for user %d: %v", claims.UserID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Token check failed"})
			return
		}
		if !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired or revoked"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// ModeratorMiddleware - требует роль "moderator"
func ModeratorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != ds.RoleModerator {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Moderator access required"})
			return
		}
		c.Next()
	}
}
