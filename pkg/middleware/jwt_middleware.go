package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pico/pkg/utils"
)

// JWTAuthMiddleware authenticates the Authorization bearer token and places
// the email claim into the gin context. A missing header is 401; a present
// but invalid, expired or badly signed token is 403.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
