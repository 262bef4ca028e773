package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pico/internal/models/db_models"
	"pico/internal/repositories"
	"pico/pkg/utils"
)

// RequireRole re-reads the authenticated user's row and passes only if the
// stored role matches. Roles are taken from the database, not from token
// claims, so a role change takes effect on the next request. A missing user
// row is a plain 403.
func RequireRole(users repositories.UserRepository, role db_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}

		if user == nil || user.Role != role {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
