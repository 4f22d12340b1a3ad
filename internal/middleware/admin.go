package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/develtlab/barber-booking/internal/httperr"
)

// RequireAdmin assume que AuthMiddleware já rodou na cadeia.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role != "admin" {
			httperr.Forbidden(c, "admin_only", "Acesso restrito a administradores.")
			c.Abort()
			return
		}
		c.Next()
	}
}
