package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/fleet"
)

// RequireWrite gates mutating routes on the static capability matrix.
// Reads stay open to any authenticated principal; writes need a role that
// owns the module.
func RequireWrite(module fleet.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleIfc, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			return
		}
		roleStr, _ := roleIfc.(string)
		role, ok := fleet.ParseRole(roleStr)
		if !ok || !role.CanWrite(module) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": fmt.Sprintf("Access denied. Your role (%s) cannot modify %s.", roleStr, module),
			})
			return
		}
		c.Next()
	}
}
