package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	permissions "github.com/ocevave/ocevave/internal/http/api/admin/permissions"
	log "github.com/sirupsen/logrus"
)

// adminPermissionMiddleware refuses admin routes that have no declared
// permission. It runs after the authorization gate.
func adminPermissionMiddleware() gin.HandlerFunc {
	permissionMap := permissions.DefinitionMap()

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}

		key := permissions.Key(c.Request.Method, path)
		def, ok := permissionMap[key]
		if !ok {
			log.WithField("route", key).Warn("admin route has no permission definition")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
		c.Set("adminPermission", def.Key)
		c.Next()
	}
}
