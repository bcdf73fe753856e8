package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/auth"
)

// getUserID returns the member id of the request identity, or nil for
// guests and the privileged account.
func getUserID(c *gin.Context) *uint64 {
	return auth.CurrentUserID(c)
}
