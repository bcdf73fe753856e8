package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/http/respond"
)

// Gate verdicts.
var (
	// ErrUnauthenticated is returned when the request carries no identity.
	ErrUnauthenticated = apperr.Unauthenticated("Unauthorized")
	// ErrForbidden is returned when the identity is not the privileged account.
	ErrForbidden = apperr.Forbidden("Forbidden: Admin access required")
)

// Gate authorizes privileged operations.
type Gate struct {
	admin PrivilegedAccount
}

// NewGate constructs a Gate for the given privileged account.
func NewGate(admin PrivilegedAccount) *Gate {
	return &Gate{admin: admin}
}

// RequireAdmin returns nil only for the privileged identity. It has no side effects.
func (g *Gate) RequireAdmin(identity Identity, ok bool) error {
	if !ok || identity.Email == "" {
		return ErrUnauthenticated
	}
	if !g.admin.Matches(identity.Email) {
		return ErrForbidden
	}
	return nil
}

// Middleware aborts requests that fail RequireAdmin.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := Current(c)
		if errGate := g.RequireAdmin(identity, ok); errGate != nil {
			respond.Error(c, errGate, "authorization failed")
			return
		}
		c.Next()
	}
}
