// Package auth resolves the request identity from the session cookie and
// gates privileged operations on the configured administrator account.
package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/security"
)

// Context keys set by the resolver.
const (
	identityKey      = "identity"
	sessionClaimsKey = "sessionClaims"
)

// Identity is the authenticated principal of a request.
type Identity struct {
	Email       string  `json:"email"`
	DisplayName string  `json:"name"`
	IsAdmin     bool    `json:"is_admin"`
	UserID      *uint64 `json:"-"`
}

// Persisted reports whether the identity maps to a stored member row.
func (i Identity) Persisted() bool { return i.UserID != nil }

// Current returns the identity resolved for this request, if any.
func Current(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	if !ok || identity.Email == "" {
		return Identity{}, false
	}
	return identity, true
}

// CurrentUserID returns the member ID of the request identity, if any.
func CurrentUserID(c *gin.Context) *uint64 {
	identity, ok := Current(c)
	if !ok {
		return nil
	}
	return identity.UserID
}

func setIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

func sessionClaims(c *gin.Context) (*security.SessionClaims, bool) {
	value, exists := c.Get(sessionClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*security.SessionClaims)
	return claims, ok && claims != nil
}
