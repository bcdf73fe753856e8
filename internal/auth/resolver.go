package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/models"
	"github.com/ocevave/ocevave/internal/security"
	"github.com/ocevave/ocevave/internal/session"
	log "github.com/sirupsen/logrus"
)

// CookieName is the session cookie name.
const CookieName = "session_token"

// ErrUserNotFound is returned by UserLookup when no member has the email.
var ErrUserNotFound = errors.New("user not found")

// UserLookup finds persisted members by email.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Resolver turns the session cookie into a request identity and issues or
// ends sessions.
type Resolver struct {
	codec        *security.SessionCodec
	revoker      session.Revoker
	admin        PrivilegedAccount
	users        UserLookup
	cookieSecure bool
}

// NewResolver constructs a Resolver. users may be nil, in which case member
// identities carry only their email.
func NewResolver(codec *security.SessionCodec, revoker session.Revoker, admin PrivilegedAccount, users UserLookup, cookieSecure bool) *Resolver {
	return &Resolver{codec: codec, revoker: revoker, admin: admin, users: users, cookieSecure: cookieSecure}
}

// Middleware resolves the identity for every request and never aborts.
func (r *Resolver) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, claims, ok := r.resolve(c); ok {
			setIdentity(c, identity)
			c.Set(sessionClaimsKey, claims)
		}
		c.Next()
	}
}

func (r *Resolver) resolve(c *gin.Context) (Identity, *security.SessionClaims, bool) {
	token, errCookie := c.Cookie(CookieName)
	if errCookie != nil || token == "" {
		return Identity{}, nil, false
	}
	claims, ok := r.codec.Decode(token)
	if !ok {
		return Identity{}, nil, false
	}
	ctx := c.Request.Context()
	if r.revoker != nil {
		revoked, errRevoked := r.revoker.IsRevoked(ctx, claims.ID)
		if errRevoked != nil {
			log.WithError(errRevoked).Warn("session revocation lookup failed")
			return Identity{}, nil, false
		}
		if revoked {
			return Identity{}, nil, false
		}
	}

	if r.admin.Matches(claims.Email) {
		return r.admin.Identity(), claims, true
	}

	identity := Identity{Email: claims.Email}
	if r.users == nil {
		return identity, claims, true
	}
	user, errFind := r.users.FindByEmail(ctx, claims.Email)
	switch {
	case errFind == nil:
		userID := user.ID
		identity.UserID = &userID
		identity.DisplayName = user.Name
	case errors.Is(errFind, ErrUserNotFound):
	default:
		log.WithError(errFind).Warn("session user lookup failed")
	}
	return identity, claims, true
}

// Issue mints a session for email and sets the cookie.
func (r *Resolver) Issue(c *gin.Context, email string) error {
	token, _, errEncode := r.codec.Encode(email)
	if errEncode != nil {
		return errEncode
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(r.codec.TTL()/time.Second), "/", "", r.cookieSecure, true)
	return nil
}

// End revokes the current session, if any, and clears the cookie.
func (r *Resolver) End(c *gin.Context) error {
	var errRevoke error
	if claims, ok := sessionClaims(c); ok && r.revoker != nil && claims.ExpiresAt != nil {
		errRevoke = r.revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", r.cookieSecure, true)
	return errRevoke
}
