package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/config"
	"github.com/ocevave/ocevave/internal/models"
	"github.com/ocevave/ocevave/internal/security"
	"github.com/ocevave/ocevave/internal/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubUsers struct {
	users map[string]models.User
	err   error
}

func (s stubUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func testAdmin() PrivilegedAccount {
	return NewPrivilegedAccount(config.AdminConfig{Email: "admin@ocevave", Name: "OCEVAVE Admin", Password: "admin123"})
}

func newTestResolver(users UserLookup, revoker session.Revoker) *Resolver {
	return NewResolver(security.NewSessionCodec(testSecret, time.Hour), revoker, testAdmin(), users, true)
}

// whoami runs the resolver and reports the identity it produced.
func whoami(t *testing.T, r *Resolver, cookie *http.Cookie) (Identity, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(r.Middleware())
	var (
		got   Identity
		found bool
	)
	router.GET("/me", func(c *gin.Context) {
		got, found = Current(c)
		c.Status(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("resolver must never block, got status %d", w.Code)
	}
	return got, found
}

func issueCookie(t *testing.T, r *Resolver, email string) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	if errIssue := r.Issue(c, email); errIssue != nil {
		t.Fatalf("issue: %v", errIssue)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}
	t.Fatalf("no session cookie set")
	return nil
}

func TestResolverWithoutCookieYieldsNoIdentity(t *testing.T) {
	if _, ok := whoami(t, newTestResolver(nil, nil), nil); ok {
		t.Fatalf("expected no identity")
	}
}

func TestResolverGarbageCookieYieldsNoIdentity(t *testing.T) {
	cookie := &http.Cookie{Name: CookieName, Value: "YWRtaW5Ab2NldmF2ZToxNzAwMDAwMDAwMDAw"}
	if _, ok := whoami(t, newTestResolver(nil, nil), cookie); ok {
		t.Fatalf("expected forged legacy token to be ignored")
	}
}

func TestResolverMemberIdentity(t *testing.T) {
	users := stubUsers{users: map[string]models.User{
		"member@example.com": {ID: 42, Email: "member@example.com", Name: "Member"},
	}}
	r := newTestResolver(users, nil)
	identity, ok := whoami(t, r, issueCookie(t, r, "member@example.com"))
	if !ok {
		t.Fatalf("expected identity")
	}
	if identity.Email != "member@example.com" || identity.DisplayName != "Member" || identity.IsAdmin {
		t.Fatalf("unexpected identity %+v", identity)
	}
	if identity.UserID == nil || *identity.UserID != 42 {
		t.Fatalf("expected user id 42, got %v", identity.UserID)
	}
}

func TestResolverUnknownMemberKeepsEmailOnly(t *testing.T) {
	r := newTestResolver(stubUsers{users: map[string]models.User{}}, nil)
	identity, ok := whoami(t, r, issueCookie(t, r, "ghost@example.com"))
	if !ok || identity.Email != "ghost@example.com" || identity.Persisted() {
		t.Fatalf("expected bare identity, got %+v ok=%v", identity, ok)
	}
}

func TestResolverLookupFailureDoesNotBlock(t *testing.T) {
	r := newTestResolver(stubUsers{err: errors.New("db down")}, nil)
	identity, ok := whoami(t, r, issueCookie(t, r, "member@example.com"))
	if !ok || identity.Email != "member@example.com" {
		t.Fatalf("expected bare identity on lookup failure, got %+v ok=%v", identity, ok)
	}
}

func TestResolverAdminIdentity(t *testing.T) {
	r := newTestResolver(nil, nil)
	identity, ok := whoami(t, r, issueCookie(t, r, "Admin@OCEVAVE"))
	if !ok || !identity.IsAdmin || identity.DisplayName != "OCEVAVE Admin" {
		t.Fatalf("expected admin identity, got %+v", identity)
	}
}

func TestResolverRevokedSessionYieldsNoIdentity(t *testing.T) {
	revoker := session.NewMemoryRevoker()
	r := newTestResolver(nil, revoker)
	cookie := issueCookie(t, r, "member@example.com")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(r.Middleware())
	router.POST("/logout", func(c *gin.Context) {
		if errEnd := r.End(c); errEnd != nil {
			t.Fatalf("end: %v", errEnd)
		}
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if _, ok := whoami(t, r, cookie); ok {
		t.Fatalf("expected revoked session to resolve to no identity")
	}
}

func TestIssueSetsHardenedCookie(t *testing.T) {
	cookie := issueCookie(t, newTestResolver(nil, nil), "member@example.com")
	if !cookie.HttpOnly || !cookie.Secure {
		t.Fatalf("expected httpOnly secure cookie, got %+v", cookie)
	}
	if cookie.MaxAge != int(time.Hour/time.Second) {
		t.Fatalf("expected max-age %d, got %d", int(time.Hour/time.Second), cookie.MaxAge)
	}
}

func TestRequireAdminVerdicts(t *testing.T) {
	gate := NewGate(testAdmin())

	if errGate := gate.RequireAdmin(Identity{}, false); !errors.Is(errGate, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", errGate)
	}
	member := Identity{Email: "member@example.com"}
	for i := 0; i < 2; i++ {
		if errGate := gate.RequireAdmin(member, true); !errors.Is(errGate, ErrForbidden) {
			t.Fatalf("call %d: expected ErrForbidden, got %v", i, errGate)
		}
	}
	admin := Identity{Email: "ADMIN@ocevave"}
	for i := 0; i < 2; i++ {
		if errGate := gate.RequireAdmin(admin, true); errGate != nil {
			t.Fatalf("call %d: expected admin allowed, got %v", i, errGate)
		}
	}
}

func TestRequireAdminIgnoresPersistedAdminFlag(t *testing.T) {
	gate := NewGate(testAdmin())
	if errGate := gate.RequireAdmin(Identity{Email: "member@example.com", IsAdmin: true}, true); !errors.Is(errGate, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", errGate)
	}
}

func TestGateMiddlewareStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestResolver(nil, nil)
	router := gin.New()
	router.Use(r.Middleware())
	admin := router.Group("/api/admin")
	admin.Use(NewGate(testAdmin()).Middleware())
	admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	cases := []struct {
		name   string
		cookie *http.Cookie
		status int
	}{
		{name: "anonymous", status: http.StatusUnauthorized},
		{name: "member", cookie: issueCookie(t, r, "member@example.com"), status: http.StatusForbidden},
		{name: "admin", cookie: issueCookie(t, r, "admin@ocevave"), status: http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.status >= 400 {
				var body map[string]string
				if errDecode := json.Unmarshal(w.Body.Bytes(), &body); errDecode != nil || body["error"] == "" {
					t.Fatalf("expected json error body, got %q", w.Body.String())
				}
			}
		})
	}
}

func TestPrivilegedAccountPasswordChecks(t *testing.T) {
	plain := testAdmin()
	if !plain.CheckPassword("admin123") || plain.CheckPassword("admin1234") {
		t.Fatalf("plaintext password check mismatch")
	}

	hash, errHash := security.HashPasswordBcrypt("s3cret!")
	if errHash != nil {
		t.Fatalf("bcrypt: %v", errHash)
	}
	hashed := NewPrivilegedAccount(config.AdminConfig{Email: "admin@ocevave", PasswordHash: hash, Password: "ignored"})
	if !hashed.CheckPassword("s3cret!") || hashed.CheckPassword("ignored") {
		t.Fatalf("hashed password check mismatch")
	}

	empty := NewPrivilegedAccount(config.AdminConfig{Email: "admin@ocevave"})
	if empty.CheckPassword("") {
		t.Fatalf("empty configured password must never match")
	}
	if empty.Matches("") || NewPrivilegedAccount(config.AdminConfig{}).Matches("") {
		t.Fatalf("empty email must never match")
	}
}
