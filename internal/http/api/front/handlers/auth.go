package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/accounts"
	"github.com/ocevave/ocevave/internal/auth"
	"github.com/ocevave/ocevave/internal/http/respond"
	"github.com/ocevave/ocevave/internal/util"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles signup, login, logout and session lookup.
type AuthHandler struct {
	accounts *accounts.Service
	resolver *auth.Resolver
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(accountsSvc *accounts.Service, resolver *auth.Resolver) *AuthHandler {
	return &AuthHandler{accounts: accountsSvc, resolver: resolver}
}

// Signup registers a member. It does not start a session.
func (h *AuthHandler) Signup(c *gin.Context) {
	var body accounts.SignupInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	if _, errSignup := h.accounts.Signup(c.Request.Context(), body); errSignup != nil {
		respond.Error(c, errSignup, "Signup failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signup completed"})
}

// Login verifies credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var body accounts.LoginInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	identity, errLogin := h.accounts.Login(c.Request.Context(), body)
	if errLogin != nil {
		log.WithFields(log.Fields{"email": util.MaskEmail(body.Email), "client_ip": c.ClientIP()}).Info("login rejected")
		respond.Error(c, errLogin, "Login failed")
		return
	}
	if errIssue := h.resolver.Issue(c, identity.Email); errIssue != nil {
		log.WithError(errIssue).Error("issue session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": identity})
}

// Logout ends the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if errEnd := h.resolver.End(c); errEnd != nil {
		log.WithError(errEnd).Warn("session revoke failed")
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the current user, or null when there is none.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := auth.Current(c)
	if !ok || (!identity.IsAdmin && !identity.Persisted()) {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}
