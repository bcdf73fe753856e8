package auth

import (
	"strings"

	"github.com/ocevave/ocevave/internal/config"
	"github.com/ocevave/ocevave/internal/security"
)

// PrivilegedAccount is the single superuser bootstrap account. It is
// configured, never persisted, and checked outside the member credential store.
type PrivilegedAccount struct {
	email        string
	name         string
	password     string
	passwordHash string
	totpSecret   string
}

// NewPrivilegedAccount builds the account from configuration.
func NewPrivilegedAccount(cfg config.AdminConfig) PrivilegedAccount {
	return PrivilegedAccount{
		email:        strings.ToLower(strings.TrimSpace(cfg.Email)),
		name:         strings.TrimSpace(cfg.Name),
		password:     cfg.Password,
		passwordHash: strings.TrimSpace(cfg.PasswordHash),
		totpSecret:   strings.TrimSpace(cfg.TOTPSecret),
	}
}

// Email returns the lower-cased privileged email.
func (p PrivilegedAccount) Email() string { return p.email }

// Matches reports whether email is the privileged email, ignoring case.
func (p PrivilegedAccount) Matches(email string) bool {
	if p.email == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(email), p.email)
}

// CheckPassword verifies password against the configured bcrypt hash, or
// the plaintext password in constant time when no hash is configured.
func (p PrivilegedAccount) CheckPassword(password string) bool {
	if p.passwordHash != "" {
		return security.CheckPassword(p.passwordHash, password)
	}
	if p.password == "" {
		return false
	}
	return security.EqualConstantTime(p.password, password)
}

// RequiresTOTP reports whether login needs a one-time code.
func (p PrivilegedAccount) RequiresTOTP() bool { return p.totpSecret != "" }

// CheckTOTP validates a one-time code.
func (p PrivilegedAccount) CheckTOTP(code string) bool {
	return security.ValidateTOTP(p.totpSecret, code)
}

// Identity returns the privileged identity.
func (p PrivilegedAccount) Identity() Identity {
	return Identity{Email: p.email, DisplayName: p.name, IsAdmin: true}
}
