package security

import (
	"strings"
	"time"

	"github.com/pquerna/otp/totp"
)

// ValidateTOTP checks a 6-digit code against a base32 secret at the current time.
func ValidateTOTP(secret, code string) bool {
	return ValidateTOTPAt(secret, code, time.Now())
}

// ValidateTOTPAt checks a code at a fixed time, allowing one step of skew.
func ValidateTOTPAt(secret, code string, at time.Time) bool {
	secret = strings.TrimSpace(secret)
	code = strings.TrimSpace(code)
	if secret == "" || code == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, at.UTC(), totp.ValidateOpts{
		Period: 30,
		Skew:   1,
		Digits: 6,
	})
	return err == nil && ok
}
