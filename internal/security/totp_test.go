package security

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

func TestValidateTOTPAt(t *testing.T) {
	key, errGenerate := totp.Generate(totp.GenerateOpts{Issuer: "OCEVAVE", AccountName: "admin@ocevave"})
	if errGenerate != nil {
		t.Fatalf("generate: %v", errGenerate)
	}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	code, errCode := totp.GenerateCode(key.Secret(), at)
	if errCode != nil {
		t.Fatalf("code: %v", errCode)
	}

	if !ValidateTOTPAt(key.Secret(), code, at) {
		t.Fatalf("expected code to validate")
	}
	if ValidateTOTPAt(key.Secret(), code, at.Add(10*time.Minute)) {
		t.Fatalf("expected stale code to fail")
	}
	if ValidateTOTPAt("", code, at) || ValidateTOTPAt(key.Secret(), "", at) {
		t.Fatalf("expected empty inputs to fail")
	}
}
