package security

import "testing"

func TestHashPasswordVerifies(t *testing.T) {
	hash, salt, errHash := HashPassword("secret-pass")
	if errHash != nil {
		t.Fatalf("hash: %v", errHash)
	}
	if !VerifyPassword("secret-pass", hash, salt) {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword("wrong-pass", hash, salt) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashPasswordUsesDistinctSalts(t *testing.T) {
	hashA, saltA, errA := HashPassword("same-password")
	hashB, saltB, errB := HashPassword("same-password")
	if errA != nil || errB != nil {
		t.Fatalf("hash: %v %v", errA, errB)
	}
	if saltA == saltB {
		t.Fatalf("expected distinct salts")
	}
	if hashA == hashB {
		t.Fatalf("expected distinct hashes for equal passwords")
	}
}

func TestVerifyPasswordMalformedStoredData(t *testing.T) {
	hash, salt, errHash := HashPassword("secret-pass")
	if errHash != nil {
		t.Fatalf("hash: %v", errHash)
	}
	cases := []struct {
		name string
		hash string
		salt string
	}{
		{name: "empty", hash: "", salt: ""},
		{name: "non-hex hash", hash: "zz-not-hex", salt: salt},
		{name: "non-hex salt", hash: hash, salt: "zz-not-hex"},
		{name: "short hash", hash: hash[:10], salt: salt},
		{name: "empty salt", hash: hash, salt: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifyPassword("secret-pass", tc.hash, tc.salt) {
				t.Fatalf("expected malformed credential to fail")
			}
		})
	}
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hash, errHash := HashPasswordBcrypt("admin123")
	if errHash != nil {
		t.Fatalf("bcrypt: %v", errHash)
	}
	if !CheckPassword(hash, "admin123") {
		t.Fatalf("expected bcrypt match")
	}
	if CheckPassword(hash, "admin1234") {
		t.Fatalf("expected bcrypt mismatch")
	}
	if CheckPassword("not-a-hash", "admin123") {
		t.Fatalf("expected malformed bcrypt hash to fail")
	}
}

func TestEqualConstantTime(t *testing.T) {
	if !EqualConstantTime("abc", "abc") {
		t.Fatalf("expected equal")
	}
	if EqualConstantTime("abc", "abd") || EqualConstantTime("abc", "abcd") {
		t.Fatalf("expected not equal")
	}
}
