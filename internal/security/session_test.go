package security

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSessionRoundTrip(t *testing.T) {
	codec := NewSessionCodec(testSecret, 7*24*time.Hour)
	for _, email := range []string{"member@example.com", "a.b+c@sub.example.org", "admin@ocevave"} {
		token, issued, errEncode := codec.Encode(email)
		if errEncode != nil {
			t.Fatalf("encode %q: %v", email, errEncode)
		}
		claims, ok := codec.Decode(token)
		if !ok {
			t.Fatalf("decode %q failed", email)
		}
		if claims.Email != email {
			t.Fatalf("expected %q, got %q", email, claims.Email)
		}
		if claims.ID == "" || claims.ID != issued.ID {
			t.Fatalf("expected jti to round-trip, got %q vs %q", claims.ID, issued.ID)
		}
	}
}

func TestSessionEncodeNormalizesEmail(t *testing.T) {
	codec := NewSessionCodec(testSecret, time.Hour)
	token, _, errEncode := codec.Encode("  Member@Example.COM ")
	if errEncode != nil {
		t.Fatalf("encode: %v", errEncode)
	}
	claims, ok := codec.Decode(token)
	if !ok || claims.Email != "member@example.com" {
		t.Fatalf("expected normalized email, got %+v ok=%v", claims, ok)
	}
}

func TestSessionTokenFromLongAgoIsRejected(t *testing.T) {
	minted := time.Now().Add(-1000 * 24 * time.Hour)
	codec := NewSessionCodec(testSecret, 7*24*time.Hour)
	codec.now = func() time.Time { return minted }
	token, _, errEncode := codec.Encode("member@example.com")
	if errEncode != nil {
		t.Fatalf("encode: %v", errEncode)
	}

	codec.now = time.Now
	if _, ok := codec.Decode(token); ok {
		t.Fatalf("expected 1000-day-old token to be rejected")
	}
	if _, errParse := codec.Parse(token); !errors.Is(errParse, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", errParse)
	}
}

func TestSessionDecodeMalformedInput(t *testing.T) {
	codec := NewSessionCodec(testSecret, time.Hour)
	legacy := base64.StdEncoding.EncodeToString([]byte("admin@ocevave:1700000000000"))
	for _, token := range []string{"", "   ", "not-a-token", "a.b.c", legacy, strings.Repeat("x", 4096)} {
		if claims, ok := codec.Decode(token); ok || claims != nil {
			t.Fatalf("expected %q to decode as no identity", token)
		}
	}
}

func TestSessionRejectsForeignSignature(t *testing.T) {
	issuer := NewSessionCodec("ffffffffffffffffffffffffffffffff", time.Hour)
	token, _, errEncode := issuer.Encode("admin@ocevave")
	if errEncode != nil {
		t.Fatalf("encode: %v", errEncode)
	}
	verifier := NewSessionCodec(testSecret, time.Hour)
	if _, ok := verifier.Decode(token); ok {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}
