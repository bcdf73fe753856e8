package security

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// argon2id parameters for member credentials.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// bcryptCost defines the bcrypt work factor.
const bcryptCost = 12

// HashPassword derives a credential for password with a fresh random salt.
// Both values are hex-encoded.
func HashPassword(password string) (hash string, salt string, err error) {
	saltBytes, err := RandomBytes(saltLen)
	if err != nil {
		return "", "", err
	}
	key := argon2.IDKey([]byte(password), saltBytes, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key), hex.EncodeToString(saltBytes), nil
}

// VerifyPassword reports whether password matches the stored hash and salt.
// Malformed stored values never match.
func VerifyPassword(password, hash, salt string) bool {
	expected, errHash := hex.DecodeString(hash)
	if errHash != nil || len(expected) != argonKeyLen {
		return false
	}
	saltBytes, errSalt := hex.DecodeString(salt)
	if errSalt != nil || len(saltBytes) == 0 {
		return false
	}
	actual := argon2.IDKey([]byte(password), saltBytes, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(expected, actual) == 1
}

// HashPasswordBcrypt hashes a plaintext password using bcrypt. Used to produce
// the privileged account's configured password_hash.
func HashPasswordBcrypt(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plaintext password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// EqualConstantTime compares two secrets without early exit.
func EqualConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
