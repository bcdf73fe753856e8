package security

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const lowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomUpper returns n random characters from [A-Z0-9].
func RandomUpper(n int) (string, error) {
	return randomFrom(upperAlphanumeric, n)
}

// RandomLower returns n random characters from [a-z0-9].
func RandomLower(n int) (string, error) {
	return randomFrom(lowerAlphanumeric, n)
}

func randomFrom(alphabet string, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	out := make([]byte, n)
	limit := big.NewInt(int64(len(alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate random string: %w", err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// RandomBytes returns n bytes from the system CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("generate random bytes: %w", err)
	}
	return buf, nil
}
