// Package license mints the secondary credential required for reporter
// login. A key is issued on approval and cleared on revocation; possession
// of the current key is checked alongside the password when a reporter
// authenticates.
package license

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

// charset is the alphabet for the random portion of a key.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomLen is the length of the random portion of a key.
const randomLen = 4

// Pattern matches every well-formed license key.
var Pattern = regexp.MustCompile(`^\d{4}-[A-Z0-9]{4}$`)

// Generate produces a license key of the form "<year>-<XXXX>" where XXXX is
// a uniform random draw over uppercase letters and digits.
//
// Uniqueness is not guaranteed here; the accounts store enforces it with a
// database unique constraint and regenerates on collision.
func Generate() (string, error) {
	random := make([]byte, randomLen)
	max := big.NewInt(int64(len(charset)))
	for i := range random {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to draw random license character: %w", err)
		}
		random[i] = charset[n.Int64()]
	}

	return fmt.Sprintf("%d-%s", time.Now().Year(), random), nil
}
