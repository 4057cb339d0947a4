// Package token mints and verifies session tokens.
//
// A token is a signed JWT carrying the account id as subject and the
// account's role as a custom claim. Tokens are valid for a fixed window
// from issuance (24 hours by default) and there is no refresh: an expired
// token means the client must authenticate again. Verification is a pure
// function of the token string and the server-held signing secret; it never
// touches the store.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pressroom/pressroom/pkg/model"
)

// DefaultTTL is the validity window applied when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken is returned by Verify for every rejected token. Bad
// signature, wrong signing algorithm and expiry are deliberately not
// distinguished to the caller.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	Role model.Role `json:"role"`
}

// Issuer mints and verifies session tokens with an HMAC-SHA256 signature.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. A zero ttl selects DefaultTTL.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue mints a signed token for the given account and role.
func (i *Issuer) Issue(accountID int64, role model.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Role: role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the token signature and expiry and returns the embedded
// account id and role claim. Every failure mode yields ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (int64, model.Role, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return 0, 0, ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidToken
	}

	if !claims.Role.IsARole() {
		return 0, 0, ErrInvalidToken
	}

	return accountID, claims.Role, nil
}
