package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("token malformed")
	ErrBadSignature = errors.New("token signature invalid")
	ErrExpired      = errors.New("token expired")
)

// Identity is the resolved identity carried by a verified token.
type Identity struct {
	UserID   int64
	Username string
}

// Claims embeds the registered JWT claims plus the identity fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Tokens issues and verifies signed identity tokens (HS256). There is no
// server-side session table: a token's validity is computed from its
// signature and expiry alone, so rotating the secret invalidates every
// outstanding token at once.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens returns a token service signing with secret, valid for ttl.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given user.
func (t *Tokens) Issue(userID int64, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(t.secret)
}

// Verify parses and validates tokenString and returns the embedded
// identity. Failures are ErrMalformed, ErrBadSignature or ErrExpired;
// callers facing clients must collapse all three into a single
// unauthorized outcome.
func (t *Tokens) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrBadSignature
		default:
			return Identity{}, ErrMalformed
		}
	}
	if !token.Valid {
		return Identity{}, ErrMalformed
	}
	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
