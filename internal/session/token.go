package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Tokens turns store ids into signed tokens handed to clients, so that ids
// which were never issued are rejected before the store is queried.
type Tokens struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

func NewTokens(secret string, maxAge time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), maxAge: maxAge, now: time.Now}
}

// Issue signs the session id. The token stops being accepted after maxAge even
// if the session is still alive in the store.
func (t *Tokens) Issue(sessionID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.maxAge)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates the token and returns the session id it carries.
func (t *Tokens) Parse(tokenString string) (string, error) {
	return t.parse(tokenString, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
}

// ParseForRevocation checks only the signature, so a session whose token has
// passed its max age can still be deleted from the store.
func (t *Tokens) ParseForRevocation(tokenString string) (string, error) {
	return t.parse(tokenString, jwt.WithoutClaimsValidation())
}

func (t *Tokens) parse(tokenString string, opts ...jwt.ParserOption) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tk.Header["alg"])
		}
		return t.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return "", fmt.Errorf("%w: missing session id", ErrInvalidToken)
	}

	return claims.ID, nil
}
