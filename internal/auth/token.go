package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrTokenExpired = errors.New("access token expired")
)

// Claims are the claims the hotel API puts in its access tokens.
type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier reads API access tokens. With a key it verifies the HS256
// signature; without one it only decodes the claims and checks expiry.
type TokenVerifier struct {
	key []byte
	now func() time.Time
}

// NewTokenVerifier creates a verifier for the given HMAC key (may be empty).
func NewTokenVerifier(key string) *TokenVerifier {
	return &TokenVerifier{key: []byte(key), now: time.Now}
}

// Verifies reports whether signatures are checked.
func (v *TokenVerifier) Verifies() bool {
	return len(v.key) > 0
}

// Parse validates a token and returns its claims.
func (v *TokenVerifier) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	if !v.Verifies() {
		parser := jwt.NewParser()
		if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		if claims.ExpiresAt != nil && v.now().After(claims.ExpiresAt.Time) {
			return nil, ErrTokenExpired
		}
		return claims, nil
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.key, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(v.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

// Issue signs an HS256 token with the verifier's key, in the same shape the
// API issues. It is used to stand in for the API in development and tests.
func (v *TokenVerifier) Issue(email string, role Role, ttl time.Duration) (string, error) {
	if !v.Verifies() {
		return "", errors.New("token verifier has no signing key")
	}
	now := v.now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.key)
}
