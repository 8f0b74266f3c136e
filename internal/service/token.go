package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msomdec/searchproxy/internal/domain"
)

// TokenService issues and verifies signed, time-limited bearer tokens
// binding a username. Tokens are stateless: validity is determined
// purely by the HMAC-SHA256 signature and the expiry claim, so there is
// no server-side revocation. Rotating the signing secret invalidates
// every previously issued token with no grace period.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with secret and
// issuing tokens valid for ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue builds a claim set {sub: username, exp: now + ttl} and signs it.
func (s *TokenService) Issue(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of a token and returns its
// subject. A forged signature, malformed claim set, missing or empty
// subject, or missing or passed expiry all fail with
// domain.ErrTokenInvalid; the causes are deliberately not distinguished.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrTokenInvalid
	}

	return sub, nil
}
