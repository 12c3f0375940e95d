// Package auth implements the access/refresh token lifecycle. Access and
// refresh tokens are signed with distinct secrets so one cannot stand in
// for the other.
package auth

import (
	"errors"
	"time"

	"picpoints/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 24 * time.Hour

	// Tokens minted on the refresh path are deliberately short-lived;
	// clients are expected to refresh again almost immediately.
	RefreshedAccessTTL = 15 * time.Second
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the username identity inside both token kinds.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies token pairs bound to a username.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
	}
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IssuePair mints a fresh access/refresh pair for the given username. The
// caller persists the refresh token on the user record, overwriting any
// prior value (single active session per user).
func (s *TokenService) IssuePair(username string) (TokenPair, error) {
	access, err := s.SignAccess(username, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := sign(username, s.refreshSecret, RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// SignAccess mints an access token with the given lifetime.
func (s *TokenService) SignAccess(username string, ttl time.Duration) (string, error) {
	return sign(username, s.accessSecret, ttl)
}

// ParseAccess verifies an access token and returns the username it carries.
func (s *TokenService) ParseAccess(token string) (string, error) {
	return parse(token, s.accessSecret)
}

// ParseRefresh verifies a refresh token and returns the username it carries.
func (s *TokenService) ParseRefresh(token string) (string, error) {
	return parse(token, s.refreshSecret)
}

func sign(username string, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parse(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
