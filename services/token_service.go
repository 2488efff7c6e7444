package services

import (
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/mechcorp/maintenance-api/config"
	"github.com/mechcorp/maintenance-api/models"
)

// TokenClaims are the JWT claims carried by an access token. The subject
// duplicates UserID so standard tooling can read the token owner.
type TokenClaims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer credentials.
type TokenService interface {
	Generate(user *models.User) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
}

var tokenServiceInstance TokenService

// InitTokenService initializes the token service from configuration.
func InitTokenService(cfg *config.Config) TokenService {
	tokenServiceInstance = NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	return tokenServiceInstance
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &jwtTokenService{secret: []byte(secret), ttl: ttl}
}

// GetTokenService returns the initialized token service instance
func GetTokenService() TokenService {
	return tokenServiceInstance
}

// SetTokenService sets the token service instance (primarily for testing)
func SetTokenService(s TokenService) {
	tokenServiceInstance = s
}

// Generate issues a signed HS256 token for the user.
func (s *jwtTokenService) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string and returns its claims.
func (s *jwtTokenService) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
