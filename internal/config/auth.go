package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: expirationHours}, nil
}

// APIClient is a registered API consumer. Clients exchange their secret for a bearer token.
type APIClient struct {
	ID         string `json:"id"`          // UUID
	Name       string `json:"name"`        // Display name for logs
	SecretHash string `json:"secret_hash"` // bcrypt hash of the client secret
}

// DefaultSecretCost is the bcrypt cost used for client secrets
const DefaultSecretCost = 12

// HashSecret hashes a client secret with bcrypt
func HashSecret(secret string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultSecretCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("bcrypt cost out of range: %d", cost)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// VerifySecret reports whether secret matches the client's stored hash
func (c APIClient) VerifySecret(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.SecretHash), []byte(secret)) == nil
}

// FindClient returns the registered client with the given ID
func (s ServerConfig) FindClient(id string) (APIClient, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return APIClient{}, false
}
