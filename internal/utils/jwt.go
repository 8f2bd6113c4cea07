package utils

import (
	"errors"
	"fmt"
	"time"

	"timeshare_manager/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptySecret is returned when the signing secret is missing from the
// configuration. Token issuance cannot start without it.
var ErrEmptySecret = errors.New("jwt signing secret is empty")

// JWTClaims custom claims for JWT. The registered claims carry issuer,
// audience, expiry, the username as subject and a random per-token ID.
type JWTClaims struct {
	UserID    string   `json:"user_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey string
	issuer    string
	audience  string
	ttl       time.Duration
}

// NewJWTUtil creates a new JWTUtil. Fails fast when the secret is empty.
func NewJWTUtil(secretKey, issuer, audience string, ttl time.Duration) (*JWTUtil, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &JWTUtil{secretKey: secretKey, issuer: issuer, audience: audience, ttl: ttl}, nil
}

// GenerateToken generates a signed token for a user carrying one claim per
// assigned role and a fresh random token ID.
func (ju *JWTUtil) GenerateToken(user *model.User, roles []model.Role) (string, error) {
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, string(role))
	}

	now := time.Now()
	claims := &JWTClaims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     roleNames,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ju.issuer,
			Audience:  jwt.ClaimStrings{ju.audience},
			Subject:   user.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ju.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the token signature, issuer, audience and expiry
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	}, jwt.WithIssuer(ju.issuer), jwt.WithAudience(ju.audience))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
