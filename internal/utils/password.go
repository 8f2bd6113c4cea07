package utils

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// PasswordPolicy holds the strength requirements applied at registration
// and password change.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
}

// DefaultPasswordPolicy returns the policy used unless configuration
// overrides it: at least 8 characters with one upper, one lower, one digit.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
	}
}

// Validate checks a plaintext password against the policy and returns the
// full list of violated requirements, empty when the password is acceptable.
func (p PasswordPolicy) Validate(password string) []string {
	var reasons []string

	if len(password) < p.MinLength {
		reasons = append(reasons, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if p.RequireUppercase && !hasUpper {
		reasons = append(reasons, "password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !hasLower {
		reasons = append(reasons, "password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !hasDigit {
		reasons = append(reasons, "password must contain at least one digit")
	}

	return reasons
}

// HashPassword hashes a plaintext password with bcrypt (salted, slow KDF)
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash verifies a plaintext password against a stored bcrypt
// hash. The comparison is constant time with respect to correctness.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
