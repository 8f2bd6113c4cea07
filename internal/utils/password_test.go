package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "Str0ngPass!"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	password := "Str0ngPass!"
	first, _ := HashPassword(password)
	second, _ := HashPassword(password)

	// bcrypt embeds a random salt, so two hashes of the same password differ
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash(password, first))
	assert.True(t, CheckPasswordHash(password, second))
}

func TestCheckPasswordHash(t *testing.T) {
	password := "Str0ngPass!"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrongpassword", hashedPassword))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("Str0ngPass!", "invalidhash"))
}

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := DefaultPasswordPolicy()

	tests := []struct {
		name     string
		password string
		reasons  int
	}{
		{"valid password", "Str0ngPass", 0},
		{"too short", "S1a", 1},
		{"missing uppercase", "weakpass1", 1},
		{"missing lowercase", "WEAKPASS1", 1},
		{"missing digit", "WeakPassword", 1},
		{"everything wrong", "abc", 3},
		{"empty", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := policy.Validate(tt.password)
			assert.Len(t, reasons, tt.reasons)
		})
	}
}

func TestPasswordPolicy_Validate_AllReasonsReported(t *testing.T) {
	policy := DefaultPasswordPolicy()

	reasons := policy.Validate("abc")
	assert.Contains(t, reasons[0], "at least 8 characters")
	assert.Contains(t, reasons[1], "uppercase")
	assert.Contains(t, reasons[2], "digit")
}
