package utils

import (
	"testing"
	"time"

	"timeshare_manager/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "timeshare-manager"
	testAudience = "timeshare-clients"
)

func newTestUser() *model.User {
	return &model.User{
		ID:        "6a1f6a0e-3f3c-4a1e-9a52-0f6f5f9a1b2c",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func TestNewJWTUtil_EmptySecret(t *testing.T) {
	_, err := NewJWTUtil("", testIssuer, testAudience, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil, err := NewJWTUtil("secret", testIssuer, testAudience, time.Hour)
	require.NoError(t, err)
	user := newTestUser()

	tokenString, err := jwtUtil.GenerateToken(user, []model.Role{model.RoleUser, model.RoleAdmin})

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// Validate the token to ensure it's well-formed and contains correct claims
	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Subject)
	assert.Equal(t, user.FirstName, claims.FirstName)
	assert.Equal(t, user.LastName, claims.LastName)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Contains(t, claims.Audience, testAudience)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_GenerateToken_FreshTokenID(t *testing.T) {
	jwtUtil, err := NewJWTUtil("secret", testIssuer, testAudience, time.Hour)
	require.NoError(t, err)
	user := newTestUser()

	first, _ := jwtUtil.GenerateToken(user, nil)
	second, _ := jwtUtil.GenerateToken(user, nil)

	firstClaims, err := jwtUtil.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := jwtUtil.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil, _ := NewJWTUtil("secret", testIssuer, testAudience, time.Hour)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_ExpiredToken(t *testing.T) {
	jwtUtil, _ := NewJWTUtil("secret", testIssuer, testAudience, -time.Hour) // Token expires in the past

	tokenString, _ := jwtUtil.GenerateToken(newTestUser(), []model.Role{model.RoleUser})

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1, _ := NewJWTUtil("secret1", testIssuer, testAudience, time.Hour)
	jwtUtil2, _ := NewJWTUtil("secret2", testIssuer, testAudience, time.Hour)

	tokenString, _ := jwtUtil1.GenerateToken(newTestUser(), []model.Role{model.RoleUser})

	_, err := jwtUtil2.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_WrongIssuer(t *testing.T) {
	issuing, _ := NewJWTUtil("secret", "other-issuer", testAudience, time.Hour)
	validating, _ := NewJWTUtil("secret", testIssuer, testAudience, time.Hour)

	tokenString, _ := issuing.GenerateToken(newTestUser(), nil)

	_, err := validating.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTUtil_ValidateToken_WrongAudience(t *testing.T) {
	issuing, _ := NewJWTUtil("secret", testIssuer, "other-audience", time.Hour)
	validating, _ := NewJWTUtil("secret", testIssuer, testAudience, time.Hour)

	tokenString, _ := issuing.GenerateToken(newTestUser(), nil)

	_, err := validating.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestJWTUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	jwtUtil, _ := NewJWTUtil("secret", testIssuer, testAudience, time.Hour)
	// Create a token signed with a non-HMAC compatible claim set but
	// advertise a different algorithm family via an unsigned token
	claims := &JWTClaims{
		UserID: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
}
