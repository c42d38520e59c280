package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/eduhub/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "user@example.com",
		Role:  &models.Role{ID: 3, Name: models.RoleStudent},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "eduhub.test",
	})

	token, expiresIn, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Equal(t, "eduhub.test", claims.Issuer)
}

func TestGenerateTokenRequiresLoadedRole(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})

	user := testUser()
	user.Role = nil

	_, _, err := svc.GenerateToken(user)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "eduhub.test",
	})

	token, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsRejectsEmpty(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "abc.def.ghi", "bearer abc.def.ghi", "Basic dXNlcg=="} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidFormat, header)
	}
}
