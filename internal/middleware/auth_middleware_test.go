package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/pkg/auth"
)

func newAuthTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		userID := c.GetInt64(ContextUserIDKey)
		role := c.GetString(ContextRoleKey)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:    42,
		Email: "user@example.com",
		Role:  &models.Role{ID: 3, Name: models.RoleStudent},
	})
	require.NoError(t, err)
	return token
}

func TestJWTAuthPassesValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := newAuthTestRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID int64  `json:"userId"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.UserID)
	assert.Equal(t, string(models.RoleStudent), body.Role)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := newAuthTestRouter(jwtService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := newAuthTestRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	expiredIssuer := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: -time.Minute})
	router := newAuthTestRouter(auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, expiredIssuer))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestJWTAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	otherIssuer := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	router := newAuthTestRouter(auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, otherIssuer))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
}
