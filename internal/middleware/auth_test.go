package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/todotrack/todo-api/internal/auth"
	"github.com/todotrack/todo-api/internal/constants"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager(auth.TokenConfig{
		SecretKey: "test-secret",
		TTL:       time.Hour,
		Issuer:    "test",
	})

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return r, tokens
}

func TestRequireAuth_MissingToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Missing token")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Token not valid or expired")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	expired := auth.NewTokenManager(auth.TokenConfig{
		SecretKey: "test-secret",
		TTL:       -time.Minute,
		Issuer:    "test",
	})
	token, err := expired.Issue(7, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequireAuth_RawToken(t *testing.T) {
	r, tokens := setupAuthRouter(t)

	token, err := tokens.Issue(7, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRequireAuth_BearerPrefix(t *testing.T) {
	r, tokens := setupAuthRouter(t)

	token, err := tokens.Issue(7, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	require.False(t, ok)
}

func TestGetUserID_IntVariants(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(constants.ContextKeyUserID, int(12))
	id, ok := GetUserID(c)
	require.True(t, ok)
	require.Equal(t, uint64(12), id)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Set(constants.ContextKeyUserID, int(-1))
	_, ok = GetUserID(c)
	require.False(t, ok)
}
