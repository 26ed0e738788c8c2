package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-position-api/internal/api/middleware"
	apierrors "github.com/feral-file/ff-position-api/internal/api/shared/errors"
	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/logger"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAdminAuth_Authenticate(t *testing.T) {
	key, publicKey := generateKey(t)
	otherKey, _ := generateKey(t)
	auth, err := middleware.NewAdminAuth(middleware.AuthConfig{JWTPublicKey: publicKey, APIKeys: []string{"key-1", ""}})
	require.NoError(t, err)

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	notYetValid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	anonymous := signToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "operator"})

	tests := []struct {
		name     string
		header   string
		success  bool
		operator middleware.Operator
	}{
		{name: "jwt", header: "Bearer " + valid, success: true, operator: middleware.Operator{Method: middleware.METHOD_JWT, Subject: "operator"}},
		{name: "expired jwt", header: "Bearer " + expired},
		{name: "jwt not yet valid", header: "Bearer " + notYetValid},
		{name: "jwt without subject", header: "Bearer " + anonymous},
		{name: "jwt signed by another key", header: "Bearer " + foreign},
		{name: "api key", header: "ApiKey key-1", success: true},
		{name: "unknown api key", header: "ApiKey key-2"},
		{name: "empty api key", header: "ApiKey "},
		{name: "missing header", header: ""},
		{name: "malformed header", header: "Bearer"},
		{name: "unsupported scheme", header: "Basic dXNlcg=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operator, err := auth.Authenticate(tt.header)
			if !tt.success {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				assert.Equal(t, middleware.Operator{}, operator)
				return
			}
			require.NoError(t, err)
			if tt.operator.Method == middleware.METHOD_JWT {
				assert.Equal(t, tt.operator, operator)
			} else {
				assert.Equal(t, middleware.METHOD_APIKEY, operator.Method)
				assert.True(t, strings.HasPrefix(operator.Subject, "apikey:"))
				assert.NotContains(t, operator.Subject, "key-1")
			}
		})
	}
}

func TestAdminAuth_APIKeySubjectsDiffer(t *testing.T) {
	auth, err := middleware.NewAdminAuth(middleware.AuthConfig{APIKeys: []string{"key-1", "key-2"}})
	require.NoError(t, err)

	first, err := auth.Authenticate("ApiKey key-1")
	require.NoError(t, err)
	second, err := auth.Authenticate("apikey key-2")
	require.NoError(t, err)
	again, err := auth.Authenticate("ApiKey key-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.Subject, second.Subject)
	assert.Equal(t, first.Subject, again.Subject)
}

func TestAdminAuth_NoCredentialsConfigured(t *testing.T) {
	auth, err := middleware.NewAdminAuth(middleware.AuthConfig{})
	require.NoError(t, err)

	_, err = auth.Authenticate("ApiKey anything")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = auth.Authenticate("Bearer token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewAdminAuth_InvalidPublicKey(t *testing.T) {
	_, err := middleware.NewAdminAuth(middleware.AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestAdminAuth_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth, err := middleware.NewAdminAuth(middleware.AuthConfig{APIKeys: []string{"key-1"}})
	require.NoError(t, err)

	var seen middleware.Operator
	var logged string
	router := gin.New()
	router.POST("/admin/listings", auth.Middleware(), func(c *gin.Context) {
		seen, _ = middleware.OperatorFrom(c)
		logged = logger.Operator(c.Request.Context())
		c.Status(http.StatusCreated)
	})

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/listings", nil)
		req.Header.Set("Authorization", "ApiKey key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, middleware.METHOD_APIKEY, seen.Method)
		assert.NotEmpty(t, seen.Subject)
		assert.Equal(t, seen.Subject, logged)
	})

	t.Run("rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/listings", nil)
		req.Header.Set("Authorization", "ApiKey wrong")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body apierrors.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apierrors.ErrCodeUnauthorized, body.Code)
		assert.Contains(t, body.Details, "invalid API key")
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		seen = logger.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var hasDeadline bool
	handler := func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	}

	router := gin.New()
	router.Use(middleware.Timeout(time.Second))
	router.GET("/", handler)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, hasDeadline)

	unbounded := gin.New()
	unbounded.Use(middleware.Timeout(0))
	unbounded.GET("/", handler)
	unbounded.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, hasDeadline)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}
