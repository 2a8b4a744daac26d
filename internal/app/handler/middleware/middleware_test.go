package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"maritime_registry/internal/app/ds"
	"maritime_registry/internal/app/metrics"
	"maritime_registry/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeTokens map[string]*ds.JWTClaims

func (f fakeTokens) ParseJWT(token string) (*ds.JWTClaims, error) {
	claims, ok := f[token]
	if !ok {
		return nil, utils.ErrInvalidToken
	}
	return claims, nil
}

type fakeSessions map[string]utils.Session

func (f fakeSessions) GetSession(_ context.Context, token string) (utils.Session, error) {
	if token == "broken" {
		return utils.Session{}, errors.New("redis down")
	}
	session, ok := f[token]
	if !ok {
		return utils.Session{}, utils.ErrSessionNotFound
	}
	return session, nil
}

func authRouter(sessions SessionReader) *gin.Engine {
	tokens := fakeTokens{
		"good":    {UserID: 1, Role: ds.RoleAdmin},
		"revoked": {UserID: 2, Role: ds.RoleAgent},
		"broken":  {UserID: 3, Role: ds.RoleAgent},
	}
	router := gin.New()
	router.GET("/me", AuthMiddleware(tokens, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt(UserIDKey), "role": c.GetString(RoleKey)})
	})
	return router
}

func doGet(router http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	router := authRouter(fakeSessions{"good": {UserID: 1, Role: ds.RoleAdmin}})

	rec := doGet(router, "/me", "Bearer good")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":1,"role":"Admin"}`, rec.Body.String())

	for _, header := range []string{"", "good", "Bearer nope", "Bearer revoked", "Bearer broken"} {
		rec = doGet(router, "/me", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthMiddleware_WithoutSessionStore(t *testing.T) {
	router := authRouter(nil)

	rec := doGet(router, "/me", "Bearer revoked")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	rec := doGet(router, "/ping", "")
	generated := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/api/ships/:imo", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	doGet(router, "/api/ships/9321483", "")
	doGet(router, "/nowhere", "")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/ships/:imo", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
