package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/hamyar-api/config"
)

func rateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sign-in", RateLimiter(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func performFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/sign-in", nil)
	req.RemoteAddr = ip + ":4321"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(client)
	t.Cleanup(config.ResetRedisClientForTest)

	key := "ratelimit:/sign-in:10.0.0.1"
	window := time.Minute

	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, window).SetVal(true)

	router := rateLimitedRouter(RateLimitConfig{Limit: 2, Window: window})
	w := performFrom(router, "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(client)
	t.Cleanup(config.ResetRedisClientForTest)

	key := "ratelimit:/sign-in:10.0.0.2"
	window := time.Minute
	router := rateLimitedRouter(RateLimitConfig{Limit: 2, Window: window})

	for i := 1; i <= 3; i++ {
		mock.ExpectIncr(key).SetVal(int64(i))
		mock.ExpectExpire(key, window).SetVal(true)
	}

	for i := 0; i < 2; i++ {
		w := performFrom(router, "10.0.0.2")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := performFrom(router, "10.0.0.2")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiterFailsOpenOnRedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(client)
	t.Cleanup(config.ResetRedisClientForTest)

	key := "ratelimit:/sign-in:10.0.0.3"
	mock.ExpectIncr(key).SetErr(fmt.Errorf("connection refused"))

	router := rateLimitedRouter(RateLimitConfig{Limit: 1, Window: time.Minute})
	w := performFrom(router, "10.0.0.3")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterNoOpWithoutRedis(t *testing.T) {
	config.ResetRedisClientForTest()

	router := rateLimitedRouter(RateLimitConfig{Limit: 1, Window: time.Minute})
	for i := 0; i < 5; i++ {
		w := performFrom(router, "10.0.0.4")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
