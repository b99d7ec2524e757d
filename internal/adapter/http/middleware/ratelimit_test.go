package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/middleware"
	redisStore "github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := redisStore.NewRateLimitStore(client)
	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}

	r := gin.New()
	r.POST("/api/v1/redemptions", middleware.RateLimiter(store, "redemptions", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r, mr
}

func redeemAs(r *gin.Engine, userID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/redemptions", nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		w := redeemAs(router, "7")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, redeemAs(router, "7").Code)
	}

	w := redeemAs(router, "7")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_CountsPerUser(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, redeemAs(router, "7").Code)
	}
	assert.Equal(t, http.StatusOK, redeemAs(router, "8").Code)
	assert.Equal(t, http.StatusOK, redeemAs(router, "").Code, "anonymous callers are keyed by IP")
}

func TestRateLimiter_RedisDownAllows(t *testing.T) {
	router, mr := setupRateLimitRouter(t)
	mr.Close()

	w := redeemAs(router, "7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
