package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"chiclon/config"
	"chiclon/infras/otel/mocks"
	"chiclon/shared/cache"
	cacheMocks "chiclon/shared/cache/mocks"
	"chiclon/transport/http/middleware"
)

func limitedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), cache.NewRedisCache(client, mocks.NewOtel()))
	handler := mw.RateLimit()(http.HandlerFunc(ok))

	codes := make([]int, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	other.Header.Set("X-Real-IP", "198.51.100.1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_CacheDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("down"))

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), redisCache)

	rec := httptest.NewRecorder()
	mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, redisCache)

	rec := httptest.NewRecorder()
	mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTracing_PassesContextThrough(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, chi.RouteContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
