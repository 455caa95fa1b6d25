package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"chiclon/internal/domains/booking/service/mocks"
	"chiclon/internal/handlers/health"
)

func TestGetHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBooking(ctrl)
	service.EXPECT().Backend().Return("webhook", true)

	handler := health.New(service)
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","backend":"webhook","backendConfigured":true}`, rec.Body.String())
}

func TestGetHealth_ShuttingDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBooking(ctrl)

	handler := health.New(service).WithReadiness(func() bool { return false })
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
