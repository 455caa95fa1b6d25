package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chiclon/internal/domains/booking/service"
	"chiclon/transport/http/response"
)

const StatusOK = "OK"

type Status struct {
	Status            string `json:"status"`
	Backend           string `json:"backend"`
	BackendConfigured bool   `json:"backendConfigured"`
}

// Handler reports liveness. ready is consulted on every request so shutdown can flip it.
type Handler struct {
	booking service.Booking
	ready   func() bool
}

func New(booking service.Booking) Handler {
	return Handler{
		booking: booking,
		ready:   func() bool { return true },
	}
}

// WithReadiness returns a copy of the handler that answers 503 whenever ready reports false.
func (handler Handler) WithReadiness(ready func() bool) Handler {
	handler.ready = ready

	return handler
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.GetHealth)
}

// GetHealth reports the server status and the booking backend in use.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} response.Message
// @Router /api/health [get]
func (handler *Handler) GetHealth(writer http.ResponseWriter, _ *http.Request) {
	if handler.ready != nil && !handler.ready() {
		response.WithPreparingShutdown(writer)

		return
	}

	backend, configured := handler.booking.Backend()

	response.WithBody(writer, http.StatusOK, Status{
		Status:            StatusOK,
		Backend:           backend,
		BackendConfigured: configured,
	})
}
