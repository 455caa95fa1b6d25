package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"chiclon/infras/otel"
	"chiclon/internal/domains/schedule/model/dto"
	"chiclon/internal/domains/schedule/service"
	"chiclon/shared/constant"
	"chiclon/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/slots", handler.GetSlots)
}

// GetSlots lists the bookable hours of a date.
// @Summary Get available slots
// @Description List the hourly slots offered on a date. Closed days return an empty list.
// @Tags Schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.SlotsResponse
// @Failure 400 {object} response.Error
// @Router /api/slots [get]
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	req := dto.SlotsRequest{Date: request.URL.Query().Get(constant.RequestParamDate)}

	slots, err := handler.service.Slots(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("date", req.Date).Msg("failed to derive slots")

		response.WithError(writer, err)

		return
	}

	response.WithBody(writer, http.StatusOK, slots)
}
