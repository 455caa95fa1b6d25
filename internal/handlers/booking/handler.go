package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"chiclon/infras/otel"
	"chiclon/internal/domains/booking/model"
	"chiclon/internal/domains/booking/model/dto"
	"chiclon/internal/domains/booking/service"
	"chiclon/shared/constant"
	"chiclon/shared/failure"
	"chiclon/shared/validator"
	"chiclon/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/book-appointment", handler.BookAppointment)
}

// BookAppointment validates an appointment request and hands it to the booking backend.
// @Summary Book an appointment
// @Description Validate the request, check the slot against business hours and deliver it to the configured backend.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookRequest true "Book Appointment Request"
// @Success 200 {object} dto.BookResponse "Appointment booked"
// @Failure 400 {object} response.Result
// @Failure 502 {object} response.Result
// @Failure 503 {object} response.Result
// @Failure 500 {object} response.Result
// @Router /api/book-appointment [post]
func (handler *Handler) BookAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAppointment")
	defer scope.End()

	req := dto.BookRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode booking request")

		response.WithFailure(writer, err, failure.GenericBookingError.Message)

		return
	}

	appointment, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithFailure(writer, err, failure.GenericBookingError.Message)

		return
	}

	scope.AddEvent("Appointment booked " + appointment.ID)

	response.WithBody(writer, http.StatusOK, dto.BookResponse{
		Success:     true,
		Message:     model.MessageBooked,
		Appointment: &appointment,
	})
}
