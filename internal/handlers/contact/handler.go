package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"chiclon/infras/otel"
	"chiclon/internal/domains/contact/model"
	"chiclon/internal/domains/contact/model/dto"
	"chiclon/internal/domains/contact/service"
	"chiclon/shared/constant"
	"chiclon/shared/validator"
	"chiclon/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.SendMessage)
}

// SendMessage forwards a contact form message to the shop owner.
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact Request"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Failure 502 {object} response.Result
// @Router /api/contact [post]
func (handler *Handler) SendMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.ContactRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithFailure(writer, err, service.MessageNotSent)

		return
	}

	if err := handler.service.Send(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send contact message")

		response.WithFailure(writer, err, service.MessageNotSent)

		return
	}

	response.WithBody(writer, http.StatusOK, response.Result{Success: true, Message: model.MessageSent})
}
