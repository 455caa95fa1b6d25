package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chiclon/infras/otel"
	"chiclon/internal/domains/catalog/service"
	"chiclon/shared/constant"
	"chiclon/transport/http/response"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/haircut-types", handler.GetHaircutTypes)
}

// GetHaircutTypes lists the haircuts offered.
// @Summary List haircut types
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.HaircutTypesResponse
// @Router /api/haircut-types [get]
func (handler *Handler) GetHaircutTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHaircutTypes")
	defer scope.End()

	response.WithBody(writer, http.StatusOK, handler.service.List(ctx))
}
