package service

import (
	"context"
	"strings"

	"chiclon/infras/otel"
	"chiclon/internal/domains/catalog/model"
	"chiclon/internal/domains/catalog/model/dto"
	"chiclon/shared/constant"
)

type Catalog interface {
	List(ctx context.Context) dto.HaircutTypesResponse
	// DisplayName maps a haircut code to its name. Unknown values are returned unchanged.
	DisplayName(value string) string
}

type serviceImpl struct {
	names map[string]string
	types []model.HaircutType
	otel  otel.Otel
}

func New(otel otel.Otel) Catalog {
	names := make(map[string]string, len(model.HaircutTypes))
	for _, haircut := range model.HaircutTypes {
		names[haircut.Code] = haircut.Name
	}

	return &serviceImpl{
		names: names,
		types: model.HaircutTypes,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.HaircutTypesResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListHaircutTypes")
	defer scope.End()

	res.FromModels(s.types)

	return res
}

func (s *serviceImpl) DisplayName(value string) string {
	if name, ok := s.names[strings.ToLower(strings.TrimSpace(value))]; ok {
		return name
	}

	return value
}
