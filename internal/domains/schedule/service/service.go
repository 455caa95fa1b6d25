package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"chiclon/config"
	"chiclon/infras/otel"
	"chiclon/internal/domains/schedule/model"
	"chiclon/internal/domains/schedule/model/dto"
	"chiclon/shared/constant"
	"chiclon/shared/failure"
	"chiclon/shared/timezone"
	"chiclon/shared/validator"
)

type Schedule interface {
	Slots(ctx context.Context, req dto.SlotsRequest) (dto.SlotsResponse, error)
	SlotsOn(ctx context.Context, date time.Time) []model.Slot
	Hours() model.BusinessHours
}

type serviceImpl struct {
	hours model.BusinessHours
	otel  otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Schedule {
	hours, err := model.ParseBusinessHours(cfg.Booking.BusinessHours)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Booking.BusinessHours).Msg("Failed to parse business hours")
	}

	log.Info().Str("hours", hours.String()).Msg("Business hours loaded")

	return NewWithHours(hours, otel)
}

func NewWithHours(hours model.BusinessHours, otel otel.Otel) Schedule {
	return &serviceImpl{
		hours: hours,
		otel:  otel,
	}
}

func (s *serviceImpl) Hours() model.BusinessHours {
	return s.hours
}

func (s *serviceImpl) Slots(ctx context.Context, req dto.SlotsRequest) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	date, err := timezone.ParseDate(req.Date, timezone.GetLocation())
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to parse slot date")

		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	res.FromModels(date, s.SlotsOn(ctx, date))

	return res, nil
}

func (s *serviceImpl) SlotsOn(ctx context.Context, date time.Time) []model.Slot {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SlotsOn")
	defer scope.End()

	slots := model.DeriveSlots(date, s.hours)

	scope.SetAttributes(map[string]any{
		"slot.date":    date.Format(time.DateOnly),
		"slot.weekday": date.Weekday().String(),
		"slot.count":   len(slots),
	})

	return slots
}
