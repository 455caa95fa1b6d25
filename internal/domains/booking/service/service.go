package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"chiclon/config"
	"chiclon/infras/otel"
	"chiclon/internal/domains/booking/model"
	"chiclon/internal/domains/booking/model/dto"
	"chiclon/internal/domains/booking/notifier"
	catalogService "chiclon/internal/domains/catalog/service"
	scheduleModel "chiclon/internal/domains/schedule/model"
	scheduleService "chiclon/internal/domains/schedule/service"
	"chiclon/shared/constant"
	"chiclon/shared/failure"
	"chiclon/shared/metrics"
	"chiclon/shared/timezone"
	"chiclon/shared/validator"
)

const (
	MessageInvalidDate     = "That date doesn't look right. Please pick another day."
	MessagePastDate        = "That date has already passed. Please pick another day."
	MessageTooFarAhead     = "We only take bookings up to %d days ahead. Please pick an earlier day."
	MessageUnavailableTime = "That time isn't available on the selected day. Please pick another time."
)

type Booking interface {
	Book(ctx context.Context, req dto.BookRequest) (dto.AppointmentResponse, error)
	Backend() (name string, configured bool)
}

type serviceImpl struct {
	cfg      *config.Config
	schema   validator.FormSchema
	schedule scheduleService.Schedule
	catalog  catalogService.Catalog
	notifier notifier.Notifier
	metrics  *metrics.BookingMetrics
	clock    timezone.Clock
	otel     otel.Otel
}

func New(
	cfg *config.Config,
	schedule scheduleService.Schedule,
	catalog catalogService.Catalog,
	notifier notifier.Notifier,
	metrics *metrics.BookingMetrics,
	clock timezone.Clock,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		cfg:      cfg,
		schema:   model.Schema(cfg.Booking.RequiredFields),
		schedule: schedule,
		catalog:  catalog,
		notifier: notifier,
		metrics:  metrics,
		clock:    clock,
		otel:     otel,
	}
}

func (s *serviceImpl) Backend() (string, bool) {
	return s.notifier.Name(), s.notifier.Configured()
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	request := req.ToModel()

	if err = s.schema.Check(request.Fields()); err != nil {
		s.metrics.ObserveBooking(metrics.OutcomeRejected)

		var formErr *validator.FormError
		if errors.As(err, &formErr) {
			log.Info().Str("field", formErr.Field).Str("kind", formErr.Kind.String()).Msg("booking rejected by validation")

			return res, failure.BadRequestFromString(formErr.Message) //nolint:wrapcheck
		}

		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	now := s.clock()

	date, slot, err := s.resolveSlot(ctx, request, now)
	if err != nil {
		s.metrics.ObserveBooking(metrics.OutcomeRejected)

		return res, err
	}

	confirmation := model.Confirmation{
		ID:          uuid.NewString(),
		Name:        request.Name,
		Phone:       request.Phone,
		Email:       request.Email,
		HaircutType: s.catalog.DisplayName(request.HaircutType),
		HaircutCode: request.HaircutType,
		Date:        date.Format(time.DateOnly),
		Time:        slot.Value,
		TimeLabel:   slot.Label,
		Notes:       request.Notes,
		Start:       startOf(date, slot),
		Timestamp:   now,
	}

	scope.SetAttributes(map[string]any{
		"booking.id":      confirmation.ID,
		"booking.date":    confirmation.Date,
		"booking.time":    confirmation.Time,
		"booking.backend": s.notifier.Name(),
	})

	started := time.Now()
	err = s.notifier.Notify(ctx, confirmation)
	s.metrics.ObserveDelivery(s.notifier.Name(), time.Since(started), err)

	if err != nil {
		log.Error().Err(err).Str("id", confirmation.ID).Str("backend", s.notifier.Name()).Msg("failed to deliver appointment")

		if !s.cfg.Booking.IgnoreDeliveryErrors {
			s.metrics.ObserveBooking(metrics.OutcomeDeliveryFailed)

			if !s.notifier.Configured() {
				return res, failure.ServiceUnavailable(failure.GenericBookingError.Message) //nolint:wrapcheck
			}

			return res, failure.BadGateway(failure.GenericBookingError.Message) //nolint:wrapcheck
		}

		log.Warn().Str("id", confirmation.ID).Msg("confirming appointment despite delivery failure")

		err = nil
	}

	s.metrics.ObserveBooking(metrics.OutcomeBooked)

	log.Info().Str("id", confirmation.ID).Str("date", confirmation.Date).Str("time", confirmation.Time).Msg("appointment booked")

	res.FromModel(confirmation)

	return res, nil
}

// resolveSlot checks the date lies in the booking window and that the requested time is one of its slots.
func (s *serviceImpl) resolveSlot(ctx context.Context, request model.Request, now time.Time) (time.Time, scheduleModel.Slot, error) {
	date, err := timezone.ParseDate(request.Date, now.Location())
	if err != nil {
		log.Info().Err(err).Str("date", request.Date).Msg("booking rejected: malformed date")

		return time.Time{}, scheduleModel.Slot{}, failure.BadRequestFromString(MessageInvalidDate) //nolint:wrapcheck
	}

	today := timezone.StartOfDay(now)

	if date.Before(today) {
		return time.Time{}, scheduleModel.Slot{}, failure.BadRequestFromString(MessagePastDate) //nolint:wrapcheck
	}

	maxDays := s.cfg.Booking.MaxAdvanceDays
	if maxDays > 0 && date.After(today.AddDate(0, 0, maxDays)) {
		return time.Time{}, scheduleModel.Slot{}, failure.BadRequestFromString(fmt.Sprintf(MessageTooFarAhead, maxDays)) //nolint:wrapcheck
	}

	for _, slot := range s.schedule.SlotsOn(ctx, date) {
		if slot.Value == request.Time || slot.Label == request.Time {
			return date, slot, nil
		}
	}

	log.Info().Str("date", request.Date).Str("time", request.Time).Msg("booking rejected: time is not a slot")

	return time.Time{}, scheduleModel.Slot{}, failure.BadRequestFromString(MessageUnavailableTime) //nolint:wrapcheck
}

func startOf(date time.Time, slot scheduleModel.Slot) time.Time {
	start, err := time.Parse(constant.TimeLayout, slot.Value)
	if err != nil {
		return date
	}

	year, month, day := date.Date()

	return time.Date(year, month, day, start.Hour(), 0, 0, 0, date.Location())
}
