package calendar

//go:generate go run go.uber.org/mock/mockgen -source=./calendar.go -destination=./mocks/calendar_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"chiclon/config"
	"chiclon/infras/otel"
	"chiclon/shared/constant"
)

var ErrNotConfigured = errors.New("calendar credentials are not configured")

type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

type Client interface {
	Configured() bool
	// Insert creates the event and returns its calendar id.
	Insert(ctx context.Context, event Event) (string, error)
}

// Session owns an authenticated calendar service for one calendar. It is built once at startup and
// replaced as a whole when credentials change.
type Session struct {
	service    *gcal.Service
	calendarID string
	timezone   string
}

func NewSession(ctx context.Context, calendarID, timezone string, opts ...option.ClientOption) (*Session, error) {
	service, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Session{
		service:    service,
		calendarID: calendarID,
		timezone:   timezone,
	}, nil
}

type clientImpl struct {
	session *Session
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	calendarCfg := cfg.External.Calendar

	if calendarCfg.CredentialsFile == "" {
		log.Warn().Msg("Calendar credentials file not set, calendar backend is disabled")

		return NewWithSession(nil, otel)
	}

	timezone := calendarCfg.Timezone
	if timezone == "" {
		timezone = cfg.App.Timezone
	}

	session, err := NewSession(
		context.Background(),
		calendarCfg.CalendarID,
		timezone,
		option.WithCredentialsFile(calendarCfg.CredentialsFile),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create calendar session, calendar backend is disabled")

		return NewWithSession(nil, otel)
	}

	log.Info().Str("calendar", calendarCfg.CalendarID).Msg("Calendar client initialized")

	return NewWithSession(session, otel)
}

func NewWithSession(session *Session, otel otel.Otel) Client {
	return &clientImpl{
		session: session,
		otel:    otel,
	}
}

func (c *clientImpl) Configured() bool {
	return c.session != nil
}

func (c *clientImpl) Insert(ctx context.Context, event Event) (id string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelCalendarScopeName, constant.OtelCalendarScopeName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if c.session == nil {
		return "", ErrNotConfigured
	}

	created, err := c.session.service.Events.Insert(c.session.calendarID, &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: c.session.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: c.session.timezone,
		},
	}).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("calendar", c.session.calendarID).Msg("failed to insert calendar event")

		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}

	scope.SetAttribute("calendar.event_id", created.Id)

	log.Info().Str("eventId", created.Id).Str("calendar", c.session.calendarID).Msg("Calendar event created")

	return created.Id, nil
}
