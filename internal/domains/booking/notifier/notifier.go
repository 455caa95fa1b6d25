package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"chiclon/config"
	"chiclon/infras/calendar"
	"chiclon/infras/email"
	"chiclon/infras/kafka"
	"chiclon/infras/webhook"
	"chiclon/internal/domains/booking/model"
	"chiclon/shared/constant"
)

// Notifier hands a confirmed appointment to the place the shop reads bookings from.
type Notifier interface {
	Name() string
	Configured() bool
	Notify(ctx context.Context, confirmation model.Confirmation) error
}

// New selects the backend named by BOOKING_BACKEND.
func New(
	cfg *config.Config,
	webhookClient webhook.Client,
	sender email.Sender,
	calendarClient calendar.Client,
	kafkaClient kafka.Client,
) Notifier {
	backend := strings.ToLower(cfg.Booking.Backend)

	var selected Notifier

	switch backend {
	case constant.BackendWebhook:
		selected = NewWebhook(webhookClient)
	case constant.BackendEmail:
		selected = NewEmail(sender, cfg.External.Email.OwnerAddress)
	case constant.BackendCalendar:
		selected = NewCalendar(calendarClient, time.Duration(cfg.External.Calendar.DurationMinutes)*time.Minute)
	case constant.BackendKafka:
		selected = NewKafka(kafkaClient)
	case constant.BackendLog, constant.Empty:
		selected = NewLog()
	default:
		log.Fatal().Str("backend", cfg.Booking.Backend).Msg("Unknown booking backend")
	}

	if !selected.Configured() {
		log.Warn().Str("backend", selected.Name()).Msg("Booking backend is not configured, appointments will not be delivered")
	} else {
		log.Info().Str("backend", selected.Name()).Msg("Booking backend initialized")
	}

	return selected
}

type logNotifier struct{}

func NewLog() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Name() string {
	return constant.BackendLog
}

func (n *logNotifier) Configured() bool {
	return true
}

func (n *logNotifier) Notify(_ context.Context, confirmation model.Confirmation) error {
	log.Info().
		Str("id", confirmation.ID).
		Str("name", confirmation.Name).
		Str("phone", confirmation.Phone).
		Str("haircutType", confirmation.HaircutType).
		Str("date", confirmation.Date).
		Str("time", confirmation.Time).
		Msg("Appointment booked")

	return nil
}

// Payload is the JSON document forwarded to webhook and queue consumers.
type Payload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	HaircutType string `json:"haircutType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
	Timestamp   string `json:"timestamp"`
}

func NewPayload(confirmation model.Confirmation) Payload {
	return Payload{
		ID:          confirmation.ID,
		Name:        confirmation.Name,
		Phone:       confirmation.Phone,
		Email:       confirmation.Email,
		HaircutType: confirmation.HaircutType,
		Date:        confirmation.Date,
		Time:        confirmation.Time,
		Notes:       confirmation.Notes,
		Timestamp:   confirmation.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func summary(confirmation model.Confirmation) string {
	return fmt.Sprintf("%s - %s", confirmation.HaircutType, confirmation.Name)
}

func describe(confirmation model.Confirmation) string {
	lines := []string{
		"Name: " + confirmation.Name,
		"Phone: " + confirmation.Phone,
		"Haircut: " + confirmation.HaircutType,
		"Date: " + confirmation.Date,
		"Time: " + confirmation.TimeLabel,
	}

	if confirmation.Email != "" {
		lines = append(lines, "Email: "+confirmation.Email)
	}

	if confirmation.Notes != "" {
		lines = append(lines, "Notes: "+confirmation.Notes)
	}

	return strings.Join(lines, "\n")
}
