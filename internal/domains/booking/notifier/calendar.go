package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"chiclon/infras/calendar"
	"chiclon/internal/domains/booking/model"
	"chiclon/shared/constant"
)

const defaultAppointmentDuration = time.Hour

type calendarNotifier struct {
	client   calendar.Client
	duration time.Duration
}

func NewCalendar(client calendar.Client, duration time.Duration) Notifier {
	if duration <= 0 {
		duration = defaultAppointmentDuration
	}

	return &calendarNotifier{client: client, duration: duration}
}

func (n *calendarNotifier) Name() string {
	return constant.BackendCalendar
}

func (n *calendarNotifier) Configured() bool {
	return n.client.Configured()
}

func (n *calendarNotifier) Notify(ctx context.Context, confirmation model.Confirmation) error {
	id, err := n.client.Insert(ctx, calendar.Event{
		Summary:     summary(confirmation),
		Description: describe(confirmation),
		Start:       confirmation.Start,
		End:         confirmation.Start.Add(n.duration),
	})
	if err != nil {
		return fmt.Errorf("failed to add appointment to calendar: %w", err)
	}

	log.Debug().Str("id", confirmation.ID).Str("eventId", id).Msg("appointment added to calendar")

	return nil
}
