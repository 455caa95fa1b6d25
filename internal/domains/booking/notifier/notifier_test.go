package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chiclon/config"
	"chiclon/infras/calendar"
	calendarMocks "chiclon/infras/calendar/mocks"
	"chiclon/infras/email"
	emailMocks "chiclon/infras/email/mocks"
	"chiclon/infras/kafka"
	kafkaMocks "chiclon/infras/kafka/mocks"
	webhookMocks "chiclon/infras/webhook/mocks"
	"chiclon/internal/domains/booking/model"
	"chiclon/internal/domains/booking/notifier"
)

func confirmation() model.Confirmation {
	start := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

	return model.Confirmation{
		ID:          "id-1",
		Name:        "Dana",
		Phone:       "5551234567",
		HaircutType: "Mullet",
		HaircutCode: "mullet",
		Date:        "2025-06-02",
		Time:        "09:00",
		TimeLabel:   "9:00 AM",
		Start:       start,
		Timestamp:   start.Add(-24 * time.Hour),
	}
}

type backends struct {
	webhook  *webhookMocks.MockClient
	email    *emailMocks.MockSender
	calendar *calendarMocks.MockClient
	kafka    *kafkaMocks.MockClient
}

func newBackends(ctrl *gomock.Controller) backends {
	return backends{
		webhook:  webhookMocks.NewMockClient(ctrl),
		email:    emailMocks.NewMockSender(ctrl),
		calendar: calendarMocks.NewMockClient(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	for _, backend := range []string{"log", "webhook", "email", "calendar", "kafka", "WEBHOOK", ""} {
		t.Run(backend, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			b := newBackends(ctrl)

			b.webhook.EXPECT().Configured().Return(true).AnyTimes()
			b.email.EXPECT().Configured().Return(true).AnyTimes()
			b.calendar.EXPECT().Configured().Return(true).AnyTimes()
			b.kafka.EXPECT().Configured().Return(true).AnyTimes()

			cfg := &config.Config{}
			cfg.Booking.Backend = backend
			cfg.External.Email.OwnerAddress = "owner@example.com"

			selected := notifier.New(cfg, b.webhook, b.email, b.calendar, b.kafka)

			expected := map[string]string{"": "log", "WEBHOOK": "webhook"}[backend]
			if expected == "" {
				expected = backend
			}

			assert.Equal(t, expected, selected.Name())
			assert.True(t, selected.Configured())
		})
	}
}

func TestLog_Notify(t *testing.T) {
	n := notifier.NewLog()

	assert.True(t, n.Configured())
	assert.NoError(t, n.Notify(context.Background(), confirmation()))
}

func TestWebhook_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := webhookMocks.NewMockClient(ctrl)

	client.EXPECT().Post(gomock.Any(), notifier.Payload{
		ID:          "id-1",
		Name:        "Dana",
		Phone:       "5551234567",
		HaircutType: "Mullet",
		Date:        "2025-06-02",
		Time:        "09:00",
		Timestamp:   "2025-06-01T09:00:00Z",
	}).Return("", nil)

	assert.NoError(t, notifier.NewWebhook(client).Notify(context.Background(), confirmation()))
}

func TestWebhook_Notify_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := webhookMocks.NewMockClient(ctrl)

	client.EXPECT().Post(gomock.Any(), gomock.Any()).Return("", errors.New("refused"))

	err := notifier.NewWebhook(client).Notify(context.Background(), confirmation())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}

func TestEmail_Notify(t *testing.T) {
	t.Run("owner only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := emailMocks.NewMockSender(ctrl)

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg email.Message) error {
			assert.Equal(t, "owner@example.com", msg.To)
			assert.Equal(t, "New appointment: Mullet - Dana", msg.Subject)
			assert.Contains(t, msg.Body, "Time: 9:00 AM")

			return nil
		})

		assert.NoError(t, notifier.NewEmail(sender, "owner@example.com").Notify(context.Background(), confirmation()))
	})

	t.Run("client copy failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := emailMocks.NewMockSender(ctrl)

		c := confirmation()
		c.Email = "dana@example.com"

		gomock.InOrder(
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg email.Message) error {
				assert.Equal(t, "dana@example.com", msg.To)

				return errors.New("bounced")
			}),
		)

		assert.NoError(t, notifier.NewEmail(sender, "owner@example.com").Notify(context.Background(), c))
	})

	t.Run("owner failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := emailMocks.NewMockSender(ctrl)

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("quota"))

		assert.Error(t, notifier.NewEmail(sender, "owner@example.com").Notify(context.Background(), confirmation()))
	})

	t.Run("no owner address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := emailMocks.NewMockSender(ctrl)

		n := notifier.NewEmail(sender, "")

		assert.False(t, n.Configured())
		assert.ErrorIs(t, n.Notify(context.Background(), confirmation()), notifier.ErrNoOwnerAddress)
	})
}

func TestCalendar_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := calendarMocks.NewMockClient(ctrl)

	client.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event calendar.Event) (string, error) {
		assert.Equal(t, "Mullet - Dana", event.Summary)
		assert.Equal(t, 30*time.Minute, event.End.Sub(event.Start))
		assert.Equal(t, confirmation().Start, event.Start)

		return "event-1", nil
	})

	assert.NoError(t, notifier.NewCalendar(client, 30*time.Minute).Notify(context.Background(), confirmation()))
}

func TestCalendar_DefaultDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := calendarMocks.NewMockClient(ctrl)

	client.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event calendar.Event) (string, error) {
		assert.Equal(t, time.Hour, event.End.Sub(event.Start))

		return "", errors.New("forbidden")
	})

	assert.Error(t, notifier.NewCalendar(client, 0).Notify(context.Background(), confirmation()))
}

func TestKafka_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
		require.Len(t, messages, 1)
		assert.Equal(t, "id-1", messages[0].Key)
		assert.IsType(t, notifier.Payload{}, messages[0].Value)

		return nil
	})

	assert.NoError(t, notifier.NewKafka(client).Notify(context.Background(), confirmation()))
}
