package notifier

import (
	"context"
	"fmt"

	"chiclon/infras/kafka"
	"chiclon/internal/domains/booking/model"
	"chiclon/shared/constant"
)

type kafkaNotifier struct {
	client kafka.Client
}

// NewKafka publishes each appointment keyed by its id.
func NewKafka(client kafka.Client) Notifier {
	return &kafkaNotifier{client: client}
}

func (n *kafkaNotifier) Name() string {
	return constant.BackendKafka
}

func (n *kafkaNotifier) Configured() bool {
	return n.client.Configured()
}

func (n *kafkaNotifier) Notify(ctx context.Context, confirmation model.Confirmation) error {
	err := n.client.SendMessages(ctx, kafka.Message{
		Key:   confirmation.ID,
		Value: NewPayload(confirmation),
	})
	if err != nil {
		return fmt.Errorf("failed to publish appointment: %w", err)
	}

	return nil
}
