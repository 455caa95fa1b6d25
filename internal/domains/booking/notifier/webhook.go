package notifier

import (
	"context"
	"fmt"

	"chiclon/infras/webhook"
	"chiclon/internal/domains/booking/model"
	"chiclon/shared/constant"
)

type webhookNotifier struct {
	client webhook.Client
}

func NewWebhook(client webhook.Client) Notifier {
	return &webhookNotifier{client: client}
}

func (n *webhookNotifier) Name() string {
	return constant.BackendWebhook
}

func (n *webhookNotifier) Configured() bool {
	return n.client.Configured()
}

func (n *webhookNotifier) Notify(ctx context.Context, confirmation model.Confirmation) error {
	if _, err := n.client.Post(ctx, NewPayload(confirmation)); err != nil {
		return fmt.Errorf("failed to forward appointment to webhook: %w", err)
	}

	return nil
}
