package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"chiclon/infras/email"
	"chiclon/internal/domains/booking/model"
	"chiclon/shared/constant"
)

var ErrNoOwnerAddress = errors.New("owner email address is not configured")

type emailNotifier struct {
	sender email.Sender
	owner  string
}

// NewEmail notifies the shop owner and sends the client a copy when they left an address.
func NewEmail(sender email.Sender, owner string) Notifier {
	return &emailNotifier{sender: sender, owner: owner}
}

func (n *emailNotifier) Name() string {
	return constant.BackendEmail
}

func (n *emailNotifier) Configured() bool {
	return n.owner != "" && n.sender.Configured()
}

func (n *emailNotifier) Notify(ctx context.Context, confirmation model.Confirmation) error {
	if n.owner == "" {
		return ErrNoOwnerAddress
	}

	err := n.sender.Send(ctx, email.Message{
		To:      n.owner,
		Subject: "New appointment: " + summary(confirmation),
		Body:    describe(confirmation),
	})
	if err != nil {
		return fmt.Errorf("failed to email owner: %w", err)
	}

	if confirmation.Email == "" {
		return nil
	}

	err = n.sender.Send(ctx, email.Message{
		To:      confirmation.Email,
		ToName:  confirmation.Name,
		Subject: fmt.Sprintf("Your appointment on %s at %s", confirmation.Date, confirmation.TimeLabel),
		Body:    "Thanks for booking with us. Here are your details:\n\n" + describe(confirmation),
	})
	if err != nil {
		// the owner already has the booking
		log.Warn().Err(err).Str("id", confirmation.ID).Msg("failed to email client copy")
	}

	return nil
}
