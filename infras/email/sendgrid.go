package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"chiclon/infras/otel"
	"chiclon/shared/constant"
)

const sendGridEndpoint = "/v3/mail/send"

type SendGridConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
	// Host overrides the API host, e.g. for a local stub.
	Host string
}

type sendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
	otel   otel.Otel
}

func NewSendGridSender(cfg SendGridConfig, otel otel.Otel) Sender {
	request := sendgrid.GetRequest(cfg.APIKey, sendGridEndpoint, cfg.Host)
	request.Method = http.MethodPost

	return &sendGridSender{
		client: &sendgrid.Client{Request: request},
		from:   mail.NewEmail(cfg.FromName, cfg.FromAddress),
		otel:   otel,
	}
}

func (s *sendGridSender) Name() string {
	return constant.EmailProviderSendGrid
}

func (s *sendGridSender) Configured() bool {
	return true
}

func (s *sendGridSender) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEmailScopeName, constant.OtelEmailScopeName+".SendGrid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	html := msg.HTML
	if html == "" {
		html = msg.Body
	}

	message := mail.NewSingleEmail(s.from, msg.Subject, mail.NewEmail(msg.ToName, msg.To), msg.Body, html)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("sendgrid send failed")

		return fmt.Errorf("sendgrid send failed: %w", err)
	}

	scope.SetAttribute("email.status", response.StatusCode)

	if response.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", response.StatusCode).Str("body", response.Body).Str("to", msg.To).Msg("sendgrid returned error status")

		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Int("status", response.StatusCode).Msg("Email sent via SendGrid")

	return nil
}
