package email

//go:generate go run go.uber.org/mock/mockgen -source=./email.go -destination=./mocks/email_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"chiclon/config"
	"chiclon/infras/otel"
	"chiclon/shared/constant"
)

const (
	defaultFromName = "Chiclon"
	charsetUTF8     = "UTF-8"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
	HTML    string
}

// Sender delivers a single email. Implementations are swapped by configuration.
type Sender interface {
	Name() string
	// Configured reports whether messages leave the process.
	Configured() bool
	Send(ctx context.Context, msg Message) error
}

// New picks the sender for the configured provider. Missing credentials fall back to a sender that only logs.
func New(cfg *config.Config, otel otel.Otel) Sender {
	emailCfg := cfg.External.Email

	fromName := emailCfg.FromName
	if fromName == "" {
		fromName = defaultFromName
	}

	switch emailCfg.Provider {
	case constant.EmailProviderSES:
		if emailCfg.SES.Region == "" || emailCfg.FromAddress == "" {
			break
		}

		sender, err := NewSESSender(context.Background(), SESConfig{
			Region:          emailCfg.SES.Region,
			AccessKeyID:     emailCfg.SES.AccessKeyID,
			SecretAccessKey: emailCfg.SES.SecretAccessKey,
			FromAddress:     emailCfg.FromAddress,
			FromName:        fromName,
		}, otel)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create SES sender, falling back to log sender")

			break
		}

		log.Info().Str("region", emailCfg.SES.Region).Msg("Email sender initialized with SES")

		return sender
	case constant.EmailProviderSendGrid:
		if emailCfg.SendGridAPIKey == "" || emailCfg.FromAddress == "" {
			break
		}

		log.Info().Msg("Email sender initialized with SendGrid")

		return NewSendGridSender(SendGridConfig{
			APIKey:      emailCfg.SendGridAPIKey,
			FromAddress: emailCfg.FromAddress,
			FromName:    fromName,
		}, otel)
	default:
		log.Warn().Str("provider", emailCfg.Provider).Msg("Unknown email provider")
	}

	log.Warn().Str("provider", emailCfg.Provider).Msg("Email is not configured, messages will only be logged")

	return NewLogSender()
}

type logSender struct{}

func NewLogSender() Sender {
	return &logSender{}
}

func (s *logSender) Name() string {
	return constant.BackendLog
}

func (s *logSender) Configured() bool {
	return false
}

func (s *logSender) Send(_ context.Context, msg Message) error {
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Email not sent, no provider configured")

	return nil
}
