package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"chiclon/config"
	"chiclon/infras/email"
	"chiclon/infras/otel"
	"chiclon/internal/domains/contact/model"
	"chiclon/internal/domains/contact/model/dto"
	"chiclon/shared/constant"
	"chiclon/shared/failure"
	"chiclon/shared/metrics"
	"chiclon/shared/validator"
)

const MessageNotSent = "We couldn't send your message. Please try again."

type Contact interface {
	Send(ctx context.Context, req dto.ContactRequest) error
}

type serviceImpl struct {
	sender  email.Sender
	owner   string
	metrics *metrics.BookingMetrics
	otel    otel.Otel
}

func New(cfg *config.Config, sender email.Sender, metrics *metrics.BookingMetrics, otel otel.Otel) Contact {
	return &serviceImpl{
		sender:  sender,
		owner:   cfg.External.Email.OwnerAddress,
		metrics: metrics,
		otel:    otel,
	}
}

func (s *serviceImpl) Send(ctx context.Context, req dto.ContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	message := req.ToModel()

	if err = model.Schema.Check(message.Fields()); err != nil {
		s.metrics.ObserveContact(metrics.OutcomeRejected)

		var formErr *validator.FormError
		if errors.As(err, &formErr) {
			return failure.BadRequestFromString(formErr.Message) //nolint:wrapcheck
		}

		return failure.BadRequest(err) //nolint:wrapcheck
	}

	if s.owner == "" {
		log.Info().Str("from", message.Email).Str("subject", message.Subject).Msg("contact message received, no owner address configured")
		s.metrics.ObserveContact(metrics.OutcomeSent)

		return nil
	}

	err = s.sender.Send(ctx, email.Message{
		To:      s.owner,
		Subject: fmt.Sprintf("Contact form: %s", message.Subject),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", message.Name, message.Email, message.Body),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to forward contact message")
		s.metrics.ObserveContact(metrics.OutcomeDeliveryFailed)

		return failure.BadGateway(MessageNotSent) //nolint:wrapcheck
	}

	s.metrics.ObserveContact(metrics.OutcomeSent)

	return nil
}
