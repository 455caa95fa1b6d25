package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"

	"chiclon/infras/otel"
	"chiclon/shared/constant"
)

type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	FromAddress     string
	FromName        string
	// Endpoint overrides the SES endpoint, e.g. for a local stub.
	Endpoint string
}

type sesSender struct {
	client *sesv2.Client
	from   string
	otel   otel.Otel
}

// NewSESSender loads the AWS configuration. Static keys win over the default credential chain.
func NewSESSender(ctx context.Context, cfg SESConfig, otel otel.Otel) (Sender, error) {
	loaders := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loaders = append(loaders, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &sesSender{
		client: client,
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress),
		otel:   otel,
	}, nil
}

func (s *sesSender) Name() string {
	return constant.EmailProviderSES
}

func (s *sesSender) Configured() bool {
	return true
}

func (s *sesSender) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEmailScopeName, constant.OtelEmailScopeName+".SES")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body := &types.Body{}

	if msg.Body != "" {
		body.Text = &types.Content{Data: aws.String(msg.Body), Charset: aws.String(charsetUTF8)}
	}

	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML), Charset: aws.String(charsetUTF8)}
	}

	output, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charsetUTF8)},
				Body:    body,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("SES send failed")

		return fmt.Errorf("SES send failed: %w", err)
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Str("messageId", aws.ToString(output.MessageId)).Msg("Email sent via SES")

	return nil
}
