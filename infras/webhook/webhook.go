package webhook

//go:generate go run go.uber.org/mock/mockgen -source=./webhook.go -destination=./mocks/webhook_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"chiclon/config"
	"chiclon/infras/otel"
	"chiclon/shared/constant"
)

const maxResponseBody = 4096

var ErrNotConfigured = errors.New("webhook URL is not configured")

// StatusError is returned when the webhook answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.StatusCode, e.Body)
}

type Client interface {
	Configured() bool
	// Post sends payload as JSON and returns the response body.
	Post(ctx context.Context, payload any) (string, error)
}

type clientImpl struct {
	url        string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	webhookCfg := cfg.External.Webhook

	if webhookCfg.URL == "" {
		log.Warn().Msg("Webhook URL not set, appointments will not be forwarded")
	} else {
		log.Info().Str("url", webhookCfg.URL).Msg("Webhook client initialized")
	}

	return NewWithHTTPClient(webhookCfg.URL, &http.Client{
		Timeout:   time.Duration(webhookCfg.TimeoutSeconds) * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, otel)
}

func NewWithHTTPClient(url string, httpClient *http.Client, otel otel.Otel) Client {
	return &clientImpl{
		url:        url,
		httpClient: httpClient,
		otel:       otel,
	}
}

func (c *clientImpl) Configured() bool {
	return c.url != ""
}

func (c *clientImpl) Post(ctx context.Context, payload any) (res string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelWebhookScopeName, constant.OtelWebhookScopeName+".Post")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build webhook request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	log.Debug().Str("url", c.url).RawJSON("payload", body).Msg("Sending webhook")

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("url", c.url).Msg("failed to send webhook")

		return "", fmt.Errorf("failed to send webhook: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBody))
	if err != nil {
		return "", fmt.Errorf("failed to read webhook response: %w", err)
	}

	res = string(raw)

	scope.SetAttribute("webhook.status", response.StatusCode)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", response.StatusCode).Str("body", res).Msg("webhook returned error status")

		return res, &StatusError{StatusCode: response.StatusCode, Body: res}
	}

	log.Info().Int("status", response.StatusCode).Msg("Webhook sent successfully")

	return res, nil
}
