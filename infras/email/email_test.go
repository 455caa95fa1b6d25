package email_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiclon/config"
	"chiclon/infras/email"
	"chiclon/infras/otel/mocks"
)

func TestNew_FallsBackToLogSender(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		region   string
	}{
		{name: "sendgrid without key", provider: "sendgrid"},
		{name: "ses without region", provider: "ses"},
		{name: "unknown provider", provider: "carrier-pigeon", apiKey: "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.External.Email.Provider = tt.provider
			cfg.External.Email.SendGridAPIKey = tt.apiKey
			cfg.External.Email.SES.Region = tt.region
			cfg.External.Email.FromAddress = "shop@example.com"

			sender := email.New(cfg, mocks.NewOtel())

			assert.Equal(t, "log", sender.Name())
			assert.False(t, sender.Configured())
			assert.NoError(t, sender.Send(context.Background(), email.Message{To: "a@b.co", Subject: "hi"}))
		})
	}
}

func TestNew_SendGrid(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Email.Provider = "sendgrid"
	cfg.External.Email.SendGridAPIKey = "key"
	cfg.External.Email.FromAddress = "shop@example.com"

	sender := email.New(cfg, mocks.NewOtel())

	assert.Equal(t, "sendgrid", sender.Name())
	assert.True(t, sender.Configured())
}

func TestSendGridSender_Send(t *testing.T) {
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := email.NewSendGridSender(email.SendGridConfig{
		APIKey:      "key",
		FromAddress: "shop@example.com",
		FromName:    "Chiclon",
		Host:        server.URL,
	}, mocks.NewOtel())

	err := sender.Send(context.Background(), email.Message{To: "owner@example.com", Subject: "New appointment", Body: "Dana at 9"})
	require.NoError(t, err)

	assert.Equal(t, "New appointment", payload["subject"])
}

func TestSendGridSender_Send_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad from"}]}`))
	}))
	defer server.Close()

	sender := email.NewSendGridSender(email.SendGridConfig{APIKey: "key", FromAddress: "shop@example.com", Host: server.URL}, mocks.NewOtel())

	err := sender.Send(context.Background(), email.Message{To: "owner@example.com", Subject: "x", Body: "y"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestSESSender_Send(t *testing.T) {
	var body string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v2/email/outbound-emails"))

		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MessageId":"message-1"}`))
	}))
	defer server.Close()

	sender, err := email.NewSESSender(context.Background(), email.SESConfig{
		Region:          "us-east-1",
		AccessKeyID:     "id",
		SecretAccessKey: "secret",
		FromAddress:     "shop@example.com",
		FromName:        "Chiclon",
		Endpoint:        server.URL,
	}, mocks.NewOtel())
	require.NoError(t, err)

	assert.Equal(t, "ses", sender.Name())

	err = sender.Send(context.Background(), email.Message{To: "owner@example.com", Subject: "New appointment", Body: "Dana at 9"})
	require.NoError(t, err)

	assert.Contains(t, body, "owner@example.com")
	assert.Contains(t, body, "Chiclon <shop@example.com>")
}
