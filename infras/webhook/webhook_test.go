package webhook_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiclon/config"
	"chiclon/infras/otel/mocks"
	"chiclon/infras/webhook"
)

func TestPost(t *testing.T) {
	var received map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := webhook.NewWithHTTPClient(server.URL, server.Client(), mocks.NewOtel())

	body, err := client.Post(context.Background(), map[string]string{"name": "Dana"})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, body)
	assert.Equal(t, "Dana", received["name"])
}

func TestPost_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("workflow crashed"))
	}))
	defer server.Close()

	client := webhook.NewWithHTTPClient(server.URL, server.Client(), mocks.NewOtel())

	_, err := client.Post(context.Background(), map[string]string{})

	var statusErr *webhook.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "webhook returned 500: workflow crashed", statusErr.Error())
}

func TestPost_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := webhook.NewWithHTTPClient(url, http.DefaultClient, mocks.NewOtel())

	_, err := client.Post(context.Background(), map[string]string{})

	require.Error(t, err)

	var statusErr *webhook.StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestNew_NotConfigured(t *testing.T) {
	client := webhook.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, client.Configured())

	_, err := client.Post(context.Background(), nil)
	assert.ErrorIs(t, err, webhook.ErrNotConfigured)
}
