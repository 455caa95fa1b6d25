package calendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"chiclon/config"
	"chiclon/infras/calendar"
	"chiclon/infras/otel/mocks"
)

func TestNew_WithoutCredentials(t *testing.T) {
	client := calendar.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, client.Configured())

	_, err := client.Insert(context.Background(), calendar.Event{})
	assert.ErrorIs(t, err, calendar.ErrNotConfigured)
}

func TestInsert(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/calendars/shop/events"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"event-1"}`))
	}))
	defer server.Close()

	session, err := calendar.NewSession(
		context.Background(),
		"shop",
		"America/New_York",
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	client := calendar.NewWithSession(session, mocks.NewOtel())
	require.True(t, client.Configured())

	start := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

	id, err := client.Insert(context.Background(), calendar.Event{
		Summary: "Mullet - Dana",
		Start:   start,
		End:     start.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "event-1", id)
	assert.Equal(t, "Mullet - Dana", received["summary"])

	startField, ok := received["start"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2025-06-02T09:00:00Z", startField["dateTime"])
	assert.Equal(t, "America/New_York", startField["timeZone"])
}
