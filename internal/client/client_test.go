package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiclon/internal/client"
	"chiclon/internal/domains/booking/model"
	"chiclon/internal/submission"
)

func request() model.Request {
	return model.Request{Name: "dana", Phone: "5551234567", HaircutType: "mullet", Date: "2025-06-02", Time: "09:00"}
}

func newServer(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return client.New(server.URL+"/", client.WithHTTPClient(server.Client()))
}

func TestBook_Success(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.PathBook, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mullet", body["haircutType"])

		_, _ = w.Write([]byte(`{"success":true,"message":"Appointment booked successfully!","appointment":{"id":"a1","name":"Dana","phone":"5551234567","haircutType":"Mullet","date":"2025-06-02","time":"09:00"}}`))
	})

	booked, err := c.Book(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, "Dana", booked.Name)
	assert.Equal(t, "Mullet", booked.HaircutType)
}

func TestBook_SuccessWithoutEcho(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	booked, err := c.Book(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, request(), booked)
}

func TestBook_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "validation", status: http.StatusBadRequest, body: `{"success":false,"message":"Hey, you forgot to fill in the name field."}`, message: "Hey, you forgot to fill in the name field."},
		{name: "backend failure", status: http.StatusBadGateway, body: `{"success":false,"message":"Error booking appointment. Please try again."}`, message: "Error booking appointment. Please try again."},
		{name: "success false with 200", status: http.StatusOK, body: `{"success":false}`},
		{name: "html error page", status: http.StatusInternalServerError, body: `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Book(context.Background(), request())

			var rejected *submission.RejectedError
			require.True(t, errors.As(err, &rejected), "got %T", err)
			assert.Equal(t, tt.status, rejected.StatusCode)
			assert.Equal(t, tt.message, rejected.Message)
		})
	}
}

func TestBook_Transport(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := client.New(server.URL).Book(context.Background(), request())

	var transport *submission.TransportError
	assert.True(t, errors.As(err, &transport))
}

func TestBook_UnreadableSuccess(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.Book(context.Background(), request())

	var transport *submission.TransportError
	assert.True(t, errors.As(err, &transport))
}

func TestSlots(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.PathSlots, r.URL.Path)
		assert.Equal(t, "2025-06-02", r.URL.Query().Get("date"))

		_, _ = w.Write([]byte(`{"date":"2025-06-02","open":true,"slots":[{"value":"09:00","label":"9:00 AM"}]}`))
	})

	slots, err := c.Slots(context.Background(), "2025-06-02")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "9:00 AM", slots[0].Label)
}

func TestSlots_BadRequest(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"date is required"}`))
	})

	_, err := c.Slots(context.Background(), "")

	var rejected *submission.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "date is required", rejected.Message)
}

func TestHaircutTypes(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"haircutTypes":[{"code":"mullet","name":"Mullet"}]}`))
	})

	types, err := c.HaircutTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Mullet", types[0].Name)
}
