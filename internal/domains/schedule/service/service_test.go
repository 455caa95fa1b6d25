package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiclon/config"
	"chiclon/infras/otel/mocks"
	"chiclon/internal/domains/schedule/model"
	"chiclon/internal/domains/schedule/model/dto"
	"chiclon/internal/domains/schedule/service"
	"chiclon/shared/failure"
)

func newService() service.Schedule {
	return service.NewWithHours(model.DefaultBusinessHours(), mocks.NewOtel())
}

func TestNew_ParsesConfiguredHours(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.BusinessHours = "2=10-12"

	svc := service.New(cfg, mocks.NewOtel())

	assert.Equal(t, model.BusinessHours{time.Tuesday: {Start: 10, End: 12}}, svc.Hours())
}

func TestSlots(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		expectOpen  bool
		expectCount int
		expectCode  int
	}{
		{name: "weekday", date: "2025-06-02", expectOpen: true, expectCount: 9},
		{name: "saturday", date: "2025-06-07", expectOpen: true, expectCount: 8},
		{name: "sunday is closed", date: "2025-06-08"},
		{name: "missing date", date: "", expectCode: 400},
		{name: "malformed date", date: "2025/06/02", expectCode: 400},
		{name: "impossible date", date: "2025-02-30", expectCode: 400},
	}

	svc := newService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Slots(context.Background(), dto.SlotsRequest{Date: tt.date})

			if tt.expectCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.expectCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.date, res.Date)
			assert.Equal(t, tt.expectOpen, res.Open)
			assert.Len(t, res.Slots, tt.expectCount)
		})
	}
}

func TestSlotsOn(t *testing.T) {
	svc := newService()
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, model.DeriveSlots(monday, model.DefaultBusinessHours()), svc.SlotsOn(context.Background(), monday))
}
