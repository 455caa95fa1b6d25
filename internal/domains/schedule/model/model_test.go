package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiclon/internal/domains/schedule/model"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)

	return d
}

func TestDeriveSlots_Weekday(t *testing.T) {
	// 2025-06-02 is a Monday.
	slots := model.DeriveSlots(date(t, "2025-06-02"), model.DefaultBusinessHours())

	require.Len(t, slots, 9)
	assert.Equal(t, model.Slot{Value: "09:00", Label: "9:00 AM"}, slots[0])
	assert.Equal(t, model.Slot{Value: "12:00", Label: "12:00 PM"}, slots[3])
	assert.Equal(t, model.Slot{Value: "17:00", Label: "5:00 PM"}, slots[8])
}

func TestDeriveSlots_Saturday(t *testing.T) {
	slots := model.DeriveSlots(date(t, "2025-06-07"), model.DefaultBusinessHours())

	require.Len(t, slots, 8)
	assert.Equal(t, "4:00 PM", slots[len(slots)-1].Label)
}

func TestDeriveSlots_ClosedDay(t *testing.T) {
	slots := model.DeriveSlots(date(t, "2025-06-08"), model.DefaultBusinessHours())

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestDeriveSlots_Deterministic(t *testing.T) {
	d := date(t, "2025-06-04")
	hours := model.DefaultBusinessHours()

	assert.Equal(t, model.DeriveSlots(d, hours), model.DeriveSlots(d, hours))
}

func TestDeriveSlots_Ascending(t *testing.T) {
	slots := model.DeriveSlots(date(t, "2025-06-03"), model.BusinessHours{time.Tuesday: {Start: 0, End: 24}})

	require.Len(t, slots, 24)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1].Value, slots[i].Value)
	}
}

func TestHourLabel(t *testing.T) {
	tests := map[int]string{
		0:  "0:00 AM",
		1:  "1:00 AM",
		11: "11:00 AM",
		12: "12:00 PM",
		13: "1:00 PM",
		23: "11:00 PM",
	}

	for hour, label := range tests {
		assert.Equal(t, label, model.HourLabel(hour), "hour %d", hour)
	}
}

func TestParseBusinessHours(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    model.BusinessHours
		expectError bool
	}{
		{
			name:     "empty uses defaults",
			value:    "",
			expected: model.DefaultBusinessHours(),
		},
		{
			name:     "custom table",
			value:    "0=10-14, 3=8-20",
			expected: model.BusinessHours{time.Sunday: {Start: 10, End: 14}, time.Wednesday: {Start: 8, End: 20}},
		},
		{name: "start after end", value: "1=18-9", expectError: true},
		{name: "empty range", value: "1=9-9", expectError: true},
		{name: "past midnight", value: "1=9-25", expectError: true},
		{name: "unknown weekday", value: "7=9-18", expectError: true},
		{name: "missing range", value: "1", expectError: true},
		{name: "not a number", value: "mon=9-18", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := model.ParseBusinessHours(tt.value)

			if tt.expectError {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, hours)
		})
	}
}

func TestBusinessHours_String(t *testing.T) {
	assert.Equal(t, "1=9-18,2=9-18,3=9-18,4=9-18,5=9-18,6=9-17", model.DefaultBusinessHours().String())

	parsed, err := model.ParseBusinessHours(model.DefaultBusinessHours().String())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultBusinessHours(), parsed)
}
