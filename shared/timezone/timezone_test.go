package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiclon/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.False(t, timezone.NewClock()().IsZero())
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	in := time.Date(2025, 6, 2, 23, 45, 10, 5, loc)
	got := timezone.StartOfDay(in)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestParseDate(t *testing.T) {
	day, err := timezone.ParseDate("2025-06-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day.Weekday())

	_, err = timezone.ParseDate("2025-13-01", time.UTC)
	assert.Error(t, err)

	day, err = timezone.ParseDate("2025-06-02", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day.Weekday())
}
