package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelative(t *testing.T) {
	now := time.Date(2023, 10, 15, 16, 0, 0, 0, time.UTC)

	t.Run("Minutes under an hour", func(t *testing.T) {
		assert.Equal(t, "0m", Relative(now, now))
		assert.Equal(t, "5m", Relative(now, now.Add(-5*time.Minute)))
		assert.Equal(t, "59m", Relative(now, now.Add(-59*time.Minute)))
	})

	t.Run("Hours under a day", func(t *testing.T) {
		assert.Equal(t, "1h", Relative(now, now.Add(-60*time.Minute)))
		assert.Equal(t, "23h", Relative(now, now.Add(-23*time.Hour)))
	})

	t.Run("Days under a week", func(t *testing.T) {
		assert.Equal(t, "1d", Relative(now, now.Add(-24*time.Hour)))
		assert.Equal(t, "6d", Relative(now, now.Add(-6*24*time.Hour)))
	})

	t.Run("Calendar date beyond a week", func(t *testing.T) {
		assert.Equal(t, "Oct 1, 2023", Relative(now, time.Date(2023, 10, 1, 9, 0, 0, 0, time.UTC)))
	})
}

func TestDayKey(t *testing.T) {
	t.Run("Same local day shares a key", func(t *testing.T) {
		morning := time.Date(2023, 10, 15, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2023, 10, 15, 22, 30, 0, 0, time.UTC)
		assert.Equal(t, DayKey(morning, time.UTC), DayKey(evening, time.UTC))
	})

	t.Run("Key follows the viewer location", func(t *testing.T) {
		// 23:30 UTC is already the next day one hour east.
		east := time.FixedZone("east", 3600)
		late := time.Date(2023, 10, 15, 23, 30, 0, 0, time.UTC)
		assert.Equal(t, "2023-10-15", DayKey(late, time.UTC))
		assert.Equal(t, "2023-10-16", DayKey(late, east))
	})
}

func TestParseISO(t *testing.T) {
	assert.Equal(t, time.Date(2023, 10, 15, 8, 24, 0, 0, time.UTC), ParseISO("2023-10-15T08:24:00Z"))
	assert.True(t, ParseISO("not-a-time").IsZero())
}
