package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSlots_MorningSession(t *testing.T) {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	windowStart := day.Add(9 * time.Hour)
	windowEnd := day.Add(11 * time.Hour)

	slots, err := CalculateSlots(windowStart, windowEnd, 15, 5, 2)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	expectedStarts := []string{"09:00", "09:20", "09:40", "10:00", "10:20", "10:40"}
	expectedEnds := []string{"09:15", "09:35", "09:55", "10:15", "10:35", "10:55"}
	for i, slot := range slots {
		assert.Equal(t, expectedStarts[i], slot.Start.Format("15:04"))
		assert.Equal(t, expectedEnds[i], slot.End.Format("15:04"))
		assert.Equal(t, 2, slot.Capacity)
	}
}

func TestCalculateSlots_CountFormula(t *testing.T) {
	windowStart := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		windowMinutes int
		duration      int
		buffer        int
	}{
		{120, 15, 5},
		{120, 10, 5},
		{60, 30, 0},
		{90, 20, 10},
		{45, 60, 0},
		{7, 3, 2},
	} {
		windowEnd := windowStart.Add(time.Duration(tc.windowMinutes) * time.Minute)
		slots, err := CalculateSlots(windowStart, windowEnd, tc.duration, tc.buffer, 1)
		require.NoError(t, err)

		expected := tc.windowMinutes / (tc.duration + tc.buffer)
		assert.Len(t, slots, expected, "window=%dm duration=%dm buffer=%dm", tc.windowMinutes, tc.duration, tc.buffer)

		duration := time.Duration(tc.duration) * time.Minute
		for i, slot := range slots {
			assert.Equal(t, duration, slot.End.Sub(slot.Start))
			if i > 0 {
				assert.True(t, slot.Start.After(slots[i-1].Start), "starts must be strictly increasing")
				assert.False(t, slot.Start.Before(slots[i-1].End), "slots must not overlap")
			}
		}
	}
}

func TestCalculateSlots_EmptyWindow(t *testing.T) {
	at := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	slots, err := CalculateSlots(at, at, 15, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = CalculateSlots(at, at.Add(-time.Hour), 15, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCalculateSlots_InvalidConfiguration(t *testing.T) {
	start := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	_, err := CalculateSlots(start, end, 0, 5, 2)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = CalculateSlots(start, end, -15, 5, 2)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = CalculateSlots(start, end, 15, -1, 2)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = CalculateSlots(start, end, 15, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCalculateSlots_INFWindows(t *testing.T) {
	// The INF format: 10-minute interviews with a 5-minute buffer, capacity 2.
	// A 2h window yields 8 slots, a 1h45m window yields 7.
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	session1, err := CalculateSlots(day.Add(9*time.Hour), day.Add(11*time.Hour), 10, 5, 2)
	require.NoError(t, err)
	assert.Len(t, session1, 8)

	session2, err := CalculateSlots(day.Add(13*time.Hour), day.Add(14*time.Hour+45*time.Minute), 10, 5, 2)
	require.NoError(t, err)
	assert.Len(t, session2, 7)
}
