package scheduling

import "time"

type SlotRange struct {
	Start    time.Time
	End      time.Time
	Capacity int
}

// CalculateSlots cuts the session window into [cursor, cursor+duration)
// ranges separated by duration+buffer, producing floor(window/step) slots.
// An empty or inverted window yields an empty result, not an error: the
// caller treats it as "nothing to generate".
//
// All times are expected to be in the same location (timezone).
func CalculateSlots(windowStart, windowEnd time.Time, durationMinutes, bufferMinutes, capacity int) ([]SlotRange, error) {
	if durationMinutes <= 0 || bufferMinutes < 0 || capacity < 1 {
		return nil, ErrInvalidConfiguration
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := duration + time.Duration(bufferMinutes)*time.Minute

	if !windowEnd.After(windowStart) {
		return nil, nil
	}

	count := int(windowEnd.Sub(windowStart) / step)
	slots := make([]SlotRange, 0, count)
	cursor := windowStart
	for i := 0; i < count; i++ {
		slots = append(slots, SlotRange{
			Start:    cursor,
			End:      cursor.Add(duration),
			Capacity: capacity,
		})
		cursor = cursor.Add(step)
	}
	return slots, nil
}
