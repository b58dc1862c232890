package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateSlots(t *testing.T) []SlotRange {
	t.Helper()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	slots, err := CalculateSlots(day.Add(9*time.Hour), day.Add(11*time.Hour), 15, 5, 2)
	require.NoError(t, err)
	require.Len(t, slots, 6)
	return slots
}

func asExisting(slots []SlotRange) []ExistingSlot {
	existing := make([]ExistingSlot, 0, len(slots))
	for _, s := range slots {
		existing = append(existing, ExistingSlot{ID: uuid.New(), Start: s.Start, End: s.End})
	}
	return existing
}

func TestPlanRegeneration_FreshSession(t *testing.T) {
	candidates := candidateSlots(t)

	plan := PlanRegeneration(candidates, nil)
	assert.Len(t, plan.Create, 6)
	assert.Empty(t, plan.DeleteIDs)
	assert.Empty(t, plan.PreservedIDs)
}

func TestPlanRegeneration_Idempotent(t *testing.T) {
	candidates := candidateSlots(t)

	first := PlanRegeneration(candidates, nil)
	existing := asExisting(first.Create)

	second := PlanRegeneration(candidates, existing)
	assert.Len(t, second.DeleteIDs, len(existing))
	assert.Len(t, second.Create, len(first.Create))
	for i := range second.Create {
		assert.True(t, second.Create[i].Start.Equal(first.Create[i].Start))
		assert.True(t, second.Create[i].End.Equal(first.Create[i].End))
	}
}

func TestPlanRegeneration_PreservesBookedSlots(t *testing.T) {
	candidates := candidateSlots(t)
	existing := asExisting(candidates)
	existing[1].ConfirmedBookings = 1
	existing[4].ConfirmedBookings = 2

	plan := PlanRegeneration(candidates, existing)

	assert.ElementsMatch(t, []uuid.UUID{existing[1].ID, existing[4].ID}, plan.PreservedIDs)
	assert.Len(t, plan.DeleteIDs, 4)
	assert.NotContains(t, plan.DeleteIDs, existing[1].ID)
	assert.NotContains(t, plan.DeleteIDs, existing[4].ID)

	// Preserved ranges must not be recreated.
	assert.Len(t, plan.Create, 4)
	for _, created := range plan.Create {
		assert.False(t, created.Start.Equal(existing[1].Start))
		assert.False(t, created.Start.Equal(existing[4].Start))
	}
}

func TestPlanRegeneration_BookedSlotShadowsOverlappingCandidates(t *testing.T) {
	// A booked slot generated under an older session configuration can
	// straddle several new candidate ranges; all of them must be skipped.
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	candidates := candidateSlots(t)

	booked := ExistingSlot{
		ID:                uuid.New(),
		Start:             day.Add(9*time.Hour + 10*time.Minute),
		End:               day.Add(9*time.Hour + 40*time.Minute),
		ConfirmedBookings: 1,
	}

	plan := PlanRegeneration(candidates, []ExistingSlot{booked})
	assert.Equal(t, []uuid.UUID{booked.ID}, plan.PreservedIDs)
	// 09:00-09:15 and 09:20-09:35 both overlap [09:10, 09:40); the rest stay.
	assert.Len(t, plan.Create, 4)
	for _, created := range plan.Create {
		assert.False(t, created.Start.Before(booked.End) && booked.Start.Before(created.End),
			"created slot %s overlaps preserved booked slot", created.Start.Format("15:04"))
	}
}

func TestPlanRegeneration_WindowShrunk(t *testing.T) {
	// Session window cut in half: unbooked slots outside the new window are
	// deleted, a booked one outside the window is still preserved.
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	old := candidateSlots(t)
	existing := asExisting(old)
	existing[5].ConfirmedBookings = 1 // 10:40-10:55, beyond the shrunk window

	shrunk, err := CalculateSlots(day.Add(9*time.Hour), day.Add(10*time.Hour), 15, 5, 2)
	require.NoError(t, err)
	require.Len(t, shrunk, 3)

	plan := PlanRegeneration(shrunk, existing)
	assert.Equal(t, []uuid.UUID{existing[5].ID}, plan.PreservedIDs)
	assert.Len(t, plan.DeleteIDs, 5)
	assert.Len(t, plan.Create, 3)
}
