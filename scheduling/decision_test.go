package scheduling

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func openSnapshot() BookingSnapshot {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	return BookingSnapshot{
		SlotActive:    true,
		SessionActive: true,
		SlotStart:     day.Add(9 * time.Hour),
		SlotEnd:       day.Add(9*time.Hour + 15*time.Minute),
		Capacity:      2,
		Occupancy:     0,
	}
}

func TestDecideBooking_Accepts(t *testing.T) {
	resolved := ResolvedPhase{Phase: PhaseOpen, Quota: 5}
	assert.NoError(t, DecideBooking(resolved, openSnapshot()))
}

func TestDecideBooking_RejectionOrder(t *testing.T) {
	resolved := ResolvedPhase{Phase: PhaseOpen, Quota: 5}

	snap := openSnapshot()
	snap.SlotActive = false
	assert.ErrorIs(t, DecideBooking(resolved, snap), ErrSlotInactive)

	snap = openSnapshot()
	snap.SessionActive = false
	assert.ErrorIs(t, DecideBooking(resolved, snap), ErrSessionInactive)

	snap = openSnapshot()
	assert.ErrorIs(t, DecideBooking(ResolvedPhase{Phase: PhaseEnded}, snap), ErrPhaseClosed)

	snap = openSnapshot()
	snap.ConfirmedCount = 5
	snap.Occupancy = snap.Capacity
	// Quota beats capacity for messaging purposes.
	assert.ErrorIs(t, DecideBooking(resolved, snap), ErrQuotaExceeded)

	snap = openSnapshot()
	snap.AlreadyBooked = true
	assert.ErrorIs(t, DecideBooking(resolved, snap), ErrDuplicateBooking)

	snap = openSnapshot()
	snap.OverlapCount = 1
	assert.ErrorIs(t, DecideBooking(resolved, snap), ErrOverlappingBooking)

	snap = openSnapshot()
	snap.Occupancy = snap.Capacity
	assert.ErrorIs(t, DecideBooking(resolved, snap), ErrSlotFull)
}

// TestDecideBooking_LastSeatRace models N concurrent booking attempts for a
// capacity-1 slot. The mutex stands in for the row lock the store takes on
// the slot: each attempt reads occupancy and inserts under the same lock.
// Exactly one attempt may win.
func TestDecideBooking_LastSeatRace(t *testing.T) {
	resolved := ResolvedPhase{Phase: PhaseOpen, Quota: 5}

	var mu sync.Mutex
	occupancy := 0
	successes := 0
	failures := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			mu.Lock()
			defer mu.Unlock()

			snap := openSnapshot()
			snap.Capacity = 1
			snap.Occupancy = occupancy
			if err := DecideBooking(resolved, snap); err != nil {
				assert.ErrorIs(t, err, ErrSlotFull)
				failures++
				return
			}
			occupancy++
			successes++
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 49, failures)
	assert.Equal(t, 1, occupancy)
}
