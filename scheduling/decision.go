package scheduling

import "time"

// BookingSnapshot is the state a booking decision is made against. The
// caller must assemble it inside the same transaction that inserts the
// booking, with the slot row locked, so the occupancy count cannot move
// under the decision.
type BookingSnapshot struct {
	SlotActive     bool
	SessionActive  bool
	SlotStart      time.Time
	SlotEnd        time.Time
	Capacity       int
	Occupancy      int
	ConfirmedCount int
	AlreadyBooked  bool
	OverlapCount   int
}

// DecideBooking applies the full booking rule set: phase eligibility, quota,
// duplicate, cross-slot temporal overlap, then capacity. Order matters for
// user messaging: a student at quota is told so even when the slot is also
// full.
func DecideBooking(resolved ResolvedPhase, snap BookingSnapshot) error {
	if !snap.SlotActive {
		return ErrSlotInactive
	}
	if !snap.SessionActive {
		return ErrSessionInactive
	}
	if err := CheckEligibility(resolved, snap.ConfirmedCount); err != nil {
		return err
	}
	if snap.AlreadyBooked {
		return ErrDuplicateBooking
	}
	if snap.OverlapCount > 0 {
		return ErrOverlappingBooking
	}
	if snap.Occupancy >= snap.Capacity {
		return ErrSlotFull
	}
	return nil
}
