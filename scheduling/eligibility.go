package scheduling

// CheckEligibility decides whether a student with confirmedCount confirmed
// bookings for the event may book another slot under the resolved phase.
// It must be re-run at booking time, inside the booking transaction: both
// the wall clock and the confirmed count can move between the UI pre-flight
// and the actual submit.
func CheckEligibility(resolved ResolvedPhase, confirmedCount int) error {
	if !resolved.Open() {
		return ErrPhaseClosed
	}
	if confirmedCount >= resolved.Quota {
		return ErrQuotaExceeded
	}
	return nil
}
