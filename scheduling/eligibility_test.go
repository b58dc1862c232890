package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEligibility_ClosedPhases(t *testing.T) {
	for _, phase := range []Phase{PhaseClosed, PhaseUpcoming, PhaseBetween, PhaseEnded, PhaseNotConfigured} {
		err := CheckEligibility(ResolvedPhase{Phase: phase}, 0)
		assert.ErrorIs(t, err, ErrPhaseClosed, "phase %s", phase)
	}
}

func TestCheckEligibility_Quota(t *testing.T) {
	priority := ResolvedPhase{Phase: PhasePriority, Quota: 3}

	assert.NoError(t, CheckEligibility(priority, 0))
	assert.NoError(t, CheckEligibility(priority, 2))
	assert.ErrorIs(t, CheckEligibility(priority, 3), ErrQuotaExceeded)
	assert.ErrorIs(t, CheckEligibility(priority, 7), ErrQuotaExceeded)
}

func TestCheckEligibility_QuotaGrowsInPhase2(t *testing.T) {
	// A student at the phase 1 limit gets room again once phase 2 opens
	// with a higher quota.
	assert.ErrorIs(t, CheckEligibility(ResolvedPhase{Phase: PhasePriority, Quota: 3}, 3), ErrQuotaExceeded)
	assert.NoError(t, CheckEligibility(ResolvedPhase{Phase: PhaseOpen, Quota: 5}, 3))
	assert.ErrorIs(t, CheckEligibility(ResolvedPhase{Phase: PhaseOpen, Quota: 5}, 5), ErrQuotaExceeded)
}
