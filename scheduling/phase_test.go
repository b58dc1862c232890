package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func dateBasedConfig() PhaseConfig {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return PhaseConfig{
		Mode:              PhaseModeDateBased,
		Phase1Start:       datePtr(day.Add(8 * time.Hour)),
		Phase1End:         datePtr(day.Add(12 * time.Hour)),
		Phase2Start:       datePtr(day.Add(14 * time.Hour)),
		Phase2End:         datePtr(day.Add(20 * time.Hour)),
		Phase1MaxBookings: 3,
		Phase2MaxBookings: 5,
	}
}

func TestResolvePhase_Manual(t *testing.T) {
	now := time.Now()
	cfg := PhaseConfig{Mode: PhaseModeManual, Phase1MaxBookings: 3, Phase2MaxBookings: 5}

	cfg.CurrentPhase = 0
	resolved := ResolvePhase(cfg, now)
	assert.Equal(t, PhaseClosed, resolved.Phase)
	assert.Equal(t, 0, resolved.Quota)
	assert.False(t, resolved.Open())

	cfg.CurrentPhase = 1
	resolved = ResolvePhase(cfg, now)
	assert.Equal(t, PhasePriority, resolved.Phase)
	assert.Equal(t, 3, resolved.Quota)
	assert.True(t, resolved.Open())

	cfg.CurrentPhase = 2
	resolved = ResolvePhase(cfg, now)
	assert.Equal(t, PhaseOpen, resolved.Phase)
	assert.Equal(t, 5, resolved.Quota)
	assert.True(t, resolved.Open())
}

func TestResolvePhase_DateBasedTransitions(t *testing.T) {
	cfg := dateBasedConfig()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		at    time.Duration
		phase Phase
		quota int
	}{
		{7 * time.Hour, PhaseUpcoming, 0},
		{8 * time.Hour, PhasePriority, 3},
		{11*time.Hour + 59*time.Minute, PhasePriority, 3},
		{12 * time.Hour, PhaseBetween, 0},
		{13 * time.Hour, PhaseBetween, 0},
		{14 * time.Hour, PhaseOpen, 5},
		{19*time.Hour + 59*time.Minute, PhaseOpen, 5},
		{20 * time.Hour, PhaseEnded, 0},
		{23 * time.Hour, PhaseEnded, 0},
	}
	for _, tc := range cases {
		resolved := ResolvePhase(cfg, day.Add(tc.at))
		assert.Equal(t, tc.phase, resolved.Phase, "at %s", day.Add(tc.at).Format("15:04"))
		assert.Equal(t, tc.quota, resolved.Quota, "at %s", day.Add(tc.at).Format("15:04"))
	}
}

func TestResolvePhase_DateBasedMonotonic(t *testing.T) {
	cfg := dateBasedConfig()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	order := map[Phase]int{
		PhaseUpcoming: 0,
		PhasePriority: 1,
		PhaseBetween:  2,
		PhaseOpen:     3,
		PhaseEnded:    4,
	}

	last := -1
	for minute := 0; minute < 24*60; minute++ {
		resolved := ResolvePhase(cfg, day.Add(time.Duration(minute)*time.Minute))
		rank, known := order[resolved.Phase]
		assert.True(t, known, "unexpected phase %s", resolved.Phase)
		assert.GreaterOrEqual(t, rank, last, "phase went backwards at minute %d", minute)
		last = rank
	}
	assert.Equal(t, order[PhaseEnded], last)
}

func TestResolvePhase_NotConfigured(t *testing.T) {
	resolved := ResolvePhase(PhaseConfig{Mode: PhaseModeDateBased}, time.Now())
	assert.Equal(t, PhaseNotConfigured, resolved.Phase)
	assert.False(t, resolved.Open())
}

func TestResolvePhase_OnlyPhase2Configured(t *testing.T) {
	cfg := dateBasedConfig()
	cfg.Phase1Start = nil
	cfg.Phase1End = nil
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, PhaseUpcoming, ResolvePhase(cfg, day.Add(9*time.Hour)).Phase)
	assert.Equal(t, PhaseOpen, ResolvePhase(cfg, day.Add(15*time.Hour)).Phase)
	assert.Equal(t, PhaseEnded, ResolvePhase(cfg, day.Add(21*time.Hour)).Phase)
}

func TestResolvePhase_OnlyPhase1Configured(t *testing.T) {
	cfg := dateBasedConfig()
	cfg.Phase2Start = nil
	cfg.Phase2End = nil
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, PhasePriority, ResolvePhase(cfg, day.Add(9*time.Hour)).Phase)
	assert.Equal(t, PhaseEnded, ResolvePhase(cfg, day.Add(13*time.Hour)).Phase)
}

func TestValidatePhaseConfig(t *testing.T) {
	cfg := dateBasedConfig()
	assert.NoError(t, ValidatePhaseConfig(cfg))

	inverted := dateBasedConfig()
	inverted.Phase1Start, inverted.Phase1End = inverted.Phase1End, inverted.Phase1Start
	assert.ErrorIs(t, ValidatePhaseConfig(inverted), ErrInvalidConfiguration)

	overlapping := dateBasedConfig()
	overlapping.Phase2Start = datePtr(overlapping.Phase1End.Add(-time.Hour))
	assert.ErrorIs(t, ValidatePhaseConfig(overlapping), ErrInvalidConfiguration)

	quotas := dateBasedConfig()
	quotas.Phase2MaxBookings = quotas.Phase1MaxBookings - 1
	assert.ErrorIs(t, ValidatePhaseConfig(quotas), ErrInvalidConfiguration)

	badMode := dateBasedConfig()
	badMode.Mode = "automatic"
	assert.ErrorIs(t, ValidatePhaseConfig(badMode), ErrInvalidConfiguration)

	manual := PhaseConfig{Mode: PhaseModeManual, CurrentPhase: 3}
	assert.ErrorIs(t, ValidatePhaseConfig(manual), ErrInvalidConfiguration)
}
