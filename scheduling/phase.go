package scheduling

import "time"

type Phase string

const (
	PhaseNotConfigured Phase = "not_configured"
	PhaseUpcoming      Phase = "upcoming"
	PhasePriority      Phase = "priority"
	PhaseBetween       Phase = "between"
	PhaseOpen          Phase = "open"
	PhaseEnded         Phase = "ended"
	PhaseClosed        Phase = "closed"
)

const (
	PhaseModeManual    = "manual"
	PhaseModeDateBased = "date_based"
)

type PhaseConfig struct {
	Mode              string
	CurrentPhase      int
	Phase1Start       *time.Time
	Phase1End         *time.Time
	Phase2Start       *time.Time
	Phase2End         *time.Time
	Phase1MaxBookings int
	Phase2MaxBookings int
}

type ResolvedPhase struct {
	Phase Phase
	Quota int
}

// Open reports whether bookings are accepted in this phase.
func (r ResolvedPhase) Open() bool {
	return r.Phase == PhasePriority || r.Phase == PhaseOpen
}

// ResolvePhase maps the event's phase configuration and the current time to
// the active booking phase and its quota. Phase boundaries are wall-clock
// triggered, so the result must be recomputed per request, never cached.
func ResolvePhase(cfg PhaseConfig, now time.Time) ResolvedPhase {
	if cfg.Mode == PhaseModeManual {
		switch cfg.CurrentPhase {
		case 1:
			return ResolvedPhase{Phase: PhasePriority, Quota: cfg.Phase1MaxBookings}
		case 2:
			return ResolvedPhase{Phase: PhaseOpen, Quota: cfg.Phase2MaxBookings}
		default:
			return ResolvedPhase{Phase: PhaseClosed}
		}
	}

	phase1Set := cfg.Phase1Start != nil && cfg.Phase1End != nil && cfg.Phase1End.After(*cfg.Phase1Start)
	phase2Set := cfg.Phase2Start != nil && cfg.Phase2End != nil && cfg.Phase2End.After(*cfg.Phase2Start)
	if !phase1Set && !phase2Set {
		return ResolvedPhase{Phase: PhaseNotConfigured}
	}

	if phase1Set {
		if now.Before(*cfg.Phase1Start) {
			return ResolvedPhase{Phase: PhaseUpcoming}
		}
		if now.Before(*cfg.Phase1End) {
			return ResolvedPhase{Phase: PhasePriority, Quota: cfg.Phase1MaxBookings}
		}
	}
	if phase2Set {
		if now.Before(*cfg.Phase2Start) {
			if !phase1Set {
				return ResolvedPhase{Phase: PhaseUpcoming}
			}
			return ResolvedPhase{Phase: PhaseBetween}
		}
		if now.Before(*cfg.Phase2End) {
			return ResolvedPhase{Phase: PhaseOpen, Quota: cfg.Phase2MaxBookings}
		}
		return ResolvedPhase{Phase: PhaseEnded}
	}

	// Only phase 1 configured and it has passed.
	return ResolvedPhase{Phase: PhaseEnded}
}

// ValidatePhaseConfig closes the validation gap the platform used to have:
// each window must be internally ordered, quotas must be non-decreasing, and
// phase 1 must not end after phase 2 starts.
func ValidatePhaseConfig(cfg PhaseConfig) error {
	if cfg.Mode != PhaseModeManual && cfg.Mode != PhaseModeDateBased {
		return ErrInvalidConfiguration
	}
	if cfg.CurrentPhase < 0 || cfg.CurrentPhase > 2 {
		return ErrInvalidConfiguration
	}
	if cfg.Phase1MaxBookings < 0 || cfg.Phase2MaxBookings < cfg.Phase1MaxBookings {
		return ErrInvalidConfiguration
	}
	if cfg.Mode == PhaseModeManual {
		return nil
	}

	if cfg.Phase1Start != nil && cfg.Phase1End != nil && !cfg.Phase1End.After(*cfg.Phase1Start) {
		return ErrInvalidConfiguration
	}
	if cfg.Phase2Start != nil && cfg.Phase2End != nil && !cfg.Phase2End.After(*cfg.Phase2Start) {
		return ErrInvalidConfiguration
	}
	if cfg.Phase1End != nil && cfg.Phase2Start != nil && cfg.Phase1End.After(*cfg.Phase2Start) {
		return ErrInvalidConfiguration
	}
	return nil
}
