package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// ExistingSlot is the snapshot of one persisted slot the planner decides over.
type ExistingSlot struct {
	ID                uuid.UUID
	Start             time.Time
	End               time.Time
	ConfirmedBookings int
}

type RegenerationPlan struct {
	Create       []SlotRange
	DeleteIDs    []uuid.UUID
	PreservedIDs []uuid.UUID
}

// PlanRegeneration decides one company's regeneration: slots holding at least
// one confirmed booking are preserved untouched and their time ranges shadow
// the matching candidates; slots with no confirmed bookings are deleted and
// every remaining candidate range becomes a new slot. Running the resulting
// plan and planning again with no intervening bookings yields the same final
// slot set.
func PlanRegeneration(candidates []SlotRange, existing []ExistingSlot) RegenerationPlan {
	var plan RegenerationPlan
	var preserved []ExistingSlot

	for _, slot := range existing {
		if slot.ConfirmedBookings > 0 {
			plan.PreservedIDs = append(plan.PreservedIDs, slot.ID)
			preserved = append(preserved, slot)
		} else {
			plan.DeleteIDs = append(plan.DeleteIDs, slot.ID)
		}
	}

	for _, candidate := range candidates {
		if overlapsPreserved(candidate, preserved) {
			continue
		}
		plan.Create = append(plan.Create, candidate)
	}
	return plan
}

func overlapsPreserved(candidate SlotRange, preserved []ExistingSlot) bool {
	for _, slot := range preserved {
		// Half-open intervals: [a,b) overlaps [c,d) iff a < d && c < b.
		if candidate.Start.Before(slot.End) && slot.Start.Before(candidate.End) {
			return true
		}
	}
	return false
}
