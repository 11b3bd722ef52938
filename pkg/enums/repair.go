package enums

import "fmt"

// RepairStatus is a repair ticket's position in the workshop workflow.
type RepairStatus string

const (
	RepairStatusReceived     RepairStatus = "RECEIVED"
	RepairStatusChecking     RepairStatus = "CHECKING"
	RepairStatusQuotation    RepairStatus = "QUOTATION"
	RepairStatusWaitingParts RepairStatus = "WAITING_PARTS"
	RepairStatusRepairing    RepairStatus = "REPAIRING"
	RepairStatusDone         RepairStatus = "DONE"
	RepairStatusDelivered    RepairStatus = "DELIVERED"
	RepairStatusCancelled    RepairStatus = "CANCELLED"
)

var validRepairStatuses = []RepairStatus{
	RepairStatusReceived,
	RepairStatusChecking,
	RepairStatusQuotation,
	RepairStatusWaitingParts,
	RepairStatusRepairing,
	RepairStatusDone,
	RepairStatusDelivered,
	RepairStatusCancelled,
}

// repairTransitions is the strict-mode graph: forward through the workshop,
// CANCELLED reachable from every non-terminal state.
var repairTransitions = map[RepairStatus][]RepairStatus{
	RepairStatusReceived:     {RepairStatusChecking, RepairStatusCancelled},
	RepairStatusChecking:     {RepairStatusQuotation, RepairStatusCancelled},
	RepairStatusQuotation:    {RepairStatusWaitingParts, RepairStatusRepairing, RepairStatusCancelled},
	RepairStatusWaitingParts: {RepairStatusRepairing, RepairStatusCancelled},
	RepairStatusRepairing:    {RepairStatusDone, RepairStatusCancelled},
	RepairStatusDone:         {RepairStatusDelivered, RepairStatusCancelled},
	RepairStatusDelivered:    {},
	RepairStatusCancelled:    {},
}

// String implements fmt.Stringer.
func (s RepairStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known RepairStatus.
func (s RepairStatus) IsValid() bool {
	for _, candidate := range validRepairStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave this status.
func (s RepairStatus) IsTerminal() bool {
	return s == RepairStatusDelivered || s == RepairStatusCancelled
}

// CanTransitionTo reports whether strict mode allows moving to next.
func (s RepairStatus) CanTransitionTo(next RepairStatus) bool {
	for _, candidate := range repairTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseRepairStatus converts raw input into a RepairStatus.
func ParseRepairStatus(value string) (RepairStatus, error) {
	for _, candidate := range validRepairStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid repair status %q", value)
}
