package order

// Status is one stage of the order lifecycle. Orders only move forward
// through the sequence; the single branch is ready -> completed for
// in-person pickup, skipping delivery.
type Status string

const (
	StatusPendingDropoff Status = "pending_dropoff"
	StatusCheckedIn      Status = "checked_in"
	StatusSorting        Status = "sorting"
	StatusWashing        Status = "washing"
	StatusDrying         Status = "drying"
	StatusFolding        Status = "folding"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusCompleted      Status = "completed"
)

var stages = []Status{
	StatusPendingDropoff,
	StatusCheckedIn,
	StatusSorting,
	StatusWashing,
	StatusDrying,
	StatusFolding,
	StatusReady,
	StatusOutForDelivery,
	StatusCompleted,
}

func stageIndex(s Status) int {
	for i, st := range stages {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool { return stageIndex(s) >= 0 }

// Next returns the following stage in the forward sequence.
func (s Status) Next() (Status, bool) {
	i := stageIndex(s)
	if i < 0 || i == len(stages)-1 {
		return "", false
	}
	return stages[i+1], true
}

// CanTransition reports whether from -> to is a legal single advancement.
// Regressions and stage-skipping are rejected, with the one exception of
// ready -> completed.
func CanTransition(from, to Status) bool {
	fi, ti := stageIndex(from), stageIndex(to)
	if fi < 0 || ti < 0 {
		return false
	}
	if from == StatusReady && to == StatusCompleted {
		return true
	}
	return ti == fi+1
}

// ActiveStatuses lists every stage between drop-off and completion. An
// order is in exactly one of pending / active / completed at a time.
func ActiveStatuses() []Status {
	out := make([]Status, 0, len(stages)-2)
	for _, s := range stages {
		if s == StatusPendingDropoff || s == StatusCompleted {
			continue
		}
		out = append(out, s)
	}
	return out
}
