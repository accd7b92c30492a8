package domain

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// statusTransitions is the single authority on legal status changes.
// accepted and rejected are terminal.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:  {StatusReviewed, StatusRejected},
	StatusReviewed: {StatusAccepted, StatusRejected},
	StatusAccepted: {},
	StatusRejected: {},
}

// ParseApplicationStatus validates a raw status token.
func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	s := ApplicationStatus(raw)
	if _, ok := statusTransitions[s]; !ok {
		return "", ValidationError{Field: "status", Msg: "unknown status " + raw}
	}
	return s, nil
}

// CanTransition reports whether moving from s to target is legal.
func (s ApplicationStatus) CanTransition(target ApplicationStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NextStatuses lists the states reachable from s.
func (s ApplicationStatus) NextStatuses() []ApplicationStatus {
	next := statusTransitions[s]
	out := make([]ApplicationStatus, len(next))
	copy(out, next)
	return out
}

// Terminal reports whether no further transitions are possible.
func (s ApplicationStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

// CheckTransition returns InvalidTransitionError when the change is illegal.
func CheckTransition(from, to ApplicationStatus) error {
	if !from.CanTransition(to) {
		return InvalidTransitionError{From: from, To: to}
	}
	return nil
}
