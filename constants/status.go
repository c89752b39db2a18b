package constants

// OpStatus is the canonical status for rows in operations.
type OpStatus string

// Stable values (store these exact strings in DB).
const (
	OpStatusPending   OpStatus = "PENDING"   // created, not yet dispatched
	OpStatusRunning   OpStatus = "RUNNING"   // dispatched; async jobs stay here between polls
	OpStatusCompleted OpStatus = "COMPLETED" // terminal success, result present
	OpStatusFailed    OpStatus = "FAILED"    // terminal failure, failure present
)

// IsTerminal reports whether no further transition may leave s.
func (s OpStatus) IsTerminal() bool {
	return s == OpStatusCompleted || s == OpStatusFailed
}

// ValidStatus reports whether s is one of the stable status values.
func ValidStatus(s OpStatus) bool {
	switch s {
	case OpStatusPending, OpStatusRunning, OpStatusCompleted, OpStatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether the state machine allows from -> to.
// pending -> running|failed, running -> completed|failed; terminal states
// accept nothing.
func CanTransition(from, to OpStatus) bool {
	switch from {
	case OpStatusPending:
		return to == OpStatusRunning || to == OpStatusFailed
	case OpStatusRunning:
		return to == OpStatusCompleted || to == OpStatusFailed
	}
	return false
}
