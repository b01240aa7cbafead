package domain

// Request lifecycle statuses, shared by equipment bookings and job
// applications. PENDING is the only non-terminal state.
const (
	RequestPending  = "PENDING"
	RequestAccepted = "ACCEPTED"
	RequestRejected = "REJECTED"
)

// IsDecision reports whether s is a valid decide outcome.
func IsDecision(s string) bool {
	return s == RequestAccepted || s == RequestRejected
}
