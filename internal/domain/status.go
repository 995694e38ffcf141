package domain

// Event status.
const StatusReady = "Ready"

// Participation status.
const (
	ParticipantStatusRegistered = "registered"
	ParticipantStatusCancelled  = "cancelled"
)

// StatusSet is a set of participation statuses.
type StatusSet map[string]struct{}

func NewStatusSet(statuses ...string) StatusSet {
	s := make(StatusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

func (s StatusSet) Contains(status string) bool {
	_, ok := s[status]
	return ok
}

// RegisteredStatuses returns the statuses that count as taking a place at
// the event.
func RegisteredStatuses() StatusSet {
	return NewStatusSet(ParticipantStatusRegistered)
}
