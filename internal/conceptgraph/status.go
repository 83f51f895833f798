package conceptgraph

// Status is a concept's position in the learning lifecycle.
// The lifecycle is monotonic: locked → opened → mastered, never
// backward and never skipping opened.
type Status string

const (
	StatusLocked   Status = "locked"
	StatusOpened   Status = "opened"
	StatusMastered Status = "mastered"
)

// rank orders statuses along the lifecycle.
func (s Status) rank() int {
	switch s {
	case StatusOpened:
		return 1
	case StatusMastered:
		return 2
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving from s to next is a legal
// single-step forward transition.
func (s Status) CanAdvanceTo(next Status) bool {
	return next.rank() == s.rank()+1
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusLocked, StatusOpened, StatusMastered:
		return true
	}
	return false
}
