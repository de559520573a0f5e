// Package audio manages playback contexts for the boot flow. Platform
// policy keeps freshly created contexts suspended until a user gesture;
// the Unlocker resumes them on the first qualifying input event.
package audio

// State of a playback context as this package observes it. There is no
// transition back from running.
type State int

const (
	StateSuspended State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "suspended"
}

// Context is a playback graph root. Implementations start suspended and
// move to running after Resume.
type Context interface {
	State() State
	Resume() error
}
