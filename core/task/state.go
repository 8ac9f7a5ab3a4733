package task

// State is the position of a task in the runner's state machine.
type State int

const (
	Idle State = iota
	Loading
	Running
	Completed
	Aborted
	Errored
)

var stateNames = []string{
	Idle:      "idle",
	Loading:   "loading",
	Running:   "running",
	Completed: "completed",
	Aborted:   "aborted",
	Errored:   "errored",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal is true for states a task finishes in.
func (s State) Terminal() bool {
	return s == Completed || s == Aborted || s == Errored
}

// Failed is true for terminal states other than Completed.
func (s State) Failed() bool {
	return s == Aborted || s == Errored
}
