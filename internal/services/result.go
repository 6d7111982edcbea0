package services

// Step names a stage of the note flow.
type Step string

const (
	StepResolve Step = "resolve"
	StepWrite   Step = "write"
	StepOpen    Step = "open"
)

// Action is what a step did, or tried to do when Err is set.
type Action int

const (
	ActionResolved Action = iota + 1
	ActionCreated
	ActionAppended
	ActionOpened
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionResolved:
		return "resolved"
	case ActionCreated:
		return "created"
	case ActionAppended:
		return "appended"
	case ActionOpened:
		return "opened"
	default:
		return "none"
	}
}

// StepResult is the outcome of one step. A failed step carries Err; callers
// report it and carry on with the next step.
type StepResult struct {
	Step   Step
	Action Action
	Path   string
	Err    error
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool {
	return r.Err == nil
}
