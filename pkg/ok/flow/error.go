package flow

import "fmt"

// Error reports the first failing step of a run: the context accumulated
// before that step, the step's name, and the raw error the step returned.
type Error struct {
	Step    string
	Context *Context
	Err     error
}

func (e *Error) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("flow: side-effect step failed: %v", e.Err)
	}
	return fmt.Sprintf("flow: step %q failed: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
