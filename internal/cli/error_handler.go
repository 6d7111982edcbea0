package cli

import (
	"fmt"

	"note-taker/internal/errors"
	"note-taker/internal/services"
)

// ErrorHandler turns errors into the console lines shown to the user
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle formats err as "Error <operation>: <message>".
func (eh *ErrorHandler) Handle(operation string, err error) string {
	return fmt.Sprintf("Error %s: %s", operation, errors.GetUserMessage(err))
}

// HandleSimple returns the user message for err without operation context
func (eh *ErrorHandler) HandleSimple(err error) string {
	return errors.GetUserMessage(err)
}

// HandleStep formats the error of a failed step, naming what the step was
// attempting.
func (eh *ErrorHandler) HandleStep(result services.StepResult) string {
	return eh.Handle(operationFor(result), result.Err)
}

func operationFor(result services.StepResult) string {
	switch result.Step {
	case services.StepResolve:
		return "preparing note directory"
	case services.StepWrite:
		if result.Action == services.ActionAppended {
			return "appending to note"
		}
		return "creating note"
	case services.StepOpen:
		return "opening note"
	default:
		return string(result.Step)
	}
}
