package services

import (
	"note-taker/internal/domain"
)

// Resolver turns a note directory, category and filename into an absolute
// path and makes sure its directory exists.
type Resolver interface {
	Resolve(noteDirectory, category, filename string) StepResult
}

// Writer creates or appends to the note at path.
type Writer interface {
	Write(path, templatePath string, req domain.NoteRequest) StepResult
}

// Launcher starts an editor on the note at path without waiting for it.
type Launcher interface {
	Launch(editor, path string) StepResult
}

// ProcessStarter starts a program and returns as soon as it is running.
type ProcessStarter interface {
	Start(name string, args ...string) error
}
