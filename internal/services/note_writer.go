package services

import (
	"os"
	"time"

	"note-taker/internal/domain"
	apperrors "note-taker/internal/errors"
	"note-taker/internal/logging"
)

// FilePermissions is the mode for newly created notes.
const FilePermissions = 0o644

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// NoteWriter creates notes and appends entries to existing ones.
type NoteWriter struct {
	log *logging.Logger
}

// NewNoteWriter creates a new note writer
func NewNoteWriter(log *logging.Logger) *NoteWriter {
	return &NoteWriter{log: log}
}

// Write creates the note at path when it does not exist and appends a new
// entry when it does. A usable template shapes the content in both cases:
//
//	exists  template  result
//	no      no        empty file
//	no      yes       expanded template
//	yes     no        "\n" + HH:mm:ss + "\n" + text + "\n" appended
//	yes     yes       "\n" + expanded template appended
//
// The returned Action is the one attempted, also when Err is set.
func (w *NoteWriter) Write(path, templatePath string, req domain.NoteRequest) StepResult {
	result := StepResult{Step: StepWrite, Path: path, Action: ActionCreated}
	exists := fileExists(path)
	if exists {
		result.Action = ActionAppended
	}

	tpl, usable, err := loadTemplate(templatePath)
	if err != nil {
		result.Err = apperrors.NewIOError("load template", templatePath, err)
		return result
	}
	w.log.Debugf("writing note %s (exists=%t, template=%t)", path, exists, usable)

	now := timeNow()
	var content string
	switch {
	case usable:
		content = ExpandTemplate(tpl, now, req.Text)
		if exists {
			content = "\n" + content
		}
	case exists:
		content = "\n" + now.Format(domain.TimeLayout) + "\n" + req.Text + "\n"
	}

	if exists {
		err = appendToFile(path, content)
	} else {
		err = os.WriteFile(path, []byte(content), FilePermissions)
	}
	if err != nil {
		op := "create note"
		if exists {
			op = "append note"
		}
		result.Err = apperrors.NewIOError(op, path, err)
	}
	return result
}

func appendToFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePermissions)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fileExists reports whether path is an existing regular file or symlink to
// one. Directories do not count.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
