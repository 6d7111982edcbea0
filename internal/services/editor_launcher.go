package services

import (
	"os"
	"os/exec"

	apperrors "note-taker/internal/errors"
	"note-taker/internal/logging"
)

// EditorLauncher opens notes in an external editor.
type EditorLauncher struct {
	starter ProcessStarter
	log     *logging.Logger
}

// NewEditorLauncher creates a launcher that starts real processes.
func NewEditorLauncher(log *logging.Logger) *EditorLauncher {
	return NewEditorLauncherWithStarter(ExecStarter{}, log)
}

// NewEditorLauncherWithStarter creates a launcher using starter.
func NewEditorLauncherWithStarter(starter ProcessStarter, log *logging.Logger) *EditorLauncher {
	return &EditorLauncher{starter: starter, log: log}
}

// Launch starts editor with path as its only argument and returns without
// waiting. The editor is not looked up beforehand; a missing or empty editor
// surfaces as the start error.
func (l *EditorLauncher) Launch(editor, path string) StepResult {
	result := StepResult{Step: StepOpen, Action: ActionOpened, Path: path}

	l.log.Debugf("starting editor %q on %s", editor, path)
	if err := l.starter.Start(editor, path); err != nil {
		result.Err = apperrors.NewSpawnError(editor, err)
	}
	return result
}

// ExecStarter starts programs with os/exec, sharing the terminal with the
// child and releasing it immediately.
type ExecStarter struct{}

// Start implements ProcessStarter.
func (ExecStarter) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
