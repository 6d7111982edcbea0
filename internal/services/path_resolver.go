package services

import (
	"os"
	"path/filepath"

	apperrors "note-taker/internal/errors"
	"note-taker/internal/logging"
)

// DirPermissions is the mode for category directories created on demand.
const DirPermissions = 0o755

// PathResolver builds absolute note paths.
type PathResolver struct {
	log   *logging.Logger
	getwd func() (string, error)
}

// NewPathResolver creates a resolver that resolves relative note
// directories against the process working directory.
func NewPathResolver(log *logging.Logger) *PathResolver {
	return &PathResolver{
		log:   log,
		getwd: os.Getwd,
	}
}

// Resolve returns noteDirectory/category/filename as an absolute path and
// creates the category directory, including parents. Path segments are not
// checked for traversal; ".." is honoured as filepath.Join cleans it.
func (r *PathResolver) Resolve(noteDirectory, category, filename string) StepResult {
	result := StepResult{Step: StepResolve, Action: ActionResolved}

	if !filepath.IsAbs(noteDirectory) {
		cwd, err := r.getwd()
		if err != nil {
			result.Path = filepath.Join(noteDirectory, category, filename)
			result.Err = apperrors.NewIOError("get working directory", noteDirectory, err)
			return result
		}
		noteDirectory = filepath.Join(cwd, noteDirectory)
	}

	categoryDir := filepath.Join(noteDirectory, category)
	result.Path = filepath.Join(categoryDir, filename)
	r.log.Debugf("resolved note path %s", result.Path)

	if err := os.MkdirAll(categoryDir, DirPermissions); err != nil {
		result.Err = apperrors.NewIOError("create directory", categoryDir, err)
	}
	return result
}
