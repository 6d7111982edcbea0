package cli

import (
	"strings"
	"time"

	"note-taker/internal/domain"
	apperrors "note-taker/internal/errors"
)

// CategoryFlag selects an explicit Category/filename. Any first argument
// starting with it counts, so "-cat" works too.
const CategoryFlag = "-c"

// ParseArgs turns the command line into a note request.
//
//	note                              today's note in the default category
//	note some text                    append "some text" to today's note
//	note -c Category/file.md text     append "text" to Category/file.md
//
// A -c without a path is a usage error.
func ParseArgs(args []string, defaultCategory string, now time.Time) (domain.NoteRequest, error) {
	req := domain.NewNoteRequest(defaultCategory, now)
	if len(args) == 0 {
		return req, nil
	}

	if !strings.HasPrefix(args[0], CategoryFlag) {
		return req.WithText(strings.Join(args, " ")), nil
	}

	if len(args) < 2 {
		return domain.NoteRequest{}, apperrors.NewUsageError(apperrors.UsageHint)
	}

	parts := strings.Split(args[1], "/")
	if len(parts) == 0 {
		// strings.Split never returns an empty slice for a separator; kept
		// so the indexing below stays obviously safe.
		return domain.NoteRequest{}, apperrors.NewUsageError(apperrors.UsageHint)
	}
	req.Category = parts[0]
	if len(parts) > 1 {
		req.Filename = domain.EnsureMarkdownExt(parts[1])
	}

	if len(args) > 2 {
		req = req.WithText(strings.Join(args[2:], " "))
	}
	return req, nil
}
