package domain

import (
	"strings"
	"time"
)

const (
	// DateLayout names daily notes: yyyy-MM-dd.
	DateLayout = "2006-01-02"
	// TimeLayout stamps appended entries and the {{time}} token: HH:mm:ss.
	TimeLayout = "15:04:05"
	// MarkdownExt is the extension every note filename carries.
	MarkdownExt = ".md"
)

// NoteRequest is what a single invocation asks for.
// This is a pure domain model without file system concerns.
type NoteRequest struct {
	Category string
	Filename string
	Text     string
	// HasText is false when no note text was given at all, as opposed to an
	// empty string.
	HasText bool
}

// NewNoteRequest creates the default request: today's note in category.
func NewNoteRequest(category string, now time.Time) NoteRequest {
	return NoteRequest{
		Category: category,
		Filename: DefaultFilename(now),
	}
}

// WithText returns a copy of the request carrying text.
func (r NoteRequest) WithText(text string) NoteRequest {
	r.Text = text
	r.HasText = true
	return r
}

// DefaultFilename returns the daily note name for now, e.g. 2024-03-09.md.
func DefaultFilename(now time.Time) string {
	return now.Format(DateLayout) + MarkdownExt
}

// EnsureMarkdownExt appends .md unless name already ends with it in any case.
func EnsureMarkdownExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), MarkdownExt) {
		return name
	}
	return name + MarkdownExt
}
