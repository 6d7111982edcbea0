package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"note-taker/internal/domain"
	apperrors "note-taker/internal/errors"
)

var argsNow = time.Date(2024, time.November, 5, 9, 30, 0, 0, time.Local)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected domain.NoteRequest
	}{
		{
			name:     "no arguments",
			args:     nil,
			expected: domain.NoteRequest{Category: "Journal", Filename: "2024-11-05.md"},
		},
		{
			name:     "free text",
			args:     []string{"buy", "milk"},
			expected: domain.NoteRequest{Category: "Journal", Filename: "2024-11-05.md", Text: "buy milk", HasText: true},
		},
		{
			name:     "single quoted argument",
			args:     []string{"buy milk and eggs"},
			expected: domain.NoteRequest{Category: "Journal", Filename: "2024-11-05.md", Text: "buy milk and eggs", HasText: true},
		},
		{
			name:     "category and filename",
			args:     []string{"-c", "Foo/bar", "text"},
			expected: domain.NoteRequest{Category: "Foo", Filename: "bar.md", Text: "text", HasText: true},
		},
		{
			name:     "filename already markdown",
			args:     []string{"-c", "Foo/bar.md", "text"},
			expected: domain.NoteRequest{Category: "Foo", Filename: "bar.md", Text: "text", HasText: true},
		},
		{
			name:     "filename with upper case extension",
			args:     []string{"-c", "Foo/bar.MD"},
			expected: domain.NoteRequest{Category: "Foo", Filename: "bar.MD"},
		},
		{
			name:     "category only falls back to date",
			args:     []string{"-c", "Foo", "text"},
			expected: domain.NoteRequest{Category: "Foo", Filename: "2024-11-05.md", Text: "text", HasText: true},
		},
		{
			name:     "category without text",
			args:     []string{"-c", "Foo/bar"},
			expected: domain.NoteRequest{Category: "Foo", Filename: "bar.md"},
		},
		{
			name:     "multi word text after path",
			args:     []string{"-c", "Work/standup", "ship", "the", "fix"},
			expected: domain.NoteRequest{Category: "Work", Filename: "standup.md", Text: "ship the fix", HasText: true},
		},
		{
			name:     "extra path segments are ignored",
			args:     []string{"-c", "a/b/c", "t"},
			expected: domain.NoteRequest{Category: "a", Filename: "b.md", Text: "t", HasText: true},
		},
		{
			name:     "flag prefix match",
			args:     []string{"-category", "Ideas/x"},
			expected: domain.NoteRequest{Category: "Ideas", Filename: "x.md"},
		},
		{
			name:     "other dash argument is text",
			args:     []string{"-x", "y"},
			expected: domain.NoteRequest{Category: "Journal", Filename: "2024-11-05.md", Text: "-x y", HasText: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseArgs(tt.args, "Journal", argsNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestParseArgs_MissingPath(t *testing.T) {
	_, err := ParseArgs([]string{"-c"}, "Journal", argsNow)

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeUsage))
	assert.Equal(t, apperrors.UsageHint, apperrors.GetUserMessage(err))
}

func TestParseArgs_EmptyDefaultCategory(t *testing.T) {
	req, err := ParseArgs(nil, "", argsNow)

	require.NoError(t, err)
	assert.Empty(t, req.Category)
	assert.Equal(t, "2024-11-05.md", req.Filename)
}
