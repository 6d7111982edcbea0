package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"note-taker/internal/domain"
)

const (
	TimeToken = "{{time}}"
	NoteToken = "{{note}}"
)

// readTemplate is a variable that can be replaced in tests
var readTemplate = os.ReadFile

// ExpandTemplate replaces every {{time}} and {{note}} in tpl in a single
// pass. Replacement text is never rescanned, so a note containing "{{time}}"
// is kept as written.
func ExpandTemplate(tpl string, now time.Time, note string) string {
	return strings.NewReplacer(
		TimeToken, now.Format(domain.TimeLayout),
		NoteToken, note,
	).Replace(tpl)
}

// loadTemplate returns the template at path and whether it is usable. An
// empty path or a missing file is not usable and not an error; a file that
// exists but cannot be read is.
func loadTemplate(path string) (string, bool, error) {
	if path == "" {
		return "", false, nil
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false, nil
	}

	data, err := readTemplate(path)
	if err != nil {
		return "", false, fmt.Errorf("read template: %w", err)
	}
	return string(data), true, nil
}
