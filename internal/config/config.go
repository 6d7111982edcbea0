package config

// Config holds the note settings. It is loaded once at startup and passed by
// value to the components that need it.
type Config struct {
	// DefaultCategory is the sub-directory used when no -c path is given.
	DefaultCategory string `json:"DefaultCategory" yaml:"DefaultCategory" env:"NOTE_DEFAULT_CATEGORY"`

	// NoteDirectory is the root of all categories. Relative paths are resolved
	// against the working directory at the time of the call.
	NoteDirectory string `json:"NoteDirectory" yaml:"NoteDirectory" env:"NOTE_DIRECTORY"`

	// Editor is the program launched on the resolved note.
	Editor string `json:"Editor" yaml:"Editor" env:"NOTE_EDITOR"`

	// TemplateNote is the path of an optional template containing {{time}}
	// and {{note}} tokens.
	TemplateNote string `json:"TemplateNote" yaml:"TemplateNote" env:"NOTE_TEMPLATE"`
}

// HasTemplate reports whether a template path is configured. It does not
// check that the file exists.
func (c Config) HasTemplate() bool {
	return c.TemplateNote != ""
}
