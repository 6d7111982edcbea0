package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplate(t *testing.T) {
	now := time.Date(2024, time.May, 1, 7, 5, 9, 0, time.Local)

	tests := []struct {
		name     string
		tpl      string
		note     string
		expected string
	}{
		{"both tokens", "## {{time}}\n{{note}}\n", "hello", "## 07:05:09\nhello\n"},
		{"repeated tokens", "{{time}} {{time}} {{note}}{{note}}", "x", "07:05:09 07:05:09 xx"},
		{"no tokens", "plain", "ignored", "plain"},
		{"empty note", "- {{note}}", "", "- "},
		{"note text is not rescanned", "{{note}}", "{{time}}", "{{time}}"},
		{"unknown token kept", "{{date}} {{note}}", "n", "{{date}} n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandTemplate(tt.tpl, now, tt.note))
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tpl.md")
	require.NoError(t, os.WriteFile(path, []byte("{{note}}"), 0o644))

	t.Run("empty path", func(t *testing.T) {
		_, usable, err := loadTemplate("")
		assert.NoError(t, err)
		assert.False(t, usable)
	})

	t.Run("missing file", func(t *testing.T) {
		_, usable, err := loadTemplate(filepath.Join(dir, "missing.md"))
		assert.NoError(t, err)
		assert.False(t, usable)
	})

	t.Run("directory", func(t *testing.T) {
		_, usable, err := loadTemplate(dir)
		assert.NoError(t, err)
		assert.False(t, usable)
	})

	t.Run("existing file", func(t *testing.T) {
		tpl, usable, err := loadTemplate(path)
		require.NoError(t, err)
		assert.True(t, usable)
		assert.Equal(t, "{{note}}", tpl)
	})
}
