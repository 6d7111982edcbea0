package main

import (
	"os"

	"github.com/fatih/color"

	"note-taker/internal/cli"
	"note-taker/internal/config"
	apperrors "note-taker/internal/errors"
	"note-taker/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	log := logging.New(os.Stderr)

	cfg, err := config.NewLoader().Load()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", apperrors.GetUserMessage(err))
		os.Exit(cli.ExitFailed)
	}
	log.Debug().
		Str("note_directory", cfg.NoteDirectory).
		Str("default_category", cfg.DefaultCategory).
		Str("editor", cfg.Editor).
		Str("template", cfg.TemplateNote).
		Bool("has_template", cfg.HasTemplate()).
		Msg("configuration loaded")

	app := cli.NewApp(cfg, os.Stdout, log)
	root := cli.NewRootCommand(app, version)

	if err := root.Execute(); err != nil {
		// Usage errors have already been printed by the app.
		if !apperrors.IsErrorType(err, apperrors.ErrorTypeUsage) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
