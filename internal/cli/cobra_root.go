package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command. It has no subcommands: every
// argument belongs to the note.
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command for app
func NewRootCommand(app *App, version string) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "note [-c Category/filename.md] [note text...]",
		Short: "Append a timestamped entry to a Markdown note and open it",
		Long: `note creates or appends to a Markdown note and opens it in your editor.

EXAMPLES:
  note                                    # Open today's note (yyyy-MM-dd.md) in the default category
  note "call the plumber"                 # Append a timestamped entry to today's note
  note -c Work/standup.md "ship the fix"  # Append to Work/standup.md
  note -c Work "ship the fix"             # Append to today's note in Work

CONFIGURATION:
  appsettings.json (or appsettings.yaml/.yml) next to the executable:
    DefaultCategory                       Category used without -c
    NoteDirectory                         Root directory; relative paths use the working directory
    Editor                                Program started on the note
    TemplateNote                          Template file with {{time}} and {{note}} tokens

  Environment variables override the file:
    NOTE_CONFIG                           Explicit configuration file path
    NOTE_DEFAULT_CATEGORY, NOTE_DIRECTORY, NOTE_EDITOR, NOTE_TEMPLATE
    NOTE_DEBUG                            Enable debug logging to stderr`,
		Version: version,
		// -c and free text must reach ParseArgs untouched.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		// "note completion ..." is a note, not a shell completion request.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				switch args[0] {
				case "-h", "--help":
					return cmd.Help()
				case "--version":
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
					return err
				}
			}
			return root.app.Run(args)
		},
	}

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}
