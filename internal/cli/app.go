package cli

import (
	"io"
	"time"

	"note-taker/internal/config"
	"note-taker/internal/errors"
	"note-taker/internal/logging"
	"note-taker/internal/services"
)

// Exit codes
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	cfg          config.Config
	resolver     services.Resolver
	writer       services.Writer
	launcher     services.Launcher
	printer      *Printer
	errorHandler *ErrorHandler
	log          *logging.Logger
}

// NewApp creates the application with the default file system services.
func NewApp(cfg config.Config, out io.Writer, log *logging.Logger) *App {
	return NewAppWithServices(
		cfg,
		services.NewPathResolver(log),
		services.NewNoteWriter(log),
		services.NewEditorLauncher(log),
		out,
		log,
	)
}

// NewAppWithServices creates a new CLI application instance with dependency injection
func NewAppWithServices(
	cfg config.Config,
	resolver services.Resolver,
	writer services.Writer,
	launcher services.Launcher,
	out io.Writer,
	log *logging.Logger,
) *App {
	return &App{
		cfg:          cfg,
		resolver:     resolver,
		writer:       writer,
		launcher:     launcher,
		printer:      NewPrinter(out),
		errorHandler: NewErrorHandler(),
		log:          log,
	}
}

// Run executes the CLI application with the given arguments. Only a usage
// error is returned; step failures are printed and the flow moves on, so the
// editor is opened even when the note could not be written.
func (a *App) Run(args []string) error {
	req, err := ParseArgs(args, a.cfg.DefaultCategory, timeNow())
	if err != nil {
		a.printer.Println(a.errorHandler.HandleSimple(err))
		return err
	}
	a.log.Debug().
		Str("category", req.Category).
		Str("filename", req.Filename).
		Bool("has_text", req.HasText).
		Msg("parsed arguments")

	resolved := a.resolver.Resolve(a.cfg.NoteDirectory, req.Category, req.Filename)
	a.report(resolved)

	a.report(a.writer.Write(resolved.Path, a.cfg.TemplateNote, req))

	a.printer.Statusf("Opening note: %s", resolved.Path)
	a.report(a.launcher.Launch(a.cfg.Editor, resolved.Path))

	return nil
}

// report prints the outcome of a step. Failures are shown and never stop
// the flow.
func (a *App) report(result services.StepResult) {
	if !result.OK() {
		a.logFailure(result)
		a.printer.Errorf("%s", a.errorHandler.HandleStep(result))
		return
	}

	switch result.Action {
	case services.ActionCreated:
		a.printer.Successf("Created new note: %s", result.Path)
	case services.ActionAppended:
		a.printer.Successf("Appended text to note: %s", result.Path)
	}
}

// logFailure writes the error code and context of a failed step to the
// debug log.
func (a *App) logFailure(result services.StepResult) {
	event := a.log.Debug().
		Err(result.Err).
		Str("step", string(result.Step)).
		Stringer("action", result.Action).
		Str("code", errors.GetErrorCode(result.Err))
	if appErr, ok := errors.AsAppError(result.Err); ok {
		for _, key := range errors.ContextKeys {
			if value, ok := appErr.GetContext(key); ok {
				event = event.Str(key, value)
			}
		}
	}
	event.Msg("step failed")
}

// ExitCode maps an error returned by Run or the root command to a process
// exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsErrorType(err, errors.ErrorTypeUsage):
		return ExitUsage
	default:
		return ExitFailed
	}
}
