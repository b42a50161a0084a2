// Package app wires configuration, backends and presentation into the
// gfcalc application entry point.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/gfcalc/internal/cli"
	"github.com/agbru/gfcalc/internal/config"
	apperrors "github.com/agbru/gfcalc/internal/errors"
	"github.com/agbru/gfcalc/internal/logging"
	"github.com/agbru/gfcalc/internal/server"
	"github.com/agbru/gfcalc/internal/sweep"
	"github.com/agbru/gfcalc/internal/ui"
	"github.com/rs/zerolog"
)

// Application represents the gfcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   sweep.Factory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom backend factory for the application.
func WithFactory(f sweep.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = sweep.NewDefaultFactory()
	}

	availableBackends := app.Factory.List()

	programName := "gfcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableBackends)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ui.SetTheme(a.Config.Theme)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Eval != "" {
		return a.runEval(out)
	}

	if a.Config.REPL {
		return a.runREPL(out)
	}

	if a.Config.Serve {
		return a.runServe(ctx)
	}

	return a.runSweeps(ctx, out)
}

// runEval evaluates a single expression given on the command line.
func (a *Application) runEval(out io.Writer) int {
	if err := cli.RunEval(a.Config, out); err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive evaluator.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Config, a.Factory)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runServe starts the HTTP evaluation server and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewDefaultLogger()
	srv := server.New(a.Config.Addr, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", err, logging.String("addr", a.Config.Addr))
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
