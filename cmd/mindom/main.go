package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const appName = "mindom"

// initializeAppContext prepares logging and tracing after the command line
// has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)
	env.debug = cmd.Bool("debug")
	env.log = newLogger(cmd.Root().ErrWriter, env.debug)
	installTracing(env.log, env.debug)

	env.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)
	if env.log == nil {
		return nil
	}
	env.log.Debug("Program ended", zap.Duration("elapsed", env.uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	// stderr may not support syncing, which is not worth reporting
	if er := env.log.Sync(); er != nil && !isIgnorableSyncError(er) {
		err = multierr.Append(err, fmt.Errorf("unable to flush log: %w", er))
	}
	return
}

// Errors from subcommands are regular errors, logged once here.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.log != nil {
		env.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "parses minimal markup documents and style sheets",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log and trace parsing in detail"},
		},
		Commands: []*cli.Command{
			{
				Name:         "html",
				Usage:        "Parses a markup document and prints its tree",
				OnUsageError: usageErrorHandler,
				Action:       runHTML,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: formatPretty,
						Usage: "output `FORMAT` (one of pretty, dump, dot)"},
				},
				ArgsUsage: "[FILE]",
				CustomHelpTemplate: fmt.Sprintf(`%s
FILE:
    markup document to parse, if absent - a single line is read from STDIN

Format "pretty" prints the document tree followed by all style sheets collected
from <style> elements. Format "dump" prints the raw structure of the document,
format "dot" a GraphViz diagram.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "css",
				Usage:        "Parses a style sheet and prints it",
				OnUsageError: usageErrorHandler,
				Action:       runCSS,
				ArgsUsage:    "[FILE]",
				CustomHelpTemplate: fmt.Sprintf(`%s
FILE:
    style sheet to parse, if absent - a single line is read from STDIN
`, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
