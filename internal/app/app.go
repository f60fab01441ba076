// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"rnapipe/internal/config"
	"rnapipe/internal/env"
	"rnapipe/internal/options"
	"rnapipe/internal/pipeline"
	"rnapipe/internal/version"
)

// RunContext parses argv, assembles the final configuration, and
// launches the pipeline stages. It returns the process exit code:
// 0 success/help/version, 2 configuration failure, 1 stage failure,
// 130 cancellation.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	builder := options.NewBuilder()

	app := &cli.App{
		Name:            "rnapipe",
		Usage:           "a pipeline tool for analyzing PacBio-sequenced rRNA amplicons",
		ArgsUsage:       "FILE",
		Version:         version.Version,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: append(builder.Flags(), &cli.StringFlag{
			Name:  "settings",
			Usage: "TOML file of site-level default overrides",
		}),
		// Exit codes are computed below, not inside the library.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return run(c, builder, stdout, stderr)
		},
	}

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	err := app.RunContext(parent, append([]string{app.Name}, argv...))
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	// Errors from the Action carry their exit code; flag-parse errors
	// have already been printed by the library.
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(stderr, "error:", msg)
		}
		return coder.ExitCode()
	}
	return 2
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(c *cli.Context, builder *options.Builder, stdout, stderr io.Writer) error {
	initLogging(c.Bool(config.OptDebug), stderr)

	if c.NArg() != 1 {
		return cli.Exit("exactly one input FILE is required", 2)
	}

	settings, err := loadSettings(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	raw, err := builder.Raw(c, settings)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	cfg, warns, err := config.Assemble(raw, env.New())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	for _, w := range warns {
		log.Warn(w)
	}

	runner := pipeline.ExecRunner{Stdout: stdout, Stderr: stderr}
	if err := pipeline.Run(c.Context, cfg.OutputDir, pipeline.Plan(cfg), runner); err != nil {
		if errors.Is(err, context.Canceled) {
			return cli.Exit("interrupted", 130)
		}
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// loadSettings resolves the optional settings file: the --settings flag
// wins, then RNAPIPE_SETTINGS. A file named only by the environment may
// be absent without error.
func loadSettings(c *cli.Context) (config.Settings, error) {
	if c.IsSet("settings") {
		return config.LoadSettings(c.String("settings"), true)
	}
	if path := env.Setting(config.SettingsEnvVar); path != "" {
		return config.LoadSettings(path, false)
	}
	return config.Settings{}, nil
}

func initLogging(debug bool, stderr io.Writer) {
	log.SetOutput(stderr)
	log.SetPrefix("rnapipe: ")
	if debug {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelInfo)
	}
}
