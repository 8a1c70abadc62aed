// Command mediasweep removes the metadata, artwork, and subtitle files a
// media library accumulates after the primary media files themselves have
// been deleted.
//
// Usage:
//
//	mediasweep <tv|movies|music> --path <directory> [--preview]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/display"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/logging"
	"github.com/backmassage/mediasweep/internal/pipeline"
	"github.com/backmassage/mediasweep/internal/runlog"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// cli.Exit errors already carried their message; anything else is
		// a flag-parsing problem urfave printed alongside usage.
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "mediasweep",
		Usage:   "sweep orphaned metadata and undersized folders from a media library",
		Version: version,
		Commands: []*cli.Command{
			modeCommand(config.ModeTV, "sweep orphaned extras from a TV library"),
			modeCommand(config.ModeMovies, "sweep undersized movie folders"),
			modeCommand(config.ModeMusic, "sweep trackless album folders"),
		},
		// An unknown or missing mode is a usage question, not a failure.
		CommandNotFound: func(ctx *cli.Context, cmd string) {
			fmt.Fprintf(ctx.App.Writer, "unknown mode %q\n\n", cmd)
			cli.ShowAppHelp(ctx)
		},
		Action: func(ctx *cli.Context) error {
			return cli.ShowAppHelp(ctx)
		},
	}
}

func modeCommand(mode config.Mode, usage string) *cli.Command {
	return &cli.Command{
		Name:  string(mode),
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "library directory to scan",
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "list what would be deleted without touching anything",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug output",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "color output: auto, always or never",
				Value: string(config.ColorAuto),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "shorthand for --color never",
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, mode)
		},
	}
}

func run(ctx *cli.Context, mode config.Mode) error {
	cfg := config.DefaultConfig()
	if err := config.LoadOverrides(&cfg); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	cfg.Mode = mode
	cfg.RootPath = ctx.String("path")
	cfg.Preview = ctx.Bool("preview")
	cfg.Verbose = ctx.Bool("verbose")
	cfg.ColorMode = config.ColorMode(ctx.String("color"))
	if ctx.Bool("no-color") {
		cfg.ColorMode = config.ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	log := logging.New(&cfg)
	display.PrintBanner()

	runner := pipeline.New(&cfg, log, fsio.NewOS(), runlog.New(afero.NewOsFs()))
	out := runner.Run()
	if !out.Failed() {
		return nil
	}
	// Criteria-miss failures (nothing to clean) are expected outcomes and
	// exit cleanly; structural failures and faults surface with exit 1.
	if msg := out.FailureMessage(); msg != "" {
		return cli.Exit("Error: "+msg, 1)
	}
	return nil
}
