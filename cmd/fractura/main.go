package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/jorge-barreto/fractura/internal/config"
	"github.com/jorge-barreto/fractura/internal/docs"
	"github.com/jorge-barreto/fractura/internal/logging"
	"github.com/jorge-barreto/fractura/internal/ritual"
	"github.com/jorge-barreto/fractura/internal/scaffold"
	"github.com/jorge-barreto/fractura/internal/state"
	"github.com/jorge-barreto/fractura/internal/ux"
	"github.com/jorge-barreto/fractura/internal/workspace"
)

func main() {
	app := &cli.Command{
		Name:        "fractura",
		Usage:       "FRACTURA.Δ02 ritual pipeline",
		Description: "Extracts symbols and mantras from the ritual document and fuses them into a glitched chant. Run without arguments to perform the full ritual.",
		Commands: []*cli.Command{
			symbolsCmd(),
			mantrasCmd(),
			chantCmd(),
			ritualCmd(),
			statusCmd(),
			initCmd(),
			docsCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				// unrecognized verb: usage only, no action
				fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd.Args().First())
				return cli.ShowAppHelp(cmd)
			}
			return runRitual()
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

// setup loads the settings file from the working directory, resolves the
// workspace, and builds the logger.
func setup() (*workspace.Workspace, *zap.Logger, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(filepath.Join(cwd, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	ws, err := workspace.Resolve(cwd, cfg)
	if err != nil {
		return nil, nil, err
	}
	return ws, logging.New(ws.LogPath()), nil
}

// runStage performs one standalone pipeline stage. Stage failures surface as
// log lines only; the process still exits normally.
func runStage(name string, run func(o *ritual.Orchestrator) error) error {
	ws, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := ws.EnsureOutputs(); err != nil {
		return err
	}
	o := ritual.New(ws, log, nil)
	if err := run(o); err != nil {
		log.Error("stage failed", zap.String("stage", name), zap.Error(err))
	}
	return nil
}

func runRitual() error {
	ws, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	o := ritual.New(ws, log, nil)
	_, err = o.Run()
	return err
}

func symbolsCmd() *cli.Command {
	return &cli.Command{
		Name:  "symbols",
		Usage: "Extract the symbolic content into symboles_extraits.txt",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runStage("symbols", func(o *ritual.Orchestrator) error {
				_, err := o.ExtractSymbols()
				return err
			})
		},
	}
}

func mantrasCmd() *cli.Command {
	return &cli.Command{
		Name:  "mantras",
		Usage: "Extract the narrative content into mantras_extraits.txt",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runStage("mantras", func(o *ritual.Orchestrator) error {
				_, err := o.ExtractMantras()
				return err
			})
		},
	}
}

func chantCmd() *cli.Command {
	return &cli.Command{
		Name:  "chant",
		Usage: "Fuse the extracted reports into chant_glitch_fusion.txt",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runStage("chant", func(o *ritual.Orchestrator) error {
				return o.GenerateChant(nil, nil)
			})
		},
	}
}

func ritualCmd() *cli.Command {
	return &cli.Command{
		Name:    "ritual",
		Aliases: []string{"all"},
		Usage:   "Run the complete ritual sequence",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRitual()
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the last recorded ritual run",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ws, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			st, err := state.Load(ws.OutputsDir())
			if err != nil {
				return fmt.Errorf("loading run state: %w", err)
			}
			ux.RenderStatus(st, ws.OutputsDir())
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create an example ritual document and settings file",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-10s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'fractura docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
