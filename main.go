package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/llehouerou/hnl/internal/app"
	"github.com/llehouerou/hnl/internal/config"
	"github.com/llehouerou/hnl/internal/icons"
	"github.com/llehouerou/hnl/internal/logging"
	"github.com/llehouerou/hnl/internal/state"
)

func main() {
	cmd := &cli.Command{
		Name:      "hnl",
		Usage:     "Arrange music files into a playlist",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an extra configuration file, loaded last",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to this file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log at debug level",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hnl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile := cfg.LogFile
	if f := cmd.String("log-file"); f != "" {
		logFile = f
	}
	level := cfg.LogLevel
	if cmd.Bool("debug") {
		level = "debug"
		if logFile == "" {
			if logFile, err = logging.DefaultFile(); err != nil {
				return fmt.Errorf("log file: %w", err)
			}
		}
	}
	logger, closer, err := logging.Open(logFile, level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	icons.Init(cfg.Icons)

	watcher, err := config.Watch(cfg.WritePath())
	if err != nil {
		logger.Warn("config reload disabled", "err", err)
		watcher = nil
	}

	// Session state is a convenience; run without it.
	var st state.Interface
	if store, err := state.Open(logger); err != nil {
		logger.Warn("session state will not be saved", "err", err)
	} else {
		st = store
	}

	model, err := app.New(app.Options{
		Config:  cfg,
		Logger:  logger,
		Watcher: watcher,
		State:   st,
		Paths:   cmd.Args().Slice(),
	})
	if err != nil {
		if st != nil {
			st.Close()
		}
		if watcher != nil {
			watcher.Close()
		}
		return err
	}
	defer model.Close()

	logger.Info("starting", "config", cfg.Path, "paths", cmd.Args().Len())
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
