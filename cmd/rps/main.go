package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/rocketscienceinc/rps-backend/internal/pkg"
	"github.com/rocketscienceinc/rps-backend/internal/presentation"
	"github.com/rocketscienceinc/rps-backend/internal/rps"
	"github.com/rocketscienceinc/rps-backend/internal/tui"
)

type CLI struct {
	TargetScore int    `short:"t" help:"Round wins needed to take the match (3, 5, 7 or 10)." default:"3"`
	Seed        int64  `help:"Seed for the computer's moves, 0 picks a random one." default:"0"`
	LogFile     string `help:"File that receives debug logs." default:"rps.log" type:"path"`
}

func (c *CLI) Validate() error {
	if !slices.Contains(presentation.TargetScoreOptions, c.TargetScore) {
		return fmt.Errorf("target score must be one of %v", presentation.TargetScoreOptions)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rps"),
		kong.Description("Play Rock Paper Scissors against the computer in your terminal."),
	)

	if err := run(&cli); err != nil {
		log.Fatal("Game failed", "error", err)
	}

	ctx.Exit(0)
}

func run(cli *CLI) error {
	logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
		Prefix:          "rps",
	})

	random, err := pkg.NewRand(cli.Seed)
	if err != nil {
		return err
	}

	model, err := tui.New(rps.NewEngine(random), cli.TargetScore, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting match", "target_score", cli.TargetScore, "seed", cli.Seed)

	if _, err = tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}

	return nil
}
