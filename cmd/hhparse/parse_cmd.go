package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/hhtools/hhparse/cmd/hhparse/shared"
	"github.com/hhtools/hhparse/internal/batch"
	"github.com/hhtools/hhparse/internal/export"
	"github.com/hhtools/hhparse/internal/handhistory"
	"github.com/hhtools/hhparse/internal/source"
)

// ParseCmd converts a hand history export into hand and action tables.
type ParseCmd struct {
	In         string `name:"in" required:"" type:"path" help:"Hand history input: directory, .txt/.log file, or .zip bundle"`
	Out        string `help:"Hands table output path (default hands.csv)" type:"path"`
	ActionsOut string `help:"Actions table output path (omit to skip the actions table)" type:"path"`
	Format     string `help:"Table format" enum:",csv,parquet" default:""`
	Report     string `help:"Write a JSON run report to this path" type:"path"`
	PhhOut     string `name:"phh-out" help:"Also export parsed hands as a PHH session file" type:"path"`

	GameFilter string `help:"Comma-separated games to keep (holdem,omaha,...)"`
	MinPlayers int    `help:"Keep hands with at least this many players"`
	MaxPlayers int    `help:"Keep hands with at most this many players"`

	MaxWorkers int    `help:"Parallel hand parsers (0 = CPU count)"`
	Config     string `help:"HCL config file with filter and output defaults" type:"path"`
	Debug      bool   `help:"Enable debug logging"`
	JSONLog    bool   `name:"json-log" help:"Structured JSON logs instead of console output"`
}

func (cmd *ParseCmd) Run() error {
	logger := shared.SetupLogger(cmd.Debug, cmd.JSONLog)
	ctx := shared.SetupSignalHandler(logger)

	cfg, err := LoadFileConfig(cmd.Config)
	if err != nil {
		return err
	}
	opts := cmd.resolve(cfg)

	start := time.Now()
	files, err := source.Read(cmd.In, logger)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if len(files) == 0 {
		return errors.New("no hand history files found in input")
	}

	runner := batch.NewRunner(opts.workers, opts.filter, logger)
	result, err := runner.Run(ctx, files)
	if err != nil {
		return err
	}

	if len(result.Hands) == 0 {
		logger.Warn().Int("failed", len(result.Failures)).Msg("no hands parsed, nothing to write")
		return nil
	}

	if err := cmd.writeTables(opts, result); err != nil {
		return err
	}
	if opts.phhOut != "" {
		if err := export.WritePHH(opts.phhOut, result.Hands); err != nil {
			return fmt.Errorf("writing PHH export: %w", err)
		}
		logger.Info().Str("path", opts.phhOut).Msg("wrote PHH session")
	}
	if opts.report != "" {
		report := batch.BuildReport(result, quartz.NewReal())
		data, err := report.MarshalIndent()
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		if err := export.WriteFile(opts.report, data); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info().Str("path", opts.report).Msg("wrote report")
	}

	printSummary(result, opts, time.Since(start))
	return nil
}

// runOptions is the merged flag/config-file view of one run.
type runOptions struct {
	workers    int
	filter     handhistory.Filter
	format     string
	handsOut   string
	actionsOut string
	report     string
	phhOut     string
}

// resolve merges CLI flags over config-file values. Flags win
// whenever they were given.
func (cmd *ParseCmd) resolve(cfg *FileConfig) runOptions {
	opts := runOptions{
		workers:    cmd.MaxWorkers,
		format:     cmd.Format,
		handsOut:   cmd.Out,
		actionsOut: cmd.ActionsOut,
		report:     cmd.Report,
		phhOut:     cmd.PhhOut,
	}

	if cmd.GameFilter != "" {
		for _, g := range strings.Split(cmd.GameFilter, ",") {
			if g = strings.TrimSpace(g); g != "" {
				opts.filter.Games = append(opts.filter.Games, g)
			}
		}
	}
	if cmd.MinPlayers > 0 {
		opts.filter.MinPlayers = &cmd.MinPlayers
	}
	if cmd.MaxPlayers > 0 {
		opts.filter.MaxPlayers = &cmd.MaxPlayers
	}

	if cfg.Filter != nil {
		if len(opts.filter.Games) == 0 {
			opts.filter.Games = cfg.Filter.Games
		}
		if opts.filter.MinPlayers == nil {
			opts.filter.MinPlayers = cfg.Filter.MinPlayers
		}
		if opts.filter.MaxPlayers == nil {
			opts.filter.MaxPlayers = cfg.Filter.MaxPlayers
		}
	}
	if cfg.Output != nil {
		if opts.format == "" {
			opts.format = cfg.Output.Format
		}
		if opts.handsOut == "" {
			opts.handsOut = cfg.Output.Hands
		}
		if opts.actionsOut == "" {
			opts.actionsOut = cfg.Output.Actions
		}
		if opts.report == "" {
			opts.report = cfg.Output.Report
		}
		if opts.phhOut == "" {
			opts.phhOut = cfg.Output.PHH
		}
	}
	if opts.workers == 0 {
		opts.workers = cfg.Workers
	}
	if opts.format == "" {
		opts.format = "csv"
	}
	if opts.handsOut == "" {
		opts.handsOut = "hands." + opts.format
	}
	return opts
}

func (cmd *ParseCmd) writeTables(opts runOptions, result *batch.Result) error {
	switch opts.format {
	case "parquet":
		if err := export.WriteHandsParquet(opts.handsOut, result.Hands); err != nil {
			return fmt.Errorf("writing hands table: %w", err)
		}
		if opts.actionsOut != "" {
			if err := export.WriteActionsParquet(opts.actionsOut, result.Hands); err != nil {
				return fmt.Errorf("writing actions table: %w", err)
			}
		}
	default:
		if err := export.WriteHandsCSV(opts.handsOut, result.Hands); err != nil {
			return fmt.Errorf("writing hands table: %w", err)
		}
		if opts.actionsOut != "" {
			if err := export.WriteActionsCSV(opts.actionsOut, result.Hands); err != nil {
				return fmt.Errorf("writing actions table: %w", err)
			}
		}
	}
	return nil
}
