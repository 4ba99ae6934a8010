package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/report"
)

const (
	modeFull  = "Full (accurate results)"
	modeQuick = "Quick (for testing)"
)

// promptMode asks for the benchmark mode and, for a full run, the number of
// trials, and applies the answers to cfg.
func promptMode(cfg *config.Config) error {
	mode := modeFull
	if cfg.Quick {
		mode = modeQuick
	}
	err := askOneFunc(&survey.Select{
		Message: "Benchmark mode:",
		Options: []string{modeFull, modeQuick},
		Default: mode,
	}, &mode)
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	if mode == modeQuick {
		cfg.Quick = true
		cfg.Sizes = slices.Clone(config.QuickSizes)
		cfg.Trials = 1
		return nil
	}

	if cfg.Quick {
		cfg.Quick = false
		cfg.Sizes = slices.Clone(config.DefaultSizes)
		cfg.Trials = config.DefaultTrials
	}

	answer := strconv.Itoa(cfg.Trials)
	err = askOneFunc(&survey.Input{
		Message: "Trials per test:",
		Default: answer,
	}, &answer, survey.WithValidator(survey.Required))
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	trials, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return fmt.Errorf("invalid number of trials %q: %w", answer, err)
	}
	cfg.Trials = trials
	return nil
}

// offerResultsTable asks whether to browse the finished run. The run has
// already succeeded, so failures here only warn.
func offerResultsTable(out io.Writer, results []benchmark.Result) {
	browse := false
	if err := askOneFunc(&survey.Confirm{
		Message: "Browse results in an interactive table?",
	}, &browse); err != nil {
		warn(out, "prompt failed", err)
		return
	}
	if !browse {
		return
	}
	if err := startResultsTableFunc(results, report.FormatTime); err != nil {
		warn(out, "results table failed", err)
	}
}
