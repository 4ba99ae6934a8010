package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"sortbench/internal/algorithms"
	"sortbench/internal/analysis"
	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/generator"
	"sortbench/internal/metrics"
	"sortbench/internal/notify"
	"sortbench/internal/report"
	"sortbench/internal/store"
	"sortbench/internal/telemetry"
	"sortbench/internal/ui"
)

var exit = os.Exit

// Seams for tests.
var (
	askOneFunc      = survey.AskOne
	newStoreFunc    = store.NewStore
	newNotifierFunc = func(webhookURL string) notify.Notifier { return notify.NewSlackNotifier(webhookURL) }
	nowFunc         = time.Now
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile     string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark classic sorting algorithms",
		Long: `sortbench times Insertion, Selection, Merge, Quick and Heap Sort on random,
sorted, reverse sorted and nearly sorted integer inputs, reports the median of
several trials for each combination, and exports the results as CSV, Markdown
and a plain-text summary.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runBenchmark(cmd, cfg, interactive)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	pf.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	pf.String("log-file", "", "Also write JSON logs to this file")
	pf.Bool("no-color", false, "Disable coloured output")

	f := cmd.Flags()
	f.IntSlice("sizes", config.DefaultSizes, "Input sizes to benchmark")
	f.Int("trials", config.DefaultTrials, "Timed trials per combination (the median is reported)")
	f.Bool("quick", false, "Quick mode: sizes 100, 1000, 5000 with a single trial")
	f.Uint64("seed", 0, "Seed for input generation (0 picks a random seed)")
	f.String("output-dir", ".", "Directory for exported reports")
	f.Bool("json", false, "Also export results as JSON")
	f.Int("metrics-port", 0, "Serve Prometheus metrics on this port while running (0 disables)")
	f.String("store-type", "", "Save results to a SQL store: sqlite or postgres")
	f.String("store-dsn", "", "SQLite file path or Postgres connection string")
	f.BoolVar(&interactive, "interactive", false, "Choose mode and trials interactively")

	cmd.AddCommand(newShowCmd(), newAlgorithmsCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func runBenchmark(cmd *cobra.Command, cfg *config.Config, interactive bool) error {
	ui.ConfigureColor(cfg.NoColor)

	closeLog, err := telemetry.InitLogger(cfg.Verbose, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	if cfg.File != "" {
		telemetry.LogDebug("Using config file", "path", cfg.File)
	}

	out := cmd.OutOrStdout()
	report.PrintBanner(out, "Sorting Algorithm Performance Benchmark")

	if interactive {
		if err := promptMode(cfg); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	recorder := metrics.NewRecorder()
	if cfg.MetricsPort > 0 {
		srv, err := telemetry.StartMetricsServer(fmt.Sprintf(":%d", cfg.MetricsPort), recorder.Handler())
		if err != nil {
			warn(out, "metrics endpoint unavailable", err)
		} else {
			defer srv.Shutdown(context.Background())
		}
	}

	registry := algorithms.Registry()
	report.PrintConfiguration(out, registry, cfg.Sizes, cfg.Trials, cfg.Quick)

	protocol := benchmark.NewProtocol(cfg.Trials, benchmark.SkipPolicy{QuadraticLimit: cfg.Skip.QuadraticLimit})
	observer := benchmark.MultiObserver{report.NewProgress(out), benchmark.LogObserver{}, recorder}
	orch := benchmark.NewOrchestrator(registry, protocol, generator.New(cfg.Seed), benchmark.WithObserver(observer))

	results, err := orch.Run(ctx, cfg.Sizes)
	if err != nil {
		reason := "failed"
		if errors.Is(err, context.Canceled) {
			reason = "interrupted"
		}
		fmt.Fprintln(out, ui.ErrorStyle.Render(fmt.Sprintf("\n✗ Benchmark %s after %d results.", reason, len(results))))
		return fmt.Errorf("benchmark aborted: %w", err)
	}

	report.PrintResultsTable(out, results)
	rep := analysis.Analyze(results)
	report.PrintAnalysis(out, rep)

	exportResults(out, cfg, results)
	saveResults(ctx, out, cfg, results)
	notifyRun(ctx, out, cfg, results)

	report.PrintExportHeader(out, "RECOMMENDATIONS")
	report.PrintRecommendations(out, rep)
	fmt.Fprintln(out)
	report.PrintBanner(out, "BENCHMARK COMPLETE!")

	if interactive {
		offerResultsTable(out, results)
	}
	return nil
}

func exportResults(out io.Writer, cfg *config.Config, results []benchmark.Result) {
	report.PrintExportHeader(out, "EXPORTING RESULTS")

	exporter := &report.Exporter{Dir: cfg.OutputDir, JSON: cfg.Export.JSON, Now: nowFunc}
	artifacts, err := exporter.WriteAll(results)
	for _, a := range artifacts {
		telemetry.LogInfo("Results exported", "path", a.Path)
		fmt.Fprintln(out, ui.SuccessStyle.Render("✓ Results exported to "+a.Path))
	}
	if err == nil {
		return
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		warn(out, "export failed", e)
	}
}

func saveResults(ctx context.Context, out io.Writer, cfg *config.Config, results []benchmark.Result) {
	if cfg.Store.Type == "" {
		return
	}

	st, err := newStoreFunc(store.StoreConfig{Type: cfg.Store.Type, DSN: cfg.Store.DSN})
	if err != nil {
		warn(out, "could not open result store", err)
		return
	}
	defer st.Close()

	if err := st.ReplaceResults(ctx, results); err != nil {
		warn(out, "could not save results", err)
		return
	}
	telemetry.LogInfo("Results saved", "store", cfg.Store.Type, "count", len(results))
	fmt.Fprintln(out, ui.SuccessStyle.Render(fmt.Sprintf("✓ %d results saved to %s store", len(results), cfg.Store.Type)))
}

func notifyRun(ctx context.Context, out io.Writer, cfg *config.Config, results []benchmark.Result) {
	if !cfg.Notifications.Slack.Enabled {
		return
	}

	n := newNotifierFunc(cfg.Notifications.Slack.WebhookURL)
	if err := n.Notify(ctx, notify.RunMessage(results)); err != nil {
		warn(out, "slack notification failed", err)
		return
	}
	fmt.Fprintln(out, ui.SuccessStyle.Render("✓ Slack notification sent"))
}

func warn(out io.Writer, msg string, err error) {
	telemetry.LogWarn(msg, "error", err)
	fmt.Fprintln(out, ui.WarningStyle.Render(fmt.Sprintf("⚠ Warning: %s: %v", msg, err)))
}
