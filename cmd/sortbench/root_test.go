package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/notify"
	"sortbench/internal/report"
	"sortbench/internal/store"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// inTempDir isolates the test from config.yaml and .env files.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestRunEndToEnd(t *testing.T) {
	dir := inTempDir(t)
	outDir := filepath.Join(dir, "out")

	out, err := executeCommand(t, "--sizes", "10,100", "--trials", "1", "--seed", "42", "--output-dir", outDir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Sorting Algorithm Performance Benchmark")
	assert.Contains(t, out, "Running 5 algorithms on 2 input sizes")
	assert.Contains(t, out, "Testing size: 100")
	assert.Contains(t, out, "=== Benchmark Results Table ===")
	assert.Contains(t, out, "=== Performance Analysis ===")
	assert.Contains(t, out, "EXPORTING RESULTS")
	assert.Contains(t, out, "When stability matters:")
	assert.Contains(t, out, "BENCHMARK COMPLETE!")
	assert.NotContains(t, out, "Warning")

	csvData, err := os.ReadFile(filepath.Join(outDir, report.CSVFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	assert.Len(t, lines, 41)
	assert.Equal(t, "Algorithm,Size,InputType,TimeSeconds", lines[0])

	assert.FileExists(t, filepath.Join(outDir, report.MarkdownFile))
	assert.FileExists(t, filepath.Join(outDir, report.SummaryFile))
	assert.NoFileExists(t, filepath.Join(outDir, report.JSONFile))
}

func TestRunQuadraticLimit(t *testing.T) {
	dir := inTempDir(t)

	out, err := executeCommand(t, "--sizes", "200", "--trials", "1", "--output-dir", dir, "--no-color", "--json")
	require.NoError(t, err)
	assert.NotContains(t, out, "SKIPPED")

	yaml := "skip:\n  quadratic_limit: 100\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	out, err = executeCommand(t, "--sizes", "200", "--trials", "1", "--output-dir", dir, "--no-color", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "Insertion Sort on Random: SKIPPED (too slow for size 200)")

	data, err := os.ReadFile(filepath.Join(dir, report.JSONFile))
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Len(t, results, 12)
}

func TestRunInvalidConfig(t *testing.T) {
	inTempDir(t)

	_, err := executeCommand(t, "--trials", "0", "--no-color")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestRunRejectsDuplicateSizes(t *testing.T) {
	inTempDir(t)

	_, err := executeCommand(t, "--sizes", "10,10", "--trials", "1", "--no-color")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "sizes must be unique, got: 10")
}

func TestRunInterruptedBeforeFirstResult(t *testing.T) {
	inTempDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--sizes", "10", "--trials", "1", "--no-color"})
	err := cmd.ExecuteContext(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "benchmark aborted")
	assert.Contains(t, buf.String(), "✗ Benchmark interrupted after 0 results.")
	assert.NotContains(t, buf.String(), "EXPORTING RESULTS")
}

func TestRunLogsExportsToFile(t *testing.T) {
	dir := inTempDir(t)
	logPath := filepath.Join(dir, "run.log")

	_, err := executeCommand(t, "--sizes", "10", "--trials", "1", "--output-dir", dir, "--log-file", logPath, "--no-color")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Results exported"`)
	assert.Contains(t, string(data), report.CSVFile)
}

func TestRunRejectsArguments(t *testing.T) {
	inTempDir(t)

	_, err := executeCommand(t, "extra")
	assert.Error(t, err)
}

func TestRunExportFailureIsWarning(t *testing.T) {
	dir := inTempDir(t)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	out, err := executeCommand(t, "--sizes", "10", "--trials", "1", "--output-dir", blocker, "--no-color")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "⚠ Warning: export failed"))
	assert.Contains(t, out, "BENCHMARK COMPLETE!")
}

func TestRunSavesToStore(t *testing.T) {
	dir := inTempDir(t)
	dbPath := filepath.Join(dir, "results.db")

	out, err := executeCommand(t, "--sizes", "10", "--trials", "1", "--output-dir", dir, "--no-color",
		"--store-type", "sqlite", "--store-dsn", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ 20 results saved to sqlite store")

	s, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s.Close()
	results, err := s.LoadResults(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 20)
}

func TestRunStoreFailureIsWarning(t *testing.T) {
	dir := inTempDir(t)
	original := newStoreFunc
	defer func() { newStoreFunc = original }()
	newStoreFunc = func(store.StoreConfig) (store.Store, error) {
		return nil, errors.New("connection refused")
	}

	out, err := executeCommand(t, "--sizes", "10", "--trials", "1", "--output-dir", dir, "--no-color",
		"--store-type", "postgres", "--store-dsn", "postgres://localhost/bench")
	require.NoError(t, err)
	assert.Contains(t, out, "could not open result store: connection refused")
}

func TestRunSlackNotification(t *testing.T) {
	dir := inTempDir(t)

	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Setenv("SORTBENCH_NOTIFICATIONS_SLACK_ENABLED", "true")
	t.Setenv("SORTBENCH_NOTIFICATIONS_SLACK_WEBHOOK_URL", server.URL)

	out, err := executeCommand(t, "--sizes", "10", "--trials", "1", "--output-dir", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Slack notification sent")
	require.NotNil(t, payload)
	assert.Contains(t, payload["text"], "with 20 results.")
}

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, string) error {
	return notify.ErrWebhookNotConfigured
}

func TestRunSlackFailureIsWarning(t *testing.T) {
	dir := inTempDir(t)
	original := newNotifierFunc
	defer func() { newNotifierFunc = original }()
	newNotifierFunc = func(string) notify.Notifier { return failingNotifier{} }
	t.Setenv("SORTBENCH_NOTIFICATIONS_SLACK_ENABLED", "true")

	out, err := executeCommand(t, "--sizes", "10", "--trials", "1", "--output-dir", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "slack notification failed: slack webhook URL is not configured")
}

func TestRunInteractive(t *testing.T) {
	dir := inTempDir(t)
	original := askOneFunc
	defer func() { askOneFunc = original }()

	var prompts []string
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		switch prompt := p.(type) {
		case *survey.Select:
			prompts = append(prompts, prompt.Message)
			*response.(*string) = modeFull
		case *survey.Input:
			prompts = append(prompts, prompt.Message)
			*response.(*string) = "2"
		}
		return nil
	}

	out, err := executeCommand(t, "--interactive", "--sizes", "10", "--output-dir", dir, "--no-color")
	require.NoError(t, err)

	assert.Equal(t, []string{"Benchmark mode:", "Trials per test:"}, prompts)
	assert.Contains(t, out, "Each test performed 2 times (using median)")
	assert.Contains(t, out, "Mode: FULL (accurate results)")
}

func TestRunInteractiveOpensResultsTable(t *testing.T) {
	dir := inTempDir(t)
	original := askOneFunc
	defer func() { askOneFunc = original }()
	shown := mockResultsTable(t)

	var confirmed bool
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		switch prompt := p.(type) {
		case *survey.Select:
			*response.(*string) = modeQuick
		case *survey.Confirm:
			assert.Equal(t, "Browse results in an interactive table?", prompt.Message)
			confirmed = true
			*response.(*bool) = true
		}
		return nil
	}

	_, err := executeCommand(t, "--interactive", "--output-dir", dir, "--no-color")
	require.NoError(t, err)

	assert.True(t, confirmed)
	// Quick mode: three sizes, five algorithms, four input types.
	assert.Len(t, *shown, 60)
}

func TestRunInteractiveResultsTableFailureIsWarning(t *testing.T) {
	dir := inTempDir(t)
	original := askOneFunc
	defer func() { askOneFunc = original }()
	origTable := startResultsTableFunc
	defer func() { startResultsTableFunc = origTable }()

	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		switch p.(type) {
		case *survey.Select:
			*response.(*string) = modeQuick
		case *survey.Confirm:
			*response.(*bool) = true
		}
		return nil
	}
	startResultsTableFunc = func([]benchmark.Result, func(float64) string) error {
		return errors.New("no tty")
	}

	out, err := executeCommand(t, "--interactive", "--output-dir", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠ Warning: results table failed: no tty")
}

func TestPromptModeQuick(t *testing.T) {
	original := askOneFunc
	defer func() { askOneFunc = original }()
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		if _, ok := p.(*survey.Input); ok {
			t.Fatal("quick mode should not ask for trials")
		}
		*response.(*string) = modeQuick
		return nil
	}

	cfg := &config.Config{Sizes: []int{10}, Trials: 3}
	require.NoError(t, promptMode(cfg))

	assert.True(t, cfg.Quick)
	assert.Equal(t, []int{100, 1000, 5000}, cfg.Sizes)
	assert.Equal(t, 1, cfg.Trials)
}

func TestPromptModeInvalidTrials(t *testing.T) {
	original := askOneFunc
	defer func() { askOneFunc = original }()
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		switch p.(type) {
		case *survey.Select:
			*response.(*string) = modeFull
		case *survey.Input:
			*response.(*string) = "many"
		}
		return nil
	}

	err := promptMode(&config.Config{Sizes: []int{10}, Trials: 3})
	assert.ErrorContains(t, err, `invalid number of trials "many"`)
}

func TestPromptModeAborted(t *testing.T) {
	original := askOneFunc
	defer func() { askOneFunc = original }()
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		return errors.New("interrupt")
	}

	err := promptMode(&config.Config{})
	assert.ErrorContains(t, err, "prompt failed")
}
