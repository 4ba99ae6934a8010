package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sortbench/internal/benchmark"
)

// Artifact file names.
const (
	CSVFile      = "sorting_benchmark_results.csv"
	MarkdownFile = "BENCHMARK_RESULTS.md"
	SummaryFile  = "BENCHMARK_SUMMARY.txt"
	JSONFile     = "sorting_benchmark_results.json"
)

// ExportError records a failure to write one artifact.
type ExportError struct {
	File string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("could not export %s: %v", e.File, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Artifact is a file written by an Exporter.
type Artifact struct {
	Name string
	Path string
}

// Exporter writes the report artifacts into a directory.
type Exporter struct {
	Dir  string
	JSON bool
	Now  func() time.Time
}

// WriteAll writes every artifact it can. Each failure is wrapped in an
// *ExportError and the failures are joined; the successful artifacts are
// still returned.
func (e *Exporter) WriteAll(results []benchmark.Result) ([]Artifact, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	type job struct {
		name   string
		render func() ([]byte, error)
	}
	jobs := []job{
		{CSVFile, func() ([]byte, error) { return []byte(CSV(results)), nil }},
		{MarkdownFile, func() ([]byte, error) { return []byte(Markdown(results)), nil }},
		{SummaryFile, func() ([]byte, error) { return []byte(Summary(results, now())), nil }},
	}
	if e.JSON {
		jobs = append(jobs, job{JSONFile, func() ([]byte, error) { return JSON(results) }})
	}

	var errs []error
	if err := os.MkdirAll(dir, 0755); err != nil {
		for _, j := range jobs {
			errs = append(errs, &ExportError{File: j.name, Err: err})
		}
		return nil, errors.Join(errs...)
	}

	var written []Artifact
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		data, err := j.render()
		if err == nil {
			err = os.WriteFile(path, data, 0644)
		}
		if err != nil {
			errs = append(errs, &ExportError{File: j.name, Err: err})
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		written = append(written, Artifact{Name: j.name, Path: path})
	}

	return written, errors.Join(errs...)
}
