package report

import (
	"fmt"
	"io"

	"sortbench/internal/algorithms"
	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
	"sortbench/internal/ui"

	"github.com/dustin/go-humanize"
)

// Progress is a benchmark.Observer that prints one line per combination as
// the run advances.
type Progress struct {
	w       io.Writer
	started bool
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

func (p *Progress) RunStarted(sizes []int, trials, algorithmCount int) {
	fmt.Fprintln(p.w, ui.SectionStyle.Render("=== Sorting Algorithm Benchmark ==="))
	fmt.Fprintf(p.w, "Running %d algorithms on %d input sizes\n", algorithmCount, len(sizes))
	fmt.Fprintf(p.w, "Each test performed %d times (using median)\n\n", trials)
}

func (p *Progress) SizeStarted(size int) {
	if p.started {
		fmt.Fprintln(p.w)
	}
	p.started = true
	fmt.Fprintf(p.w, "Testing size: %s\n", humanize.Comma(int64(size)))
}

func (p *Progress) Measured(r benchmark.Result) {
	fmt.Fprintf(p.w, "  %s on %s: %s\n", r.Algorithm, r.InputType, FormatTime(r.TimeSeconds))
}

func (p *Progress) Skipped(entry algorithms.Entry, size int, inputType generator.InputType) {
	fmt.Fprintf(p.w, "  %s on %s: %s\n", entry.Name, inputType,
		ui.SkippedStyle.Render(fmt.Sprintf("SKIPPED (too slow for size %s)", humanize.Comma(int64(size)))))
}

func (p *Progress) RunFinished(results []benchmark.Result) {
	fmt.Fprintln(p.w)
}
