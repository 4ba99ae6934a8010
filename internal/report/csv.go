package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

var csvHeader = []string{"Algorithm", "Size", "InputType", "TimeSeconds"}

// WriteCSV writes one row per result, in the given order, after the header.
func WriteCSV(w io.Writer, results []benchmark.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Algorithm,
			strconv.Itoa(r.InputSize),
			r.InputType.String(),
			strconv.FormatFloat(r.TimeSeconds, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV returns the CSV export as a string.
func CSV(results []benchmark.Result) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = WriteCSV(&buf, results)
	return buf.String()
}

// ReadCSV parses a CSV export back into results. The export carries no
// trial count, so Trials is left zero.
func ReadCSV(r io.Reader) ([]benchmark.Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty CSV export")
	}
	if err != nil {
		return nil, err
	}
	if !slices.Equal(header, csvHeader) {
		return nil, fmt.Errorf("unexpected CSV header %v", header)
	}

	var results []benchmark.Result
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return results, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		size, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid size %q", line, row[1])
		}
		inputType, err := generator.ParseInputType(row[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		seconds, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid time %q", line, row[3])
		}
		results = append(results, benchmark.Result{
			Algorithm:   row[0],
			InputSize:   size,
			InputType:   inputType,
			TimeSeconds: seconds,
		})
	}
}
