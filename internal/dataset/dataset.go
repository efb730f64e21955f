// Package dataset reads and writes the row collections bulk runs operate
// over: JSONL files (one JSON object per line) and CSV files with a header
// row. Rows are plain maps; the runner decides what to do with them.
package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// Row is one dataset example. ID is optional; when the source carries no
// "id" field the row's position is used.
type Row struct {
	ID     string         `json:"id,omitempty"`
	Values map[string]any `json:"values"`
}

// Read loads a dataset file, dispatching on extension: .jsonl/.ndjson for
// JSON lines, .csv for CSV with a header row.
func Read(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return ReadJSONL(path)
	case ".csv":
		return ReadCSV(path)
	default:
		return nil, util.NewValidationError("dataset", path, "unsupported extension, want .jsonl, .ndjson or .csv")
	}
}

// ReadJSONL loads a JSONL dataset file.
func ReadJSONL(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return DecodeJSONL(f)
}

// DecodeJSONL reads one JSON object per line. Blank lines are skipped; a
// malformed line fails the whole read with its line number.
func DecodeJSONL(r io.Reader) ([]Row, error) {
	rows := make([]Row, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var values map[string]any
		if err := json.Unmarshal([]byte(text), &values); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", util.ErrMalformedDataset, line, err)
		}

		rows = append(rows, newRow(len(rows), values))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return rows, nil
}

// ReadCSV loads a CSV dataset file. The header row becomes the value keys.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header row: %v", util.ErrMalformedDataset, err)
	}

	rows := make([]Row, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrMalformedDataset, err)
		}

		values := make(map[string]any, len(header))
		for i, key := range header {
			if i < len(record) {
				values[key] = record[i]
			}
		}
		rows = append(rows, newRow(len(rows), values))
	}

	return rows, nil
}

// Rows streams a JSONL reader as a lazy sequence of (Row, error) pairs,
// suitable for feeding an executor's ExecuteSeq without materializing the
// file first. Iteration stops at the first malformed line, yielding it with
// a non-nil error.
func Rows(r io.Reader) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

		line := 0
		index := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}

			var values map[string]any
			if err := json.Unmarshal([]byte(text), &values); err != nil {
				yield(Row{}, fmt.Errorf("%w: line %d: %v", util.ErrMalformedDataset, line, err))
				return
			}

			if !yield(newRow(index, values), nil) {
				return
			}
			index++
		}
		if err := scanner.Err(); err != nil {
			yield(Row{}, fmt.Errorf("failed to read dataset: %w", err))
		}
	}
}

// WriteJSONL writes rows as one JSON object per line.
func WriteJSONL(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	for i, row := range rows {
		if err := enc.Encode(row.Values); err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
	}
	return nil
}

// newRow extracts the optional "id" field, falling back to the positional
// index.
func newRow(index int, values map[string]any) Row {
	id := strconv.Itoa(index)
	if v, ok := values["id"]; ok {
		switch typed := v.(type) {
		case string:
			if typed != "" {
				id = typed
			}
		case float64:
			id = strconv.FormatFloat(typed, 'f', -1, 64)
		}
	}
	return Row{ID: id, Values: values}
}
