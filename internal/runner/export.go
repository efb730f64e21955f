package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Arize-ai/phoenix-sub007/internal/dataset"
)

// WriteJSONL exports the report as JSON lines, one RowResult per line, in
// input order. The format round-trips through ReadJSONL-style tooling and is
// what `pxbulk export` emits.
func (r *Report) WriteJSONL(w io.Writer, rows []dataset.Row) error {
	enc := json.NewEncoder(w)
	for _, rr := range r.RowResults(rows) {
		if err := enc.Encode(rr); err != nil {
			return fmt.Errorf("failed to encode result %d: %w", rr.Index, err)
		}
	}
	return nil
}

// ReadJSONL loads previously exported row results, for re-export in another
// format or for inspection.
func ReadJSONL(rd io.Reader) ([]RowResult, error) {
	var out []RowResult
	dec := json.NewDecoder(rd)
	for {
		var rr RowResult
		if err := dec.Decode(&rr); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to decode result line %d: %w", len(out)+1, err)
		}
		out = append(out, rr)
	}
	return out, nil
}
