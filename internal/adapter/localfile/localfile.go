// Package localfile loads flat-file inputs (JSON documents, CSV tables) into
// the mapping and sequence shapes the rest of the assembly consumes.
package localfile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// DecodeError reports a file body that is not valid JSON or CSV.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("localfile: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadJSON reads and decodes a JSON document of arbitrary shape. Objects
// decode as map[string]any, arrays as []any, numbers as float64.
func ReadJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return doc, nil
}

// ReadCSV reads a delimited file with a header row and returns one
// string-keyed mapping per record, keyed by the header columns.
func ReadCSV(path string, delimiter rune) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter

	records, err := r.ReadAll()
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("missing header row")}
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
