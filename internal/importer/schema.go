package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// TaskRecord is one task row from an import file. All fields arrive as
// strings; both the JSON and the CSV path share this shape, and conversion
// to domain values happens in Convert after validation.
//
// Field keys are case-insensitive and match the export format of the
// original spreadsheets: "description", "category", "start date",
// "deadline", "estimated duration", "elapsed time", "status".
type TaskRecord struct {
	Description       string
	Category          string
	StartDate         string
	Deadline          string
	EstimatedDuration string
	ElapsedTime       string
	Status            string
}

// recordKeys maps normalized header/key names onto TaskRecord fields.
var recordKeys = map[string]func(*TaskRecord, string){
	"description":        func(r *TaskRecord, v string) { r.Description = v },
	"category":           func(r *TaskRecord, v string) { r.Category = v },
	"start date":         func(r *TaskRecord, v string) { r.StartDate = v },
	"deadline":           func(r *TaskRecord, v string) { r.Deadline = v },
	"estimated duration": func(r *TaskRecord, v string) { r.EstimatedDuration = v },
	"elapsed time":       func(r *TaskRecord, v string) { r.ElapsedTime = v },
	"status":             func(r *TaskRecord, v string) { r.Status = v },
}

// LoadTaskRecords reads an import file, dispatching on the file extension.
// Only .json and .csv are accepted.
func LoadTaskRecords(path string) ([]TaskRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(f)
	case ".csv":
		return ParseCSV(f)
	}
	return nil, fmt.Errorf("unsupported import format %q (expected .json or .csv)", filepath.Ext(path))
}

// ParseJSON reads a JSON array of task objects. Unknown keys are ignored and
// numeric values are accepted for the duration fields.
func ParseJSON(r io.Reader) ([]TaskRecord, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	records := make([]TaskRecord, 0, len(raw))
	for _, obj := range raw {
		var rec TaskRecord
		for k, v := range obj {
			if set, ok := recordKeys[normalizeKey(k)]; ok {
				set(&rec, stringValue(v))
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseCSV reads a semicolon-delimited CSV with a header row.
func ParseCSV(r io.Reader) ([]TaskRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]TaskRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec TaskRecord
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			if set, ok := recordKeys[normalizeKey(header[i])]; ok {
				set(&rec, strings.TrimSpace(cell))
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func stringValue(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%v", x)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}
