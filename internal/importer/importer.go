// Package importer turns bank-statement CSV exports of unknown dialect
// into canonical transactions. The pipeline has three stages: the format
// detector runs once per file on the header row, the row schema validator
// and field normalizer run once per data row. Bad rows are reported
// individually and never abort the file.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// RawRow maps a CSV column name to its raw value for one data row. Rows
// are ephemeral: read, validated, normalized, discarded.
type RawRow map[string]string

// RowError describes why a single row was rejected. Line is the 1-based
// CSV line number (the header is line 1).
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// Result is the outcome of running the pipeline over one file.
type Result struct {
	BatchID      uuid.UUID
	Format       model.CsvFormat
	Transactions []model.ParsedTransaction
	Errors       []RowError
}

// Succeeded returns the number of rows that fully normalized.
func (r *Result) Succeeded() int { return len(r.Transactions) }

// Failed returns the number of rows rejected.
func (r *Result) Failed() int { return len(r.Errors) }

// Read reads a whole CSV stream and returns the header row and the data
// records. The first header is stripped of any UTF-8 BOM and all headers
// are trimmed; rows may have ragged column counts.
func Read(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("CSV has no header row")
	}

	headers := records[0]
	headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, records[1:], nil
}

// Parse runs the full pipeline over a CSV stream, detecting the dialect
// from the header row.
func Parse(r io.Reader) (*Result, error) {
	return ParseAs(r, "")
}

// ParseAs runs the pipeline with a forced dialect. An empty format falls
// back to detection. Transactions come out in input row order.
func ParseAs(r io.Reader, format model.CsvFormat) (*Result, error) {
	headers, rows, err := Read(r)
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = DetectFormat(headers)
	} else if !format.Valid() {
		return nil, fmt.Errorf("unknown CSV format %q", format)
	}

	res := &Result{BatchID: uuid.New(), Format: format}

	for i, rec := range rows {
		line := i + 2

		if emptyRecord(rec) {
			continue
		}

		row := makeRow(headers, rec)

		if err := ValidateRow(format, row); err != nil {
			res.Errors = append(res.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}

		tx, err := buildTransaction(format, row)
		if err != nil {
			res.Errors = append(res.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}

		res.Transactions = append(res.Transactions, tx)
	}

	return res, nil
}

// makeRow zips headers with one record. Missing trailing values leave
// their columns absent; extra values beyond the header are dropped.
func makeRow(headers []string, rec []string) RawRow {
	row := make(RawRow, len(headers))
	for i, h := range headers {
		if i >= len(rec) {
			break
		}
		row[h] = rec[i]
	}
	return row
}

func emptyRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// FileInfo describes a CSV file waiting in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// importDir is the subdirectory scanned for new statements.
const importDir = "import"

// processedDir receives statements after a successful import.
const processedDir = "import/processed"

// Scan returns the CSV files in <root>/import/, skipping subdirectories.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a statement from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	if err := os.Rename(src, filepath.Join(dstDir, fileName)); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
