// Package importer reads bulk data from Excel workbooks and turns it into
// validated records the store can trust. All field-level validation happens
// here, before anything reaches the store: required columns, the score range,
// the attendance status set, and date parsing. The package also generates the
// template workbooks teachers download, fill in, and upload back.
package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Option is a class or student offered in a template's instruction sheet so
// uploaders can copy valid ids.
type Option struct {
	ID   string
	Name string
}

var errEmptyFile = fmt.Errorf("file Excel tidak berisi data")

// firstSheetRows opens the workbook and returns the rows of its first sheet,
// requiring at least a header row and one data row.
func firstSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file Excel: %w", err)
	}
	if len(rows) < 2 {
		return nil, errEmptyFile
	}
	return rows, nil
}

// columnIndex maps header names to their column positions, case-insensitive.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[strings.ToLower(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// extractID strips the "Name (ID: xxx)" decoration the templates use for
// readability, leaving the bare id. Plain ids pass through unchanged.
func extractID(v string) string {
	if _, after, found := strings.Cut(v, "(ID:"); found {
		return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(after), ")"))
	}
	return v
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
}

// parseDate accepts the date formats spreadsheets commonly produce and
// normalizes them to RFC 3339 in UTC, the form the store's day-prefix
// queries rely on.
func parseDate(v string) (string, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("format tanggal tidak valid (%s)", v)
}

func rowError(rowNum int, format string, args ...any) error {
	return fmt.Errorf("Baris ke-%d: %s", rowNum, fmt.Sprintf(format, args...))
}

// optionCell renders the n-th option as the readable "Name (ID: xxx)" form
// used in example rows, or a placeholder when not enough options exist.
func optionCell(opts []Option, n int, placeholder string) string {
	if n >= len(opts) {
		return placeholder
	}
	return fmt.Sprintf("%s (ID: %s)", opts[n].Name, opts[n].ID)
}

// addInstructionSheet appends a "Petunjuk" sheet with one line per row.
func addInstructionSheet(f *excelize.File, lines []string) error {
	const sheet = "Petunjuk"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, line := range lines {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, line); err != nil {
			return err
		}
	}
	return nil
}
