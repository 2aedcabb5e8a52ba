// Package spreadsheet reads uploaded workbook bytes into a header row plus
// data rows, ready for column mapping.
package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is the raw tabular content of the first worksheet.
type Sheet struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Read opens an xlsx file from memory and returns the first sheet's header
// row and data rows. Rows are padded to the header width so downstream
// column lookups never index past a short row, and fully empty trailing
// rows are trimmed.
func Read(file []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	headers := rows[0]
	data := rows[1:]

	width := len(headers)
	for _, r := range data {
		if len(r) > width {
			width = len(r)
		}
	}
	if len(headers) < width {
		headers = append(headers, make([]string, width-len(headers))...)
	}
	for i := range data {
		if len(data[i]) < width {
			data[i] = append(data[i], make([]string, width-len(data[i]))...)
		}
	}

	data = trimEmptyRows(data)

	return &Sheet{Headers: headers, Rows: data}, nil
}

func trimEmptyRows(rows [][]string) [][]string {
	for len(rows) > 0 && rowEmpty(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
