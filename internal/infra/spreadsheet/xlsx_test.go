package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadHeadersAndRows(t *testing.T) {
	file := workbookBytes(t, [][]any{
		{"Firma", "Temsilci", "Tel"},
		{"CompanyA", "John Doe", "+1234"},
		{"CompanyB", "", "+5678"},
	})

	sheet, err := Read(file)

	require.NoError(t, err)
	assert.Equal(t, []string{"Firma", "Temsilci", "Tel"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "CompanyA", sheet.Rows[0][0])
}

func TestReadPadsShortRows(t *testing.T) {
	file := workbookBytes(t, [][]any{
		{"Firma", "Temsilci", "Tel"},
		{"OnlyCompany"},
	})

	sheet, err := Read(file)

	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	assert.Len(t, sheet.Rows[0], 3)
	assert.Equal(t, "", sheet.Rows[0][2])
}

func TestReadTrimsTrailingEmptyRows(t *testing.T) {
	file := workbookBytes(t, [][]any{
		{"Firma"},
		{"CompanyA"},
		{""},
		{""},
	})

	sheet, err := Read(file)

	require.NoError(t, err)
	assert.Len(t, sheet.Rows, 1)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read([]byte("not a workbook"))

	assert.Error(t, err)
}
