package usecase

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
)

func TestExportCSVRoundTrip(t *testing.T) {
	entries := []entity.ArchiveEntry{
		{
			Customer: entity.Customer{
				Company:        "CompanyA",
				Representative: "John Doe",
				Phone:          "+1234,+5678",
				Email:          "john@companya.com",
				Notes:          "met at booth 12",
			},
			Message: entity.GeneratedMessage{Subject: "Hi"},
		},
	}

	out := ExportCSV(entries)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Company", "Representative", "Phone", "Email", "Notes", "Status"}, records[0])
	assert.Equal(t, []string{"CompanyA", "John Doe", "+1234,+5678", "john@companya.com", "met at booth 12", "Contacted"}, records[1])
}

func TestExportCSVEscapesEmbeddedQuotes(t *testing.T) {
	entries := []entity.ArchiveEntry{
		{Customer: entity.Customer{Company: `Acme "The Best" Ltd`, Notes: `said "call me"`}},
	}

	records, err := csv.NewReader(strings.NewReader(ExportCSV(entries))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Acme "The Best" Ltd`, records[1][0])
	assert.Equal(t, `said "call me"`, records[1][4])
}

func TestExportCSVEmptyArchive(t *testing.T) {
	out := ExportCSV(nil)

	assert.Equal(t, "\"Company\",\"Representative\",\"Phone\",\"Email\",\"Notes\",\"Status\"\r\n", out)
}
