package tabular

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
)

// Normalize turns raw rows into canonical customer records under the given
// mapping. Cell values are trimmed; an unmapped field, an unknown header or
// an out-of-range column index all degrade to the empty string. Rows where
// company, phone and email end up all empty contribute no identifying
// information and are dropped silently; partially empty rows are kept.
//
// Each surviving record gets an id of the form <sourceTag>-<unixMilli>-<row>,
// unique within one ingestion batch even when the clock does not advance
// between rows.
func Normalize(headers []string, rows [][]string, mapping entity.ColumnMapping, sourceTag string) []entity.Customer {
	if sourceTag == "" {
		sourceTag = "rows"
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	batch := time.Now().UnixMilli()
	customers := make([]entity.Customer, 0, len(rows))

	for rowIdx, row := range rows {
		cell := func(f entity.Field) string {
			header := mapping.Header(f)
			if header == "" {
				return ""
			}
			col, ok := index[header]
			if !ok || col < 0 || col >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[col])
		}

		c := entity.Customer{
			ID:             fmt.Sprintf("%s-%d-%d", sourceTag, batch, rowIdx),
			Company:        cell(entity.FieldCompany),
			Representative: cell(entity.FieldRepresentative),
			Phone:          cell(entity.FieldPhone),
			Email:          cell(entity.FieldEmail),
			Country:        cell(entity.FieldCountry),
			Website:        cell(entity.FieldWebsite),
			Notes:          cell(entity.FieldNotes),
		}

		if !c.Identifiable() {
			continue
		}
		customers = append(customers, c)
	}

	return customers
}
