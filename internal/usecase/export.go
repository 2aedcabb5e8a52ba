package usecase

import (
	"strings"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
)

// csvHeader is the fixed export layout consumed by the sales team's sheet.
var csvHeader = []string{"Company", "Representative", "Phone", "Email", "Notes", "Status"}

// archivedStatus marks every exported entry; only contacted leads reach
// the archive.
const archivedStatus = "Contacted"

// ExportCSV renders the archive as CSV: fixed 6-column header, one row per
// entry, every field double-quoted. Embedded quotes are doubled so the
// output survives any standard CSV parser.
func ExportCSV(entries []entity.ArchiveEntry) string {
	var b strings.Builder

	writeRow(&b, csvHeader)
	for _, e := range entries {
		writeRow(&b, []string{
			e.Customer.Company,
			e.Customer.Representative,
			e.Customer.Phone,
			e.Customer.Email,
			e.Customer.Notes,
			archivedStatus,
		})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}
