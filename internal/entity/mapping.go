package entity

// Field names the canonical columns of a customer record.
type Field string

const (
	FieldCompany        Field = "company"
	FieldRepresentative Field = "representative"
	FieldPhone          Field = "phone"
	FieldEmail          Field = "email"
	FieldCountry        Field = "country"
	FieldWebsite        Field = "website"
	FieldNotes          Field = "notes"
)

// Fields lists every canonical field in a stable order.
var Fields = []Field{
	FieldCompany,
	FieldRepresentative,
	FieldPhone,
	FieldEmail,
	FieldCountry,
	FieldWebsite,
	FieldNotes,
}

// ColumnMapping assigns each canonical field a source header name.
// An empty (or absent) value means the field is unmapped and stays empty.
// The heuristic proposal is a best guess; operators override it before
// committing rows.
type ColumnMapping map[Field]string

// Header returns the mapped source header for a field, or "" when unmapped.
func (m ColumnMapping) Header(f Field) string {
	return m[f]
}
