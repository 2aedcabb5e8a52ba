package tabular

import (
	"strings"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
)

// Keyword lists per canonical field. Headers come from exhibition lead
// sheets that mix Turkish and English, so both are covered. A header
// matches when it contains a keyword, case-insensitively.
var fieldKeywords = map[entity.Field][]string{
	entity.FieldCompany:        {"firma", "company", "şirket", "sirket", "kurum"},
	entity.FieldRepresentative: {"temsilci", "yetkili", "contact", "isim", "name", "ad soyad"},
	entity.FieldPhone:          {"tel", "phone", "mobile", "cel", "gsm"},
	entity.FieldEmail:          {"mail", "posta"},
	entity.FieldCountry:        {"ülke", "ulke", "country", "adres", "address", "şehir", "sehir", "city"},
	entity.FieldWebsite:        {"web", "site", "url", "www"},
	entity.FieldNotes:          {"not", "açıklama", "aciklama", "comment", "remark"},
}

// ProposeMapping scans the header row left to right and assigns each
// canonical field the first header containing one of its keywords.
// Fields with no matching header stay unmapped. This is a heuristic,
// not a guarantee: the operator confirms or overrides before rows are
// committed, and a miss is a normal outcome rather than an error.
func ProposeMapping(headers []string) entity.ColumnMapping {
	mapping := entity.ColumnMapping{}

	for _, field := range entity.Fields {
		keywords := fieldKeywords[field]

	scan:
		for _, header := range headers {
			lowered := strings.ToLower(strings.TrimSpace(header))
			if lowered == "" {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(lowered, kw) {
					mapping[field] = header
					break scan
				}
			}
		}
	}

	return mapping
}
