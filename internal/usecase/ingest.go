package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/spreadsheet"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/tabular"
)

type IngestUseCase struct {
	Store     *store.Store
	Extractor LeadExtractor
	Log       zerolog.Logger
}

func NewIngestUseCase(s *store.Store, extractor LeadExtractor, log zerolog.Logger) *IngestUseCase {
	return &IngestUseCase{
		Store:     s,
		Extractor: extractor,
		Log:       log.With().Str("component", "ingest").Logger(),
	}
}

type ExtractInput struct {
	Text      string
	ImageData []byte
	ImageMIME string
	SourceTag string
}

// Extract runs the generative extraction over pasted text or a photographed
// table and adds the resulting leads to the working set. Zero extracted
// records is a blocking error surfaced to the operator; the input is not
// retried automatically.
func (uc *IngestUseCase) Extract(ctx context.Context, input ExtractInput) ([]entity.Customer, error) {
	if uc.Extractor == nil {
		return nil, &TechnicalError{Code: CodeExtractionFailed, Message: "extraction is not configured"}
	}

	var (
		leads []entity.Customer
		err   error
		tag   = input.SourceTag
	)

	switch {
	case len(input.ImageData) > 0:
		if tag == "" {
			tag = "img"
		}
		leads, err = uc.Extractor.ExtractFromImage(ctx, input.ImageData, input.ImageMIME)
	case input.Text != "":
		if tag == "" {
			tag = "txt"
		}
		leads, err = uc.Extractor.ExtractFromText(ctx, input.Text)
	default:
		return nil, &DomainError{Code: CodeInvalidInput, Message: "provide either text or an image"}
	}

	if err != nil {
		uc.Log.Error().Err(err).Msg("extraction call failed")
		return nil, &TechnicalError{Code: CodeExtractionFailed, Message: "extraction failed: " + err.Error()}
	}

	batch := time.Now().UnixMilli()
	customers := make([]entity.Customer, 0, len(leads))
	for i, lead := range leads {
		lead.ID = fmt.Sprintf("%s-%d-%d", tag, batch, i)
		if !lead.Identifiable() {
			continue
		}
		customers = append(customers, lead)
	}

	if len(customers) == 0 {
		return nil, &DomainError{
			Code:    CodeExtractionEmpty,
			Message: "no leads could be extracted from the input",
		}
	}

	added := uc.Store.AddCustomers(customers)
	uc.Log.Info().Int("extracted", len(customers)).Int("added", added).Str("source", tag).Msg("leads ingested")
	return customers, nil
}

// SheetPreview is what the operator reviews before committing: the raw
// table plus the proposed column mapping.
type SheetPreview struct {
	Headers []string             `json:"headers"`
	Rows    [][]string           `json:"rows"`
	Mapping entity.ColumnMapping `json:"mapping"`
}

// PreviewSheet parses an uploaded workbook and proposes a mapping. Nothing
// is committed; the operator confirms or overrides the mapping first.
func (uc *IngestUseCase) PreviewSheet(file []byte) (*SheetPreview, error) {
	sheet, err := spreadsheet.Read(file)
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidInput, Message: "could not read workbook: " + err.Error()}
	}

	return &SheetPreview{
		Headers: sheet.Headers,
		Rows:    sheet.Rows,
		Mapping: tabular.ProposeMapping(sheet.Headers),
	}, nil
}

// CommitRows normalizes confirmed rows under the confirmed mapping and adds
// the surviving records to the working set. The second return value is the
// number of records the store actually accepted; duplicates and archived
// IDs are skipped silently.
func (uc *IngestUseCase) CommitRows(headers []string, rows [][]string, mapping entity.ColumnMapping, sourceTag string) ([]entity.Customer, int) {
	customers := tabular.Normalize(headers, rows, mapping, sourceTag)
	added := uc.Store.AddCustomers(customers)
	uc.Log.Info().Int("rows", len(rows)).Int("added", added).Msg("rows committed")
	return customers, added
}
