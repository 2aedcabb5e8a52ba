package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
)

// batchWidth bounds concurrent generation calls; the upstream API is rate
// limited. Batch N finishes (success or fallback) before batch N+1 starts.
const batchWidth = 3

type GenerateUseCase struct {
	Store   *store.Store
	Drafter Drafter
	Log     zerolog.Logger
}

func NewGenerateUseCase(s *store.Store, drafter Drafter, log zerolog.Logger) *GenerateUseCase {
	return &GenerateUseCase{
		Store:   s,
		Drafter: drafter,
		Log:     log.With().Str("component", "generate").Logger(),
	}
}

type GenerateReport struct {
	Requested int `json:"requested"`
	Generated int `json:"generated"`
	Fallbacks int `json:"fallbacks"`
	Dropped   int `json:"dropped"` // completions that arrived for deleted or regenerated leads
}

// GenerateBatch drafts messages for the given customer ids, or for every
// lead without a draft when ids is empty. A failed call never halts the
// batch: the lead gets the fixed fallback message and the failure is
// logged, not surfaced inline.
func (uc *GenerateUseCase) GenerateBatch(ctx context.Context, ids []string, lang entity.Language) GenerateReport {
	if len(ids) == 0 {
		for _, c := range uc.Store.Customers() {
			if _, has := uc.Store.Draft(c.ID); !has {
				ids = append(ids, c.ID)
			}
		}
	}

	report := GenerateReport{Requested: len(ids)}
	var mu sync.Mutex

	for start := 0; start < len(ids); start += batchWidth {
		end := start + batchWidth
		if end > len(ids) {
			end = len(ids)
		}

		var wg sync.WaitGroup
		for _, id := range ids[start:end] {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				applied, fallback := uc.generateOne(ctx, id, lang)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case fallback && applied:
					report.Fallbacks++
				case applied:
					report.Generated++
				default:
					report.Dropped++
				}
			}(id)
		}
		wg.Wait()
	}

	return report
}

// Regenerate replaces the draft for a single lead, possibly in another
// language. Last write wins.
func (uc *GenerateUseCase) Regenerate(ctx context.Context, id string, lang entity.Language) (entity.GeneratedMessage, error) {
	if _, ok := uc.Store.Customer(id); !ok {
		return entity.GeneratedMessage{}, &DomainError{Code: CodeCustomerNotFound, Message: "customer not found"}
	}

	uc.generateOne(ctx, id, lang)

	msg, ok := uc.Store.Draft(id)
	if !ok {
		// The lead vanished between the call and the write.
		return entity.GeneratedMessage{}, &DomainError{Code: CodeCustomerNotFound, Message: "customer not found"}
	}
	return msg, nil
}

// generateOne runs one generation attempt end to end. It reports whether
// the write was applied and whether the stored message is the fallback.
func (uc *GenerateUseCase) generateOne(ctx context.Context, id string, lang entity.Language) (applied, fallback bool) {
	token, ok := uc.Store.BeginGeneration(id)
	if !ok {
		return false, false
	}

	customer, ok := uc.Store.Customer(id)
	if !ok {
		return false, false
	}

	var msg entity.GeneratedMessage
	if uc.Drafter == nil {
		msg = entity.FallbackMessage(lang)
		fallback = true
	} else {
		drafted, err := uc.Drafter.Draft(ctx, uc.Store.GenerationContext(), customer, lang)
		if err != nil {
			uc.Log.Error().Err(err).Str("customer_id", id).Str("request_id", token.RequestID).
				Msg("draft generation failed, storing fallback")
			msg = entity.FallbackMessage(lang)
			fallback = true
		} else {
			msg = drafted
		}
	}

	applied = uc.Store.CompleteGeneration(token, msg)
	if !applied {
		uc.Log.Debug().Str("customer_id", id).Str("request_id", token.RequestID).
			Msg("generation completed for a stale or deleted lead, write dropped")
	}
	return applied, fallback
}
