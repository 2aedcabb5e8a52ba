package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/queue"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
)

type ArchiveUseCase struct {
	Store     *store.Store
	Publisher EventPublisher
	Log       zerolog.Logger
}

func NewArchiveUseCase(s *store.Store, publisher EventPublisher, log zerolog.Logger) *ArchiveUseCase {
	return &ArchiveUseCase{
		Store:     s,
		Publisher: publisher,
		Log:       log.With().Str("component", "archive").Logger(),
	}
}

// Archive moves a drafted lead into the archive and, when a broker is
// configured, publishes the event for downstream systems. The publish is
// best-effort; the archive transition itself already happened and is not
// rolled back over a broker hiccup.
func (uc *ArchiveUseCase) Archive(ctx context.Context, id string) bool {
	if !uc.Store.Archive(id) {
		// Missing customer or missing draft: silent no-op per the
		// workflow contract, the UI only offers archiving for drafted leads.
		return false
	}

	if uc.Publisher == nil {
		return true
	}

	for _, e := range uc.Store.ArchiveEntries() {
		if e.Customer.ID != id {
			continue
		}
		payload := queue.ArchivedPayload{
			CustomerID:     e.Customer.ID,
			Company:        e.Customer.Company,
			Representative: e.Customer.Representative,
			Email:          e.Customer.Email,
			Phone:          e.Customer.Phone,
			Subject:        e.Message.Subject,
			Channel:        string(e.Message.Channel),
			Language:       string(e.Message.Language),
			ArchivedAt:     e.ArchivedAt,
		}
		if err := uc.Publisher.PublishArchived(ctx, payload); err != nil {
			uc.Log.Error().Err(err).Str("customer_id", id).Msg("failed to publish archived event")
		}
		break
	}
	return true
}

// Remove deletes an archive entry permanently.
func (uc *ArchiveUseCase) Remove(id string) bool {
	return uc.Store.RemoveArchived(id)
}
