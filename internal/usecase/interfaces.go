package usecase

import (
	"context"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/queue"
)

// LeadExtractor is the generative extraction boundary. Returned customers
// carry no IDs yet; ingestion assigns them.
type LeadExtractor interface {
	ExtractFromText(ctx context.Context, text string) ([]entity.Customer, error)
	ExtractFromImage(ctx context.Context, data []byte, mimeType string) ([]entity.Customer, error)
}

// Drafter is the generative drafting boundary.
type Drafter interface {
	Draft(ctx context.Context, genCtx entity.GenerationContext, c entity.Customer, lang entity.Language) (entity.GeneratedMessage, error)
}

// EmailSender dispatches a reviewed draft over SMTP.
type EmailSender interface {
	Send(to, subject, body string) error
}

// EventPublisher pushes archived-lead events to downstream systems.
type EventPublisher interface {
	PublishArchived(ctx context.Context, payload queue.ArchivedPayload) error
}
