package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/queue"
)

// MockLeadExtractor
type MockLeadExtractor struct {
	mock.Mock
}

func (m *MockLeadExtractor) ExtractFromText(ctx context.Context, text string) ([]entity.Customer, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Customer), args.Error(1)
}

func (m *MockLeadExtractor) ExtractFromImage(ctx context.Context, data []byte, mimeType string) ([]entity.Customer, error) {
	args := m.Called(ctx, data, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Customer), args.Error(1)
}

// MockDrafter
type MockDrafter struct {
	mock.Mock
}

func (m *MockDrafter) Draft(ctx context.Context, genCtx entity.GenerationContext, c entity.Customer, lang entity.Language) (entity.GeneratedMessage, error) {
	args := m.Called(ctx, genCtx, c, lang)
	return args.Get(0).(entity.GeneratedMessage), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishArchived(ctx context.Context, payload queue.ArchivedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
