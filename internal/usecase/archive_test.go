package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/queue"
)

func TestArchivePublishesEvent(t *testing.T) {
	s := seededStore("a")
	s.SetDraft("a", entity.GeneratedMessage{
		Subject:  "Hi",
		Channel:  entity.ChannelEmail,
		Language: entity.LanguageEnglish,
	})

	publisher := new(MockEventPublisher)
	publisher.On("PublishArchived", mock.Anything, mock.MatchedBy(func(p queue.ArchivedPayload) bool {
		return p.CustomerID == "a" && p.Subject == "Hi"
	})).Return(nil)

	uc := NewArchiveUseCase(s, publisher, zerolog.Nop())
	assert.True(t, uc.Archive(context.Background(), "a"))

	publisher.AssertExpectations(t)
	_, active := s.Customer("a")
	assert.False(t, active)
	require.Len(t, s.ArchiveEntries(), 1)
}

func TestArchiveWithoutDraftIsNoOp(t *testing.T) {
	s := seededStore("a")
	publisher := new(MockEventPublisher)

	uc := NewArchiveUseCase(s, publisher, zerolog.Nop())
	assert.False(t, uc.Archive(context.Background(), "a"))

	publisher.AssertNotCalled(t, "PublishArchived", mock.Anything, mock.Anything)
}

func TestArchiveWithoutPublisher(t *testing.T) {
	s := seededStore("a")
	s.SetDraft("a", entity.GeneratedMessage{Subject: "Hi"})

	uc := NewArchiveUseCase(s, nil, zerolog.Nop())
	assert.True(t, uc.Archive(context.Background(), "a"))
}
