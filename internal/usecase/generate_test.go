package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
)

func seededStore(ids ...string) *store.Store {
	s := store.New(entity.GenerationContext{SenderOrg: "Akfix", EventName: "Expo"})
	customers := make([]entity.Customer, 0, len(ids))
	for _, id := range ids {
		customers = append(customers, entity.Customer{ID: id, Company: "Co " + id})
	}
	s.AddCustomers(customers)
	return s
}

func TestGenerateBatchSuccess(t *testing.T) {
	ctx := context.Background()
	s := seededStore("a", "b")

	drafter := new(MockDrafter)
	drafter.On("Draft", mock.Anything, mock.Anything, mock.Anything, entity.LanguageEnglish).
		Return(entity.GeneratedMessage{
			Subject:  "Great to meet you",
			Body:     "Hello!",
			Channel:  entity.ChannelEmail,
			Language: entity.LanguageEnglish,
		}, nil)

	uc := NewGenerateUseCase(s, drafter, zerolog.Nop())
	report := uc.GenerateBatch(ctx, nil, entity.LanguageEnglish)

	assert.Equal(t, 2, report.Requested)
	assert.Equal(t, 2, report.Generated)
	assert.Zero(t, report.Fallbacks)
	for _, id := range []string{"a", "b"} {
		msg, ok := s.Draft(id)
		require.True(t, ok)
		assert.Equal(t, "Great to meet you", msg.Subject)
	}
}

func TestGenerateBatchFailureStoresFallback(t *testing.T) {
	ctx := context.Background()
	s := seededStore("a")

	drafter := new(MockDrafter)
	drafter.On("Draft", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(entity.GeneratedMessage{}, errors.New("quota exceeded"))

	uc := NewGenerateUseCase(s, drafter, zerolog.Nop())
	report := uc.GenerateBatch(ctx, []string{"a"}, entity.LanguageTurkish)

	assert.Equal(t, 1, report.Fallbacks)
	assert.Zero(t, report.Generated)

	msg, ok := s.Draft("a")
	require.True(t, ok)
	assert.Equal(t, "Follow up", msg.Subject)
	assert.Equal(t, "Error generating draft.", msg.Body)
	assert.Equal(t, entity.LanguageTurkish, msg.Language)
}

func TestGenerateBatchSkipsAlreadyDrafted(t *testing.T) {
	ctx := context.Background()
	s := seededStore("a", "b")
	s.SetDraft("a", entity.GeneratedMessage{Subject: "existing"})

	drafter := new(MockDrafter)
	drafter.On("Draft", mock.Anything, mock.Anything, mock.MatchedBy(func(c entity.Customer) bool {
		return c.ID == "b"
	}), mock.Anything).Return(entity.GeneratedMessage{Subject: "fresh"}, nil)

	uc := NewGenerateUseCase(s, drafter, zerolog.Nop())
	report := uc.GenerateBatch(ctx, nil, entity.LanguageEnglish)

	assert.Equal(t, 1, report.Requested)
	drafter.AssertNumberOfCalls(t, "Draft", 1)

	msg, _ := s.Draft("a")
	assert.Equal(t, "existing", msg.Subject)
}

func TestGenerateBatchDeletedLeadDropped(t *testing.T) {
	ctx := context.Background()
	s := seededStore("a")

	drafter := new(MockDrafter)
	drafter.On("Draft", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			// The operator deletes the lead while generation is in flight.
			s.Delete("a")
		}).
		Return(entity.GeneratedMessage{Subject: "late"}, nil)

	uc := NewGenerateUseCase(s, drafter, zerolog.Nop())
	report := uc.GenerateBatch(ctx, []string{"a"}, entity.LanguageEnglish)

	assert.Equal(t, 1, report.Dropped)
	_, ok := s.Draft("a")
	assert.False(t, ok)
}

func TestRegenerateReplacesDraft(t *testing.T) {
	ctx := context.Background()
	s := seededStore("a")
	s.SetDraft("a", entity.GeneratedMessage{Subject: "old", Language: entity.LanguageEnglish})

	drafter := new(MockDrafter)
	drafter.On("Draft", mock.Anything, mock.Anything, mock.Anything, entity.LanguageTurkish).
		Return(entity.GeneratedMessage{Subject: "yeni", Language: entity.LanguageTurkish}, nil)

	uc := NewGenerateUseCase(s, drafter, zerolog.Nop())
	msg, err := uc.Regenerate(ctx, "a", entity.LanguageTurkish)

	require.NoError(t, err)
	assert.Equal(t, "yeni", msg.Subject)
	assert.Equal(t, entity.LanguageTurkish, msg.Language)
}

func TestRegenerateUnknownCustomer(t *testing.T) {
	uc := NewGenerateUseCase(seededStore(), new(MockDrafter), zerolog.Nop())

	_, err := uc.Regenerate(context.Background(), "ghost", entity.LanguageEnglish)

	require.Error(t, err)
	assert.True(t, IsDomainError(err))
}
