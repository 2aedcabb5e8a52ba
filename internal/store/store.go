// Package store owns every collection the service mutates: the active
// working set of leads, their generated drafts, and the read-only archive.
// One RWMutex guards all of it; handlers run concurrently and the archive
// transition must be all-or-nothing from any observer's point of view.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
)

// GenerationToken identifies one dispatched draft-generation call. The
// write-back is applied only while the customer is still in the working set
// and no newer generation has been started for it, which turns the old
// "silent drop on stale id" race into an explicit, testable rule.
type GenerationToken struct {
	CustomerID string
	Epoch      uint64
	RequestID  string
}

type Store struct {
	mu sync.RWMutex

	customers map[string]entity.Customer
	order     []string // insertion order for stable listings
	drafts    map[string]entity.GeneratedMessage
	epochs    map[string]uint64
	archive   []entity.ArchiveEntry

	genCtx entity.GenerationContext
}

func New(genCtx entity.GenerationContext) *Store {
	return &Store{
		customers: make(map[string]entity.Customer),
		drafts:    make(map[string]entity.GeneratedMessage),
		epochs:    make(map[string]uint64),
		genCtx:    genCtx,
	}
}

// AddCustomers appends new leads to the working set and returns how many
// were added. IDs already present (active or archived) are skipped; ids are
// never reused.
func (s *Store) AddCustomers(customers []entity.Customer) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, c := range customers {
		if _, exists := s.customers[c.ID]; exists {
			continue
		}
		if s.archivedIndex(c.ID) >= 0 {
			continue
		}
		s.customers[c.ID] = c
		s.order = append(s.order, c.ID)
		added++
	}
	return added
}

// Customers lists the working set in insertion order.
func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Customer, 0, len(s.order))
	for _, id := range s.order {
		if c, ok := s.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) Customer(id string) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	return c, ok
}

// Delete removes a lead and its draft from the working set. Any in-flight
// generation for it becomes inert: its token can no longer complete.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return false
	}
	s.dropLocked(id)
	return true
}

// SetDraft stores the message for a customer id, replacing any previous
// draft wholesale. The store is a passive holder; liveness checks belong
// to CompleteGeneration.
func (s *Store) SetDraft(id string, msg entity.GeneratedMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = msg
}

func (s *Store) Draft(id string) (entity.GeneratedMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.drafts[id]
	return m, ok
}

func (s *Store) ClearDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// BeginGeneration registers a new generation attempt for a live customer
// and returns its token. Starting a new attempt invalidates any older
// in-flight token for the same id.
func (s *Store) BeginGeneration(id string) (GenerationToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return GenerationToken{}, false
	}
	s.epochs[id]++
	return GenerationToken{
		CustomerID: id,
		Epoch:      s.epochs[id],
		RequestID:  uuid.New().String(),
	}, true
}

// CompleteGeneration applies the generated message if and only if the
// customer is still present and the token's epoch is current. A stale or
// orphaned completion is dropped and reported as false.
func (s *Store) CompleteGeneration(token GenerationToken, msg entity.GeneratedMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[token.CustomerID]; !ok {
		return false
	}
	if s.epochs[token.CustomerID] != token.Epoch {
		return false
	}
	s.drafts[token.CustomerID] = msg
	return true
}

// Archive moves a customer and its draft from the working set into the
// archive in one step. Missing customer or missing draft makes it a no-op,
// mirroring how the operator UI only offers archiving for drafted leads.
func (s *Store) Archive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return false
	}
	msg, ok := s.drafts[id]
	if !ok {
		return false
	}

	s.archive = append(s.archive, entity.ArchiveEntry{
		Customer:   c,
		Message:    msg,
		ArchivedAt: time.Now(),
	})
	s.dropLocked(id)
	return true
}

// ArchiveEntries lists the archive oldest-first.
func (s *Store) ArchiveEntries() []entity.ArchiveEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.ArchiveEntry, len(s.archive))
	copy(out, s.archive)
	return out
}

// RemoveArchived deletes an archive entry permanently. No tombstone.
func (s *Store) RemoveArchived(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.archivedIndex(id)
	if idx < 0 {
		return false
	}
	s.archive = append(s.archive[:idx], s.archive[idx+1:]...)
	return true
}

func (s *Store) GenerationContext() entity.GenerationContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.genCtx
}

// SetGenerationContext takes effect immediately for subsequent generations;
// already stored drafts keep the context they were written with.
func (s *Store) SetGenerationContext(ctx entity.GenerationContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genCtx = ctx
}

func (s *Store) dropLocked(id string) {
	delete(s.customers, id)
	delete(s.drafts, id)
	delete(s.epochs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) archivedIndex(id string) int {
	for i, e := range s.archive {
		if e.Customer.ID == id {
			return i
		}
	}
	return -1
}
