package comm

import (
	"context"
	"sync"

	"github.com/ventureops/squad/core"
)

// InMemoryStore is an in-process communication log. It only appends;
// records are never updated or removed. Safe for concurrent use.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []core.Communication
}

// NewInMemoryStore returns an empty in-memory communication log.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Save appends the communication and returns its id.
func (s *InMemoryStore) Save(_ context.Context, comm core.Communication) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if comm.ID == "" {
		comm.ID = core.NewID()
	}
	s.records = append(s.records, comm)
	return comm.ID, nil
}

// ListByProject returns the project's communications in insertion order.
func (s *InMemoryStore) ListByProject(_ context.Context, projectID string) ([]core.Communication, error) {
	return s.list(func(c core.Communication) bool { return c.ProjectID == projectID })
}

// ListByConversation returns the conversation's communications in insertion
// order.
func (s *InMemoryStore) ListByConversation(_ context.Context, conversationID string) ([]core.Communication, error) {
	return s.list(func(c core.Communication) bool { return c.ConversationID == conversationID })
}

func (s *InMemoryStore) list(keep func(core.Communication) bool) ([]core.Communication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Communication, 0)
	for _, c := range s.records {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}
