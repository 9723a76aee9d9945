package artifact

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ventureops/squad/core"
)

// InMemoryStore is an in-process artifact store useful for tests, examples
// and single-process deployments. Records are guarded by an RWMutex and
// copied on save and retrieval to avoid accidental external mutation.
//
// It does not enforce retention limits or eviction. For durability across
// restarts, supply a database-backed implementation instead.
type InMemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string]core.Artifact
}

// NewInMemoryStore returns an empty in-memory artifact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{artifacts: make(map[string]core.Artifact)}
}

// Save stores the artifact, assigning an id and creation timestamp when
// absent, and returns the id.
func (s *InMemoryStore) Save(_ context.Context, art core.Artifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if art.ID == "" {
		art.ID = core.NewID()
	}
	if art.CreatedAt.IsZero() {
		art.CreatedAt = time.Now().UTC()
	}
	s.artifacts[art.ID] = art
	return art.ID, nil
}

// Get returns the stored artifact or ErrNotFound.
func (s *InMemoryStore) Get(_ context.Context, id string) (*core.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	art, ok := s.artifacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &art, nil
}

// ListByProject returns the project's artifacts ordered by creation time,
// oldest first. The slice is a snapshot safe for caller mutation.
func (s *InMemoryStore) ListByProject(_ context.Context, projectID string) ([]core.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artifacts := make([]core.Artifact, 0)
	for _, art := range s.artifacts {
		if art.ProjectID == projectID {
			artifacts = append(artifacts, art)
		}
	}
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].CreatedAt.Before(artifacts[j].CreatedAt)
	})
	return artifacts, nil
}
