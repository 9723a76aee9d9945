package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ventureops/squad/core"
)

// InMemoryStore is a volatile project/conversation store keeping records in
// process-local maps. It is safe for concurrent access and best suited for
// tests or ephemeral demo servers. Each returned record is cloned to prevent
// external mutation of internal state.
type InMemoryStore struct {
	mu            sync.RWMutex
	projects      map[string]*Project
	conversations map[string]*Conversation
}

// NewInMemoryStore constructs an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		projects:      make(map[string]*Project),
		conversations: make(map[string]*Conversation),
	}
}

// CreateProject stores a new project and returns its record with id and
// timestamp assigned.
func (s *InMemoryStore) CreateProject(_ context.Context, name, description string, facts map[string]string) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &Project{
		ID:          core.NewID(),
		Name:        name,
		Description: description,
		Facts:       facts,
		CreatedAt:   time.Now().UTC(),
	}
	s.projects[p.ID] = p.Clone()
	return p, nil
}

// GetProject returns a clone of the project or ErrProjectNotFound.
func (s *InMemoryStore) GetProject(_ context.Context, id string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return p.Clone(), nil
}

// ListProjects returns all projects ordered by creation time, oldest first.
func (s *InMemoryStore) ListProjects(_ context.Context) ([]*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p.Clone())
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

// GetOrCreateConversation returns the identified conversation, or lazily
// creates one for the project when id is empty or unknown.
func (s *InMemoryStore) GetOrCreateConversation(_ context.Context, projectID, id string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if c, ok := s.conversations[id]; ok {
			return c.Clone(), nil
		}
	}

	now := time.Now().UTC()
	c := &Conversation{
		ID:        core.NewID(),
		ProjectID: projectID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.conversations[c.ID] = c
	return c.Clone(), nil
}

// GetConversation returns a clone of the conversation or
// ErrConversationNotFound.
func (s *InMemoryStore) GetConversation(_ context.Context, id string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return c.Clone(), nil
}

// AppendEntry adds a message to the conversation and stamps it with an id
// and timestamp. A non-empty responderID also becomes the conversation's
// last active responder.
func (s *InMemoryStore) AppendEntry(_ context.Context, conversationID string, entry Entry) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	entry.ID = core.NewID()
	entry.CreatedAt = time.Now().UTC()
	c.Entries = append(c.Entries, entry)
	c.UpdatedAt = entry.CreatedAt
	if entry.ResponderID != "" {
		c.LastResponder = entry.ResponderID
	}
	return &entry, nil
}
