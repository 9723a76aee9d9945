package stats

import (
	"context"
	"sort"
	"sync"

	"github.com/ventureops/squad/core"
)

// ResponderUsage is the accumulated usage of one responder within a project.
type ResponderUsage struct {
	ResponderID string     `json:"responder_id"`
	Usage       core.Usage `json:"usage"`
	// Generations counts the recorded model invocations.
	Generations int `json:"generations"`
}

// ProjectTotals is the full usage picture for one project.
type ProjectTotals struct {
	ProjectID  string           `json:"project_id"`
	Total      core.Usage       `json:"total"`
	Responders []ResponderUsage `json:"responders"`
}

// Ledger is an in-process usage ledger. Safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	usage   map[string]map[string]*ResponderUsage // projectID -> responderID
	ordered map[string][]string                   // first-seen responder order
}

// NewLedger returns an empty usage ledger.
func NewLedger() *Ledger {
	return &Ledger{
		usage:   make(map[string]map[string]*ResponderUsage),
		ordered: make(map[string][]string),
	}
}

// Record accumulates one generation's usage for the responder within the
// project. A nil usage still counts the generation.
func (l *Ledger) Record(_ context.Context, projectID, responderID string, usage *core.Usage) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	byResponder, ok := l.usage[projectID]
	if !ok {
		byResponder = make(map[string]*ResponderUsage)
		l.usage[projectID] = byResponder
	}

	ru, ok := byResponder[responderID]
	if !ok {
		ru = &ResponderUsage{ResponderID: responderID}
		byResponder[responderID] = ru
		l.ordered[projectID] = append(l.ordered[projectID], responderID)
	}

	ru.Generations++
	if usage != nil {
		ru.Usage = ru.Usage.Add(*usage)
	}
	return nil
}

// ProjectTotals aggregates the project's usage by responder plus the grand
// total. Responders appear in the order they were first recorded. An
// unknown project yields empty totals, not an error.
func (l *Ledger) ProjectTotals(_ context.Context, projectID string) (*ProjectTotals, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totals := &ProjectTotals{
		ProjectID:  projectID,
		Responders: make([]ResponderUsage, 0),
	}
	for _, responderID := range l.ordered[projectID] {
		ru := l.usage[projectID][responderID]
		totals.Responders = append(totals.Responders, *ru)
		totals.Total = totals.Total.Add(ru.Usage)
	}
	return totals, nil
}

// Projects returns the ids of every project with recorded usage, sorted.
func (l *Ledger) Projects(_ context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.usage))
	for id := range l.usage {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
