package core

import (
	"context"

	"github.com/google/uuid"
)

// NewID generates a unique identifier for records created by the squad
// packages (communications, artifacts, conversations, usage entries).
func NewID() string { return uuid.NewString() }

// Message is a single conversation history entry: who said it and what was
// said. Role follows the chat convention ("user" or "assistant").
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ProjectContext carries the business facts a responder should reason
// against. Name and Description are first-class because they parameterize
// delegation messages and artifact titles; everything else rides in Facts as
// free-form key/value pairs (goals, audience, revenue and cost estimates,
// priorities).
type ProjectContext struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Facts       map[string]string `json:"facts,omitempty"`
}

// Empty reports whether no project context is available at all.
func (p ProjectContext) Empty() bool {
	return p.Name == "" && p.Description == "" && len(p.Facts) == 0
}

// TurnContext is the immutable input for one conversational turn. The caller
// constructs it fresh per turn; responders never mutate it. When a turn is
// delegated, the delegate receives this same context, not the primary
// responder's output.
type TurnContext struct {
	// Text is the user's current message.
	Text string
	// History is the ordered prior conversation. Responders retain only the
	// most recent entries (see responder.MaxHistoryMessages).
	History []Message
	// Project is the business context for the active project.
	Project ProjectContext
}

// Responder is the capability contract every specialist satisfies. Process is
// pure with respect to its inputs except for consulting the external
// text-generation service; transport or model errors propagate unchanged and
// are never retried here.
type Responder interface {
	// ID returns the stable identifier used for routing and record keeping.
	ID() string
	// Name returns the human-facing display name.
	Name() string
	// Role returns a short role label describing the responder's mandate.
	Role() string
	// Process runs one turn and returns the responder's outcome.
	Process(ctx context.Context, tc TurnContext) (*Outcome, error)
}
