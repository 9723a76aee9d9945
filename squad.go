// Package squad provides a high-level façade over the orchestration core
// and its services (sessions, artifacts, communications, usage & logging)
// for running an AI product squad. Most applications interact with this
// package by:
//  1. Creating a Squad via New() with a model backend (optionally overriding
//     default in-memory stores)
//  2. Creating a project and sending chat messages via SendMessage
//  3. Reading back artifacts, communications and usage through the stores
//
// The façade delegates turn handling to orchestrator.Orchestrator while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a real
// model backend and a structured logger.
package squad

import (
	"context"

	"github.com/ventureops/squad/artifact"
	"github.com/ventureops/squad/comm"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
	"github.com/ventureops/squad/orchestrator"
	"github.com/ventureops/squad/responder"
	"github.com/ventureops/squad/session"
	"github.com/ventureops/squad/stats"
)

// Options configures the Squad instance.
type Options struct {
	// Model is the generation backend shared by all responders. Defaults to
	// the deterministic mock model, which is only useful for tests and demos.
	Model model.Model

	// Stores (default to in-memory implementations if not provided).
	Sessions  *session.InMemoryStore
	Artifacts *artifact.InMemoryStore
	Comms     *comm.InMemoryStore
	Usage     *stats.Ledger

	// Logger defaults to the NoOp logger if nil.
	Logger logging.Logger
}

// Squad is the high-level façade aggregating the orchestrator and services.
type Squad struct {
	opts     Options
	registry *responder.Registry
	orch     *orchestrator.Orchestrator
}

// New creates a Squad with optional overrides. Any unset service is
// initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Squad {
	opts := Options{
		Model:     model.NewMockModel("mock"),
		Sessions:  session.NewInMemoryStore(),
		Artifacts: artifact.NewInMemoryStore(),
		Comms:     comm.NewInMemoryStore(),
		Usage:     stats.NewLedger(),
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry := responder.NewRegistry(opts.Model, opts.Logger)
	orch := orchestrator.New(registry, opts.Comms, opts.Artifacts, func(o *orchestrator.Options) {
		o.Logger = opts.Logger
	})

	return &Squad{opts: opts, registry: registry, orch: orch}
}

// Registry exposes the responder set, e.g. for prompt configuration.
func (s *Squad) Registry() *responder.Registry { return s.registry }

// Sessions exposes the project/conversation store.
func (s *Squad) Sessions() *session.InMemoryStore { return s.opts.Sessions }

// Artifacts exposes the artifact store.
func (s *Squad) Artifacts() *artifact.InMemoryStore { return s.opts.Artifacts }

// Communications exposes the communication log.
func (s *Squad) Communications() *comm.InMemoryStore { return s.opts.Comms }

// Usage exposes the token usage ledger.
func (s *Squad) Usage() *stats.Ledger { return s.opts.Usage }

// CreateProject stores a new project the squad can work on.
func (s *Squad) CreateProject(ctx context.Context, name, description string, facts map[string]string) (*session.Project, error) {
	return s.opts.Sessions.CreateProject(ctx, name, description, facts)
}

// ChatResult is the outcome of one SendMessage call.
type ChatResult struct {
	ConversationID string
	Turn           *orchestrator.TurnResult
}

// SendMessage runs one full conversational turn against a project: it loads
// the project context and conversation history, routes the message through
// the orchestrator, persists both sides of the exchange and accounts token
// usage. An empty conversationID starts a new conversation.
func (s *Squad) SendMessage(ctx context.Context, projectID, conversationID, text string) (*ChatResult, error) {
	project, err := s.opts.Sessions.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	conv, err := s.opts.Sessions.GetOrCreateConversation(ctx, project.ID, conversationID)
	if err != nil {
		return nil, err
	}
	history := conv.History()

	if _, err := s.opts.Sessions.AppendEntry(ctx, conv.ID, session.Entry{
		Role:    "user",
		Content: text,
	}); err != nil {
		return nil, err
	}

	result, err := s.orch.ProcessTurn(ctx, orchestrator.TurnRequest{
		ProjectID:         project.ID,
		ConversationID:    conv.ID,
		Text:              text,
		History:           history,
		Project:           project.Context(),
		PreviousResponder: conv.LastResponder,
	})
	if err != nil {
		return nil, err
	}

	nextResponder := result.Outcome.ResponderID
	if result.SuggestedNext != "" && responder.ID(result.SuggestedNext).Valid() {
		nextResponder = result.SuggestedNext
	}

	if _, err := s.opts.Sessions.AppendEntry(ctx, conv.ID, session.Entry{
		Role:        "assistant",
		Content:     result.Outcome.Text,
		ResponderID: nextResponder,
		Usage:       result.Outcome.Usage,
	}); err != nil {
		return nil, err
	}

	if err := s.opts.Usage.Record(ctx, project.ID, result.Outcome.ResponderID, result.Outcome.Usage); err != nil {
		return nil, err
	}

	return &ChatResult{ConversationID: conv.ID, Turn: result}, nil
}
