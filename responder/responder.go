package responder

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
)

// MaxHistoryMessages is the number of trailing conversation entries included
// verbatim in every model request.
const MaxHistoryMessages = 20

// ID is the stable identifier of a responder variant.
type ID string

const (
	// ProjectManager coordinates the other responders and reviews quality.
	ProjectManager ID = "project_manager_agent"
	// Business owns product strategy and unit economics (CPO/CRO).
	Business ID = "business_agent"
	// Discovery validates ideas and researches markets and competitors.
	Discovery ID = "discovery_agent"
	// Delivery turns validated ideas into requirements and user stories.
	Delivery ID = "delivery_agent"
	// TechLead owns stack and architecture decisions.
	TechLead ID = "tech_lead_agent"
)

// AllIDs returns the responder identifiers in their fixed enumeration order.
// Routing and delegation tie-breaks follow this order.
func AllIDs() []ID {
	return []ID{ProjectManager, Business, Discovery, Delivery, TechLead}
}

// Valid reports whether the id names one of the five known responders.
func (id ID) Valid() bool {
	switch id {
	case ProjectManager, Business, Discovery, Delivery, TechLead:
		return true
	}
	return false
}

// base bundles the identity, prompt state and model access shared by every
// variant. The prompt override is a single atomic field: concurrent readers
// observe either the old or the new value, last writer wins.
type base struct {
	id            ID
	name          string
	role          string
	defaultPrompt string
	override      atomic.Pointer[string]
	llm           model.Model
	logger        logging.Logger
}

func newBase(id ID, name, role, defaultPrompt string, llm model.Model, logger logging.Logger) base {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return base{
		id:            id,
		name:          name,
		role:          role,
		defaultPrompt: defaultPrompt,
		llm:           llm,
		logger:        logger,
	}
}

// ID implements core.Responder.
func (b *base) ID() string { return string(b.id) }

// Name implements core.Responder.
func (b *base) Name() string { return b.name }

// Role implements core.Responder.
func (b *base) Role() string { return b.role }

// DefaultPrompt returns the built-in system prompt for this responder.
func (b *base) DefaultPrompt() string { return b.defaultPrompt }

// ActivePrompt returns the operator override when set, else the default.
func (b *base) ActivePrompt() string {
	if p := b.override.Load(); p != nil {
		return *p
	}
	return b.defaultPrompt
}

// setOverride atomically swaps the prompt override. nil restores the default.
func (b *base) setOverride(prompt *string) {
	if prompt == nil {
		b.override.Store(nil)
		return
	}
	cp := *prompt
	b.override.Store(&cp)
}

// overridePrompt returns the current override or nil when the default is active.
func (b *base) overridePrompt() *string {
	if p := b.override.Load(); p != nil {
		cp := *p
		return &cp
	}
	return nil
}

// generate assembles the message sequence for the turn and submits it with
// the active prompt. Model errors propagate unchanged; the core never retries.
func (b *base) generate(ctx context.Context, tc core.TurnContext) (*model.Response, error) {
	req := model.Request{
		System:   b.ActivePrompt(),
		Messages: buildMessages(tc),
	}

	b.logger.Debug("responder.generate", "responder", string(b.id), "messages", len(req.Messages))

	resp, err := b.llm.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	b.logger.Info("responder.generated",
		"responder", string(b.id),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)

	return resp, nil
}

// buildMessages produces the message sequence every variant submits: an
// optional synthetic exchange summarizing the project context, up to the last
// MaxHistoryMessages history entries verbatim, then the current user text.
func buildMessages(tc core.TurnContext) []model.Message {
	var messages []model.Message

	if !tc.Project.Empty() {
		messages = append(messages,
			model.Message{Role: "user", Content: "[PROJECT CONTEXT]\n" + FormatProjectContext(tc.Project)},
			model.Message{Role: "assistant", Content: "I've reviewed the project context. How can I help with this project?"},
		)
	}

	history := tc.History
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}
	for _, msg := range history {
		messages = append(messages, model.Message{Role: msg.Role, Content: msg.Content})
	}

	if tc.Text != "" {
		messages = append(messages, model.Message{Role: "user", Content: tc.Text})
	}

	return messages
}

// FormatProjectContext renders the project context as the plain-text summary
// embedded in the synthetic context exchange. Facts are emitted in sorted key
// order so the rendering is deterministic.
func FormatProjectContext(p core.ProjectContext) string {
	if p.Empty() {
		return "No project context available."
	}

	var parts []string
	if p.Name != "" {
		parts = append(parts, fmt.Sprintf("Project: %s", p.Name))
	}
	if p.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", p.Description))
	}

	keys := make([]string, 0, len(p.Facts))
	for k := range p.Facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, p.Facts[k]))
	}

	return strings.Join(parts, "\n")
}

// usageOf converts a provider token tally into the core accounting record.
func usageOf(u model.TokenUsage) *core.Usage {
	return &core.Usage{
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		TotalTokens:  u.TotalTokens,
	}
}
