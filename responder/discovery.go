package responder

import (
	"context"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
)

// DiscoveryResponder validates business ideas: market sizing, competitor
// analysis and go/no-go recommendations. It is a terminal specialist: it
// never escalates or delegates.
type DiscoveryResponder struct {
	base
}

// NewDiscovery constructs the Discovery responder.
func NewDiscovery(llm model.Model, logger logging.Logger) *DiscoveryResponder {
	return &DiscoveryResponder{
		base: newBase(
			Discovery,
			"Discovery Expert",
			"Validates business ideas and conducts market research",
			discoveryPrompt,
			llm,
			logger,
		),
	}
}

// Process implements core.Responder.
func (r *DiscoveryResponder) Process(ctx context.Context, tc core.TurnContext) (*core.Outcome, error) {
	resp, err := r.generate(ctx, tc)
	if err != nil {
		return nil, err
	}

	return &core.Outcome{
		ResponderID:   r.ID(),
		ResponderName: r.Name(),
		Text:          resp.Text,
		Usage:         usageOf(resp.Usage),
	}, nil
}
