package responder

import (
	"context"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
)

// TechLeadResponder owns technical decisions: stack, architecture and
// implementation planning. Terminal specialist: never escalates or delegates.
type TechLeadResponder struct {
	base
}

// NewTechLead constructs the Tech Lead responder.
func NewTechLead(llm model.Model, logger logging.Logger) *TechLeadResponder {
	return &TechLeadResponder{
		base: newBase(
			TechLead,
			"Tech Lead",
			"Technical decisions, architecture, technology stack",
			techLeadPrompt,
			llm,
			logger,
		),
	}
}

// Process implements core.Responder.
func (r *TechLeadResponder) Process(ctx context.Context, tc core.TurnContext) (*core.Outcome, error) {
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
