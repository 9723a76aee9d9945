package responder

import (
	"context"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
)

// BusinessResponder acts as CPO/CRO: product strategy, unit economics and
// autonomous business decisions, escalating the rest to the CEO.
type BusinessResponder struct {
	base
}

// NewBusiness constructs the Business responder.
func NewBusiness(llm model.Model, logger logging.Logger) *BusinessResponder {
	return &BusinessResponder{
		base: newBase(
			Business,
			"Business Agent (CPO)",
			"CPO/CRO - Chief Product & Revenue Officer",
			businessPrompt,
			llm,
			logger,
		),
	}
}

// Process implements core.Responder.
func (r *BusinessResponder) Process(ctx context.Context, tc core.TurnContext) (*core.Outcome, error) {
	resp, err := r.generate(ctx, tc)
	if err != nil {
		return nil, err
	}

	return &core.Outcome{
		ResponderID:   r.ID(),
		ResponderName: r.Name(),
		Text:          resp.Text,
		Escalate:      businessEscalationRules.Match(resp.Text),
		DelegateTo:    string(businessDelegationRules.Classify(resp.Text)),
		Usage:         usageOf(resp.Usage),
	}, nil
}
