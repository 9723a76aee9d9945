package responder

import (
	"context"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
)

// DeliveryResponder turns validated ideas into requirements, user stories
// and MVP scope. Terminal specialist: never escalates or delegates.
type DeliveryResponder struct {
	base
}

// NewDelivery constructs the Delivery responder.
func NewDelivery(llm model.Model, logger logging.Logger) *DeliveryResponder {
	return &DeliveryResponder{
		base: newBase(
			Delivery,
			"Delivery Expert",
			"Requirements, user stories, PRD, product specifications",
			deliveryPrompt,
			llm,
			logger,
		),
	}
}

// Process implements core.Responder.
func (r *DeliveryResponder) Process(ctx context.Context, tc core.TurnContext) (*core.Outcome, error) {
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
