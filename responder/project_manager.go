package responder

import (
	"context"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
)

// ProjectManagerResponder coordinates the other responders, reviews their
// output and escalates critical decisions. It is the default responder for a
// turn with no routing signal.
type ProjectManagerResponder struct {
	base
}

// NewProjectManager constructs the Project Manager responder.
func NewProjectManager(llm model.Model, logger logging.Logger) *ProjectManagerResponder {
	return &ProjectManagerResponder{
		base: newBase(
			ProjectManager,
			"Project Manager",
			"Coordinates responders, reviews quality, ensures project alignment",
			projectManagerPrompt,
			llm,
			logger,
		),
	}
}

// Process implements core.Responder. The PM's generated text is scanned for
// coordination commands: escalation markers set the escalation flag and
// delegation commands select the handoff target.
func (r *ProjectManagerResponder) Process(ctx context.Context, tc core.TurnContext) (*core.Outcome, error) {
	resp, err := r.generate(ctx, tc)
	if err != nil {
		return nil, err
	}

	return &core.Outcome{
		ResponderID:   r.ID(),
		ResponderName: r.Name(),
		Text:          resp.Text,
		Escalate:      pmEscalationRules.Match(resp.Text),
		DelegateTo:    string(pmDelegationRules.Classify(resp.Text)),
		Usage:         usageOf(resp.Usage),
	}, nil
}
