package orchestrator

import (
	"context"
	"fmt"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/responder"
)

// responseSummaryLimit caps the length of the response-category
// communication recorded when a delegate reports back.
const responseSummaryLimit = 500

// CommunicationStore persists inter-responder communication records. The
// orchestrator only appends; it never reads records back within a turn.
type CommunicationStore interface {
	Save(ctx context.Context, comm core.Communication) (string, error)
}

// ArtifactStore persists detected artifacts and returns their assigned id.
type ArtifactStore interface {
	Save(ctx context.Context, art core.Artifact) (string, error)
}

// Options configures an Orchestrator.
type Options struct {
	Logger logging.Logger
}

// Orchestrator routes turns, performs at most one delegation hop per turn,
// records the communication trail and merges outcomes. It is safe for
// concurrent use: distinct turns share only the registry, whose prompt
// overrides are atomic.
type Orchestrator struct {
	registry  *responder.Registry
	router    *Router
	detector  *Detector
	comms     CommunicationStore
	artifacts ArtifactStore
	logger    logging.Logger
}

// New constructs an Orchestrator over the given registry and stores.
func New(registry *responder.Registry, comms CommunicationStore, artifacts ArtifactStore, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Orchestrator{
		registry:  registry,
		router:    NewRouter(),
		detector:  NewDetector(),
		comms:     comms,
		artifacts: artifacts,
		logger:    opts.Logger,
	}
}

// TurnRequest is one user message plus the context it should be processed in.
type TurnRequest struct {
	ProjectID      string
	ConversationID string
	// Text is the user's current message.
	Text string
	// History is the prior conversation, oldest first.
	History []core.Message
	// Project is the business context for the turn.
	Project core.ProjectContext
	// PreviousResponder is the responder active on the last turn, if any.
	PreviousResponder string
}

// TurnResult is the merged output of a fully processed turn.
type TurnResult struct {
	// Outcome is the merged outcome: the primary responder's identity and
	// flags, with text and usage folded across the delegation hop if one
	// occurred.
	Outcome core.Outcome
	// SuggestedNext echoes the primary's delegation target so the caller can
	// keep the conversation with the specialist on the next turn.
	SuggestedNext string
	// Communications is the handoff trail recorded during the turn, in order.
	Communications []core.Communication
	// Artifacts lists artifacts persisted during the turn, ids assigned.
	Artifacts []core.Artifact
}

// ProcessTurn routes the message, invokes the selected responder, performs
// at most one delegation hop, and returns the merged result. An error from a
// responder invocation or the persistence boundary aborts the turn; records
// already committed stand.
func (o *Orchestrator) ProcessTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	primaryID := o.router.Select(req.PreviousResponder, req.Text)
	o.logger.Info("turn.routing", "project", req.ProjectID, "responder", string(primaryID))

	primary, ok := o.registry.Get(primaryID)
	if !ok {
		// Router.Select is total over the registry's id set.
		return nil, fmt.Errorf("router selected unknown responder: %s", primaryID)
	}

	tc := core.TurnContext{
		Text:    req.Text,
		History: req.History,
		Project: req.Project,
	}

	outcome, err := primary.Process(ctx, tc)
	if err != nil {
		return nil, fmt.Errorf("responder %s: %w", primaryID, err)
	}

	result := &TurnResult{
		Outcome:       *outcome,
		SuggestedNext: outcome.DelegateTo,
	}

	if err := o.delegate(ctx, req, tc, outcome, result); err != nil {
		return nil, err
	}

	// The primary's own text may itself carry a deliverable.
	if art := o.detector.Detect(outcome.Text, outcome.ResponderID, req.Project); art != nil {
		if _, err := o.storeArtifact(ctx, req.ProjectID, art, result); err != nil {
			return nil, err
		}
	}

	o.logger.Info("turn.done",
		"project", req.ProjectID,
		"responder", outcome.ResponderID,
		"delegated", result.Outcome.Text != outcome.Text,
		"escalate", result.Outcome.Escalate,
	)

	return result, nil
}

// delegate performs the single optional delegation hop. An unknown or
// self-referential target is a silent no-op, leaving the merged outcome
// equal to the primary outcome.
func (o *Orchestrator) delegate(ctx context.Context, req TurnRequest, tc core.TurnContext, primary *core.Outcome, result *TurnResult) error {
	targetID := responder.ID(primary.DelegateTo)
	if targetID == "" {
		return nil
	}

	target, ok := o.registry.Get(targetID)
	if !ok || primary.DelegateTo == primary.ResponderID {
		o.logger.Debug("turn.delegation.skipped", "target", primary.DelegateTo)
		return nil
	}

	o.logger.Info("turn.delegating", "from", primary.ResponderID, "to", string(targetID))

	handoff := core.NewCommunication(
		req.ProjectID, req.ConversationID,
		primary.ResponderID, string(targetID),
		core.CommDelegation,
		delegationMessage(targetID, req.Project),
	)
	if err := o.saveCommunication(ctx, handoff, result); err != nil {
		return err
	}

	// The delegate reasons from the original turn context, not from the
	// primary's generated text.
	delegated, err := target.Process(ctx, tc)
	if err != nil {
		return fmt.Errorf("responder %s: %w", targetID, err)
	}

	report := core.NewCommunication(
		req.ProjectID, req.ConversationID,
		string(targetID), primary.ResponderID,
		core.CommResponse,
		truncate(delegated.Text, responseSummaryLimit),
	)
	if err := o.saveCommunication(ctx, report, result); err != nil {
		return err
	}

	if art := o.detector.Detect(delegated.Text, delegated.ResponderID, req.Project); art != nil {
		artifactID, err := o.storeArtifact(ctx, req.ProjectID, art, result)
		if err != nil {
			return err
		}

		created := core.NewCommunication(
			req.ProjectID, req.ConversationID,
			delegated.ResponderID, primary.ResponderID,
			core.CommArtifactCreated,
			fmt.Sprintf("Artifact created: %s", art.Title),
		)
		created.ArtifactID = artifactID
		if err := o.saveCommunication(ctx, created, result); err != nil {
			return err
		}
	}

	// Merge: concatenation, not replacement. The delegate's own delegation
	// target, if any, is ignored; there is never a second hop.
	result.Outcome.Text = combineResponses(primary.Text, delegated.Text, delegated.ResponderName)
	result.Outcome.Usage = core.MergeUsage(primary.Usage, delegated.Usage)

	return nil
}

// storeArtifact persists the artifact for the project and appends the stored
// record to the result.
func (o *Orchestrator) storeArtifact(ctx context.Context, projectID string, art *core.Artifact, result *TurnResult) (string, error) {
	art.ProjectID = projectID

	id, err := o.artifacts.Save(ctx, *art)
	if err != nil {
		return "", fmt.Errorf("store artifact: %w", err)
	}
	art.ID = id

	o.logger.Info("turn.artifact", "type", string(art.Type), "title", art.Title, "by", art.CreatedBy)
	result.Artifacts = append(result.Artifacts, *art)
	return id, nil
}

// saveCommunication persists the record and appends it to the result trail.
func (o *Orchestrator) saveCommunication(ctx context.Context, comm core.Communication, result *TurnResult) error {
	if _, err := o.comms.Save(ctx, comm); err != nil {
		return fmt.Errorf("store communication: %w", err)
	}
	result.Communications = append(result.Communications, comm)
	return nil
}

// delegationMessage renders the templated handoff note for the target,
// parameterized with the project name.
func delegationMessage(target responder.ID, project core.ProjectContext) string {
	name := project.Name
	if name == "" {
		name = "Project"
	}

	switch target {
	case responder.Discovery:
		return fmt.Sprintf("Handing off market validation for '%s'. Analyze the target audience and market opportunity.", name)
	case responder.Delivery:
		return fmt.Sprintf("Handing off requirements work for '%s'. Draft user stories and define the MVP scope.", name)
	case responder.TechLead:
		return fmt.Sprintf("Handing off technical planning for '%s'. Define the stack and architecture.", name)
	default:
		return fmt.Sprintf("Handing off '%s' for further elaboration.", name)
	}
}

// combineResponses appends the delegate's text to the primary's under the
// delegate's display name.
func combineResponses(primary, delegated, delegateName string) string {
	return fmt.Sprintf("%s\n\n---\n\n**%s:**\n\n%s", primary, delegateName, delegated)
}

// truncate shortens text to at most limit runes, marking the cut with an
// ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
