package squad

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventureops/squad/model"
	"github.com/ventureops/squad/responder"
	"github.com/ventureops/squad/session"
)

func TestSquadEndToEnd(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("What's our competitive landscape?",
		"Three incumbents, none mobile-first.\n\nGO/NO-GO: GO")

	sq := New(func(o *Options) { o.Model = llm })
	ctx := context.Background()

	project, err := sq.CreateProject(ctx, "Acme Notes", "note-taking for teams", map[string]string{
		"target_audience": "remote teams",
	})
	require.NoError(t, err)

	result, err := sq.SendMessage(ctx, project.ID, "", "What's our competitive landscape?")
	require.NoError(t, err)

	assert.Equal(t, string(responder.Discovery), result.Turn.Outcome.ResponderID)
	require.Len(t, result.Turn.Artifacts, 1)
	assert.Equal(t, "Market Analysis: Acme Notes", result.Turn.Artifacts[0].Title)

	// Both sides of the exchange were persisted.
	conv, err := sq.Sessions().GetConversation(ctx, result.ConversationID)
	require.NoError(t, err)
	require.Len(t, conv.Entries, 2)
	assert.Equal(t, "user", conv.Entries[0].Role)
	assert.Equal(t, "assistant", conv.Entries[1].Role)
	assert.Equal(t, string(responder.Discovery), conv.LastResponder)

	// Usage landed in the ledger.
	totals, err := sq.Usage().ProjectTotals(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, totals.Responders, 1)
	assert.Equal(t, string(responder.Discovery), totals.Responders[0].ResponderID)
	assert.Positive(t, totals.Total.TotalTokens)
}

func TestSquadDelegationHandsConversationOver(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("kick off the project",
		"Starting.\n\nDELEGATE TO TECH LEAD: pick the stack.")

	sq := New(func(o *Options) { o.Model = llm })
	ctx := context.Background()

	project, err := sq.CreateProject(ctx, "Acme", "", nil)
	require.NoError(t, err)

	result, err := sq.SendMessage(ctx, project.ID, "", "kick off the project")
	require.NoError(t, err)

	assert.Equal(t, string(responder.ProjectManager), result.Turn.Outcome.ResponderID)
	assert.Equal(t, string(responder.TechLead), result.Turn.SuggestedNext)

	// The specialist owns the follow-up.
	conv, err := sq.Sessions().GetConversation(ctx, result.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, string(responder.TechLead), conv.LastResponder)

	comms, err := sq.Communications().ListByConversation(ctx, result.ConversationID)
	require.NoError(t, err)
	require.Len(t, comms, 2)
}

func TestSquadUnknownProject(t *testing.T) {
	sq := New()

	_, err := sq.SendMessage(context.Background(), "missing", "", "hello")
	assert.ErrorIs(t, err, session.ErrProjectNotFound)
}
