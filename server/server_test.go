package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventureops/squad/artifact"
	"github.com/ventureops/squad/comm"
	"github.com/ventureops/squad/model"
	"github.com/ventureops/squad/orchestrator"
	"github.com/ventureops/squad/responder"
	"github.com/ventureops/squad/session"
	"github.com/ventureops/squad/stats"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type testStack struct {
	server *Server
	llm    *model.MockModel
}

func newTestStack() *testStack {
	llm := model.NewMockModel("test")
	registry := responder.NewRegistry(llm, nil)
	comms := comm.NewInMemoryStore()
	artifacts := artifact.NewInMemoryStore()
	sessions := session.NewInMemoryStore()
	ledger := stats.NewLedger()
	orch := orchestrator.New(registry, comms, artifacts)

	return &testStack{
		server: New(orch, registry, sessions, artifacts, comms, ledger),
		llm:    llm,
	}
}

func (ts *testStack) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (ts *testStack) createProject(t *testing.T, name string) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/projects", gin.H{
		"name":        name,
		"description": "a test project",
		"facts":       map[string]string{"budget": "$50k"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[session.Project](t, w).ID
}

func TestHealthz(t *testing.T) {
	ts := newTestStack()

	w := ts.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	ts := newTestStack()

	id := ts.createProject(t, "Acme Notes")

	w := ts.do(t, http.MethodGet, "/api/projects/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[session.Project](t, w)
	assert.Equal(t, "Acme Notes", p.Name)
	assert.Equal(t, "$50k", p.Facts["budget"])

	w = ts.do(t, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	w = ts.do(t, http.MethodGet, "/api/projects/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/api/projects", gin.H{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatMessageRunsATurn(t *testing.T) {
	ts := newTestStack()
	projectID := ts.createProject(t, "Acme Notes")

	ts.llm.AddResponse("What's our competitive landscape?",
		"Crowded but fragmented.\n\nGO/NO-GO: GO")

	w := ts.do(t, http.MethodPost, "/api/chat/message", gin.H{
		"project_id": projectID,
		"message":    "What's our competitive landscape?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[chatMessageResponse](t, w)
	assert.Equal(t, string(responder.Discovery), resp.ResponderID)
	assert.NotEmpty(t, resp.ConversationID)
	assert.Contains(t, resp.Response, "GO/NO-GO")
	require.NotNil(t, resp.Usage)
	assert.Equal(t, resp.Usage.InputTokens+resp.Usage.OutputTokens, resp.Usage.TotalTokens)
	require.Len(t, resp.Artifacts, 1)
	assert.Equal(t, "Market Analysis: Acme Notes", resp.Artifacts[0].Title)

	// The artifact and usage are queryable afterwards.
	w = ts.do(t, http.MethodGet, "/api/artifacts/"+projectID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "market_analysis")

	w = ts.do(t, http.MethodGet, "/api/artifacts/item/"+resp.Artifacts[0].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/stats/tokens/"+projectID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	totals := decode[stats.ProjectTotals](t, w)
	assert.Equal(t, resp.Usage.TotalTokens, totals.Total.TotalTokens)
}

func TestChatMessageStaysWithResponder(t *testing.T) {
	ts := newTestStack()
	projectID := ts.createProject(t, "Acme")

	ts.llm.AddResponse("run some market research please", "On it.")
	ts.llm.AddResponse("and the pricing?", "Here is the pricing picture.")

	w := ts.do(t, http.MethodPost, "/api/chat/message", gin.H{
		"project_id": projectID,
		"message":    "run some market research please",
	})
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[chatMessageResponse](t, w)
	assert.Equal(t, string(responder.Discovery), first.ResponderID)

	// No keyword in the follow-up: the conversation stays with Discovery.
	w = ts.do(t, http.MethodPost, "/api/chat/message", gin.H{
		"project_id":      projectID,
		"conversation_id": first.ConversationID,
		"message":         "and the pricing?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[chatMessageResponse](t, w)
	assert.Equal(t, first.ConversationID, second.ConversationID)
	assert.Equal(t, string(responder.Discovery), second.ResponderID)
}

func TestChatMessageDelegationTrail(t *testing.T) {
	ts := newTestStack()
	projectID := ts.createProject(t, "Acme")

	// The PM hands the turn to Discovery; both see the same user text.
	ts.llm.AddResponse("kick off the project",
		"Starting up.\n\nDELEGATE TO DISCOVERY: validate the market first.")

	w := ts.do(t, http.MethodPost, "/api/chat/message", gin.H{
		"project_id": projectID,
		"message":    "kick off the project",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[chatMessageResponse](t, w)
	assert.Equal(t, string(responder.ProjectManager), resp.ResponderID)
	assert.Equal(t, string(responder.Discovery), resp.SuggestedNext)
	assert.Contains(t, resp.Response, "**Discovery Expert:**")
	require.Len(t, resp.Communications, 2)

	w = ts.do(t, http.MethodGet, "/api/communications/"+projectID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "delegation")
	assert.Contains(t, w.Body.String(), "response")
}

func TestChatMessageUnknownProject(t *testing.T) {
	ts := newTestStack()

	w := ts.do(t, http.MethodPost, "/api/chat/message", gin.H{
		"project_id": "missing",
		"message":    "hello",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatMessageValidation(t *testing.T) {
	ts := newTestStack()

	w := ts.do(t, http.MethodPost, "/api/chat/message", gin.H{"project_id": "p1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResponderListing(t *testing.T) {
	ts := newTestStack()

	w := ts.do(t, http.MethodGet, "/api/responders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Responders []responderInfo `json:"responders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Responders, 5)
	assert.Equal(t, string(responder.ProjectManager), out.Responders[0].ID)
}

func TestPromptConfiguration(t *testing.T) {
	ts := newTestStack()
	path := fmt.Sprintf("/api/responders/prompts/%s", responder.Discovery)

	w := ts.do(t, http.MethodGet, "/api/responders/prompts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPut, path, gin.H{"prompt": "You validate markets. Be blunt."})
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[responder.PromptInfo](t, w)
	assert.True(t, info.OverrideActive)

	w = ts.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	info = decode[responder.PromptInfo](t, w)
	require.NotNil(t, info.Override)
	assert.Equal(t, "You validate markets. Be blunt.", *info.Override)

	w = ts.do(t, http.MethodPost, path+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	info = decode[responder.PromptInfo](t, w)
	assert.False(t, info.OverrideActive)

	w = ts.do(t, http.MethodPut, "/api/responders/prompts/marketing_agent", gin.H{"prompt": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPut, path, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
