package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/orchestrator"
	"github.com/ventureops/squad/responder"
	"github.com/ventureops/squad/session"
)

type createProjectRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Facts       map[string]string `json:"facts"`
}

func (s *Server) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err)
		return
	}

	p, err := s.sessions.CreateProject(c.Request.Context(), req.Name, req.Description, req.Facts)
	if err != nil {
		notFoundOr(c, err)
		return
	}

	s.logger.Info("project.created", "project", p.ID, "name", p.Name)
	c.JSON(http.StatusCreated, p)
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.sessions.ListProjects(c.Request.Context())
	if err != nil {
		notFoundOr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) getProject(c *gin.Context) {
	p, err := s.sessions.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundOr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type chatMessageRequest struct {
	ProjectID      string `json:"project_id" binding:"required"`
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

type chatMessageResponse struct {
	ConversationID string               `json:"conversation_id"`
	ResponderID    string               `json:"responder_id"`
	ResponderName  string               `json:"responder_name"`
	Response       string               `json:"response"`
	Escalate       bool                 `json:"escalate"`
	SuggestedNext  string               `json:"suggested_next,omitempty"`
	Usage          *core.Usage          `json:"usage,omitempty"`
	Communications []core.Communication `json:"communications,omitempty"`
	Artifacts      []core.Artifact      `json:"artifacts,omitempty"`
}

// chatMessage runs one full turn: load project context, replay history,
// invoke the orchestrator, persist both sides of the exchange, account
// usage, and return the merged outcome.
func (s *Server) chatMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err)
		return
	}
	ctx := c.Request.Context()

	project, err := s.sessions.GetProject(ctx, req.ProjectID)
	if err != nil {
		notFoundOr(c, err)
		return
	}

	conv, err := s.sessions.GetOrCreateConversation(ctx, project.ID, req.ConversationID)
	if err != nil {
		notFoundOr(c, err)
		return
	}

	// History excludes the message being processed; responders retain the
	// most recent window themselves.
	history := conv.History()

	if _, err := s.sessions.AppendEntry(ctx, conv.ID, session.Entry{
		Role:    "user",
		Content: req.Message,
	}); err != nil {
		notFoundOr(c, err)
		return
	}

	result, err := s.orch.ProcessTurn(ctx, orchestrator.TurnRequest{
		ProjectID:         project.ID,
		ConversationID:    conv.ID,
		Text:              req.Message,
		History:           history,
		Project:           project.Context(),
		PreviousResponder: conv.LastResponder,
	})
	if err != nil {
		abortError(c, http.StatusBadGateway, err)
		return
	}

	// A delegated turn hands the conversation to the specialist for the
	// follow-up.
	nextResponder := result.Outcome.ResponderID
	if result.SuggestedNext != "" && responder.ID(result.SuggestedNext).Valid() {
		nextResponder = result.SuggestedNext
	}

	if _, err := s.sessions.AppendEntry(ctx, conv.ID, session.Entry{
		Role:        "assistant",
		Content:     result.Outcome.Text,
		ResponderID: nextResponder,
		Usage:       result.Outcome.Usage,
	}); err != nil {
		notFoundOr(c, err)
		return
	}

	if err := s.usage.Record(ctx, project.ID, result.Outcome.ResponderID, result.Outcome.Usage); err != nil {
		notFoundOr(c, err)
		return
	}

	c.JSON(http.StatusOK, chatMessageResponse{
		ConversationID: conv.ID,
		ResponderID:    result.Outcome.ResponderID,
		ResponderName:  result.Outcome.ResponderName,
		Response:       result.Outcome.Text,
		Escalate:       result.Outcome.Escalate,
		SuggestedNext:  result.SuggestedNext,
		Usage:          result.Outcome.Usage,
		Communications: result.Communications,
		Artifacts:      result.Artifacts,
	})
}

type responderInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (s *Server) listResponders(c *gin.Context) {
	all := s.registry.All()
	infos := make([]responderInfo, 0, len(all))
	for _, r := range all {
		infos = append(infos, responderInfo{ID: r.ID(), Name: r.Name(), Role: r.Role()})
	}
	c.JSON(http.StatusOK, gin.H{"responders": infos})
}

func (s *Server) listPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prompts": s.registry.Prompts()})
}

func (s *Server) getPrompt(c *gin.Context) {
	info, err := s.registry.Prompt(responder.ID(c.Param("id")))
	if err != nil {
		abortError(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type setPromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (s *Server) setPrompt(c *gin.Context) {
	var req setPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err)
		return
	}

	id := responder.ID(c.Param("id"))
	if err := s.registry.SetOverride(id, &req.Prompt); err != nil {
		abortError(c, http.StatusNotFound, err)
		return
	}

	s.logger.Info("prompt.override", "responder", string(id))
	info, _ := s.registry.Prompt(id)
	c.JSON(http.StatusOK, info)
}

func (s *Server) resetPrompt(c *gin.Context) {
	id := responder.ID(c.Param("id"))
	if err := s.registry.SetOverride(id, nil); err != nil {
		abortError(c, http.StatusNotFound, err)
		return
	}

	s.logger.Info("prompt.reset", "responder", string(id))
	info, _ := s.registry.Prompt(id)
	c.JSON(http.StatusOK, info)
}

func (s *Server) listCommunications(c *gin.Context) {
	comms, err := s.comms.ListByProject(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		notFoundOr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"communications": comms})
}

func (s *Server) listArtifacts(c *gin.Context) {
	artifacts, err := s.artifacts.ListByProject(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		notFoundOr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

func (s *Server) getArtifact(c *gin.Context) {
	art, err := s.artifacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundOr(c, err)
		return
	}
	c.JSON(http.StatusOK, art)
}

func (s *Server) projectTokens(c *gin.Context) {
	totals, err := s.usage.ProjectTotals(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		notFoundOr(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
