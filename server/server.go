package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ventureops/squad/artifact"
	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/orchestrator"
	"github.com/ventureops/squad/responder"
	"github.com/ventureops/squad/session"
	"github.com/ventureops/squad/stats"
)

// SessionStore is the project/conversation persistence the server needs.
type SessionStore interface {
	CreateProject(ctx context.Context, name, description string, facts map[string]string) (*session.Project, error)
	GetProject(ctx context.Context, id string) (*session.Project, error)
	ListProjects(ctx context.Context) ([]*session.Project, error)
	GetOrCreateConversation(ctx context.Context, projectID, id string) (*session.Conversation, error)
	AppendEntry(ctx context.Context, conversationID string, entry session.Entry) (*session.Entry, error)
}

// ArtifactReader reads back stored artifacts.
type ArtifactReader interface {
	Get(ctx context.Context, id string) (*core.Artifact, error)
	ListByProject(ctx context.Context, projectID string) ([]core.Artifact, error)
}

// CommunicationReader reads back the communication log.
type CommunicationReader interface {
	ListByProject(ctx context.Context, projectID string) ([]core.Communication, error)
}

// UsageStats records and aggregates token usage.
type UsageStats interface {
	Record(ctx context.Context, projectID, responderID string, usage *core.Usage) error
	ProjectTotals(ctx context.Context, projectID string) (*stats.ProjectTotals, error)
}

// Options configures a Server.
type Options struct {
	Logger logging.Logger
}

// Server wires the orchestration core to a gin engine.
type Server struct {
	engine    *gin.Engine
	orch      *orchestrator.Orchestrator
	registry  *responder.Registry
	sessions  SessionStore
	artifacts ArtifactReader
	comms     CommunicationReader
	usage     UsageStats
	logger    logging.Logger
}

// New constructs the server and registers its routes.
func New(
	orch *orchestrator.Orchestrator,
	registry *responder.Registry,
	sessions SessionStore,
	artifacts ArtifactReader,
	comms CommunicationReader,
	usage UsageStats,
	optFns ...func(o *Options),
) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Server{
		engine:    gin.New(),
		orch:      orch,
		registry:  registry,
		sessions:  sessions,
		artifacts: artifacts,
		comms:     comms,
		usage:     usage,
		logger:    opts.Logger,
	}
	s.engine.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr and serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("server.listening", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.POST("/projects", s.createProject)
		api.GET("/projects", s.listProjects)
		api.GET("/projects/:id", s.getProject)

		api.POST("/chat/message", s.chatMessage)

		api.GET("/responders", s.listResponders)
		api.GET("/responders/prompts", s.listPrompts)
		api.GET("/responders/prompts/:id", s.getPrompt)
		api.PUT("/responders/prompts/:id", s.setPrompt)
		api.POST("/responders/prompts/:id/reset", s.resetPrompt)

		api.GET("/communications/:projectID", s.listCommunications)
		api.GET("/artifacts/:projectID", s.listArtifacts)
		api.GET("/artifacts/item/:id", s.getArtifact)
		api.GET("/stats/tokens/:projectID", s.projectTokens)
	}
}

func abortError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// notFoundOr maps store sentinel errors to 404 and everything else to 500.
func notFoundOr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrProjectNotFound),
		errors.Is(err, session.ErrConversationNotFound),
		errors.Is(err, artifact.ErrNotFound):
		abortError(c, http.StatusNotFound, err)
	default:
		abortError(c, http.StatusInternalServerError, err)
	}
}
