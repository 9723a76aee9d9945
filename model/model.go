package model

import (
	"context"
	"fmt"
	"sync"
)

// Message is a single chat message submitted to a provider. Role is "user"
// or "assistant"; system instructions travel separately in Request.System.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request captures the normalized model input produced by a responder.
type Request struct {
	// System is the active system prompt (default or operator override).
	System string `json:"system"`
	// Messages is the ordered conversation submitted to the provider.
	Messages []Message `json:"messages"`
}

// TokenUsage captures token accounting reported by a provider for one call.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Response is the completed generation for a request.
type Response struct {
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "anthropic", "openai", "mock", ...
}

// Model is the minimal interface required to drive generation. Errors are
// returned unchanged to the caller; adapters perform no retries.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests and examples.
// Responses are keyed by the final message's content; unknown inputs yield a
// generated echo. Token counts are synthesized from rune lengths so usage
// merging stays exercisable without a live provider.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	requests  []Request
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input text.
func (m *MockModel) AddResponse(input, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[input] = response
}

// Requests returns a snapshot of every request seen so far, in order.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]Request, len(m.requests))
	copy(cp, m.requests)
	return cp
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	input := req.Messages[len(req.Messages)-1].Content
	text, ok := m.responses[input]
	m.mu.Unlock()

	if !ok {
		text = fmt.Sprintf("Mock response to: %s", input)
	}

	in := len([]rune(input))
	out := len([]rune(text))
	return &Response{
		Text: text,
		Usage: TokenUsage{
			InputTokens:  in,
			OutputTokens: out,
			TotalTokens:  in + out,
		},
	}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
