package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ventureops/squad/responder"
)

func TestRouterDefaultsToProjectManager(t *testing.T) {
	r := NewRouter()

	assert.Equal(t, responder.ProjectManager, r.Select("", "hello there"))
	assert.Equal(t, responder.ProjectManager, r.Select("marketing_agent", "hello there"))
}

func TestRouterHoldsPreviousResponder(t *testing.T) {
	r := NewRouter()

	got := r.Select(string(responder.Delivery), "could you expand on that?")
	assert.Equal(t, responder.Delivery, got)
}

func TestRouterKeywordOverride(t *testing.T) {
	r := NewRouter()

	tests := []struct {
		name string
		prev string
		text string
		want responder.ID
	}{
		{"competitive landscape", string(responder.ProjectManager), "What's our competitive landscape?", responder.Discovery},
		{"market research", "", "run some market research please", responder.Discovery},
		{"user stories", string(responder.ProjectManager), "Draft the user stories for checkout", responder.Delivery},
		{"architecture", string(responder.Discovery), "what architecture should we use?", responder.TechLead},
		{"unit economics", string(responder.TechLead), "walk me through the unit economics", responder.Business},
		{"explicit pm", string(responder.Business), "ask the project manager for a status review", responder.ProjectManager},
		{"case insensitive", "", "RESEARCH THE COMPETITORS", responder.Discovery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Select(tt.prev, tt.text))
		})
	}
}

func TestRouterFirstMatchInEnumerationOrderWins(t *testing.T) {
	r := NewRouter()

	// "research" (Discovery) and "architecture" (Tech Lead) both match;
	// Discovery comes first in the table.
	got := r.Select("", "research the architecture options")
	assert.Equal(t, responder.Discovery, got)
}

func TestRouterDeterministicAndTotal(t *testing.T) {
	r := NewRouter()

	previous := []string{"", "project_manager_agent", "business_agent", "discovery_agent",
		"delivery_agent", "tech_lead_agent", "unknown_agent"}
	texts := []string{"", "hello", "validate the MARKET RESEARCH", "ship it",
		"requirements and architecture", "🤔", "what's the plan?"}

	for _, prev := range previous {
		for _, text := range texts {
			first := r.Select(prev, text)
			assert.True(t, first.Valid(), "prev=%q text=%q", prev, text)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, r.Select(prev, text))
			}
		}
	}
}
