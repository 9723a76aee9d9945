package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/responder"
)

func TestDetectorMarketAnalysis(t *testing.T) {
	d := NewDetector()

	text := "After reviewing the segment:\n\nGO/NO-GO: GO with medium confidence."
	art := d.Detect(text, string(responder.Discovery), core.ProjectContext{Name: "Acme Notes"})
	require.NotNil(t, art)

	assert.Equal(t, core.ArtifactMarketAnalysis, art.Type)
	assert.Equal(t, "Market Analysis: Acme Notes", art.Title)
	assert.Equal(t, text, art.Content)
	assert.Equal(t, string(responder.Discovery), art.CreatedBy)
}

func TestDetectorPerResponderTypes(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name      string
		id        responder.ID
		text      string
		wantType  core.ArtifactType
		wantTitle string
	}{
		{"delivery", responder.Delivery, "📋 **REQUIREMENTS SUMMARY**\n...", core.ArtifactRequirementsDocument, "PRD: Acme"},
		{"tech lead", responder.TechLead, "Recommended Stack: Go + Postgres", core.ArtifactTechnicalSpecification, "Tech Spec: Acme"},
		{"business", responder.Business, "LTV/CAC sits at 4:1", core.ArtifactMVPScope, "MVP Scope: Acme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := d.Detect(tt.text, string(tt.id), core.ProjectContext{Name: "Acme"})
			require.NotNil(t, art)
			assert.Equal(t, tt.wantType, art.Type)
			assert.Equal(t, tt.wantTitle, art.Title)
		})
	}
}

func TestDetectorIsIdempotent(t *testing.T) {
	d := NewDetector()
	text := "TAM: $2B, SAM: $300M"
	project := core.ProjectContext{Name: "Acme"}

	first := d.Detect(text, string(responder.Discovery), project)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := d.Detect(text, string(responder.Discovery), project)
		require.NotNil(t, again)
		assert.Equal(t, first.Type, again.Type)
		assert.Equal(t, first.Title, again.Title)
	}
}

func TestDetectorMarkersAreCaseSensitive(t *testing.T) {
	d := NewDetector()

	assert.Nil(t, d.Detect("go/no-go: proceed", string(responder.Discovery), core.ProjectContext{}))
	assert.NotNil(t, d.Detect("GO/NO-GO: proceed", string(responder.Discovery), core.ProjectContext{}))
}

func TestDetectorNoMappingForProjectManager(t *testing.T) {
	d := NewDetector()

	// Even text full of other responders' markers yields nothing for the PM.
	text := "GO/NO-GO, MVP Scope, Recommended Stack, LTV/CAC"
	assert.Nil(t, d.Detect(text, string(responder.ProjectManager), core.ProjectContext{}))
	assert.Nil(t, d.Detect(text, "marketing_agent", core.ProjectContext{}))
}

func TestDetectorDefaultsProjectName(t *testing.T) {
	d := NewDetector()

	art := d.Detect("SAM: $10M", string(responder.Discovery), core.ProjectContext{})
	require.NotNil(t, art)
	assert.Equal(t, "Market Analysis: Project", art.Title)
}

func TestDetectorMissIsNotAnError(t *testing.T) {
	d := NewDetector()

	// A perfectly good study without the closing summary block is missed by
	// design.
	assert.Nil(t, d.Detect("The market looks strong; proceed.", string(responder.Discovery), core.ProjectContext{}))
}
