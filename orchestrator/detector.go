package orchestrator

import (
	"strings"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/responder"
)

// detectionRule maps a responder to the structural evidence that its output
// is a durable deliverable, and to the artifact type and title it yields.
type detectionRule struct {
	// markers are matched case-sensitively: they are the exact headers the
	// responder's prompt instructs it to emit.
	markers   []string
	artifact  core.ArtifactType
	titleKind string
}

// detectionTable covers the responders that produce deliverables. The
// Project Manager coordinates rather than produces, so it has no entry and
// never yields artifacts.
var detectionTable = map[responder.ID]detectionRule{
	responder.Discovery: {
		markers:   []string{"📊 **DISCOVERY SUMMARY**", "GO/NO-GO", "TAM:", "SAM:"},
		artifact:  core.ArtifactMarketAnalysis,
		titleKind: "Market Analysis",
	},
	responder.Delivery: {
		markers:   []string{"📋 **REQUIREMENTS SUMMARY**", "MVP Scope", "User Stories", "P0 (Must-have)"},
		artifact:  core.ArtifactRequirementsDocument,
		titleKind: "PRD",
	},
	responder.TechLead: {
		markers:   []string{"🔧 **TECHNICAL RECOMMENDATION**", "Recommended Stack", "Architecture"},
		artifact:  core.ArtifactTechnicalSpecification,
		titleKind: "Tech Spec",
	},
	responder.Business: {
		markers:   []string{"📈 **UNIT ECONOMICS**", "LTV/CAC", "💰 **MVP SCOPE**"},
		artifact:  core.ArtifactMVPScope,
		titleKind: "MVP Scope",
	},
}

// Detector inspects generated text for structural evidence that a durable
// deliverable was produced. Detection is a pure function of its inputs and
// recall-oriented: a deliverable that avoids every marker phrase is missed
// without error, and incidental marker text can trigger a false positive.
type Detector struct {
	table map[responder.ID]detectionRule
}

// NewDetector constructs a Detector over the built-in marker table.
func NewDetector() *Detector {
	return &Detector{table: detectionTable}
}

// Detect returns the artifact carried by the text, or nil when the
// responder has no marker mapping or none of its markers occur. The
// artifact's content is the full unmodified text; its title is the
// responder's kind filled with the project name ("Project" when absent).
func (d *Detector) Detect(text, responderID string, project core.ProjectContext) *core.Artifact {
	rule, ok := d.table[responder.ID(responderID)]
	if !ok {
		return nil
	}

	matched := false
	for _, marker := range rule.markers {
		if strings.Contains(text, marker) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}

	name := project.Name
	if name == "" {
		name = "Project"
	}

	return &core.Artifact{
		Type:      rule.artifact,
		Title:     rule.titleKind + ": " + name,
		Content:   text,
		CreatedBy: responderID,
	}
}
