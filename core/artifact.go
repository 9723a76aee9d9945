package core

import "time"

// ArtifactType tags the kind of deliverable extracted from responder output.
// The set is closed; detection tables map each responder to at most one type.
type ArtifactType string

const (
	// ArtifactMarketAnalysis is a market sizing / competitive landscape study.
	ArtifactMarketAnalysis ArtifactType = "market_analysis"
	// ArtifactRequirementsDocument is a product requirements document.
	ArtifactRequirementsDocument ArtifactType = "requirements_document"
	// ArtifactUserStories is a set of user stories with acceptance criteria.
	ArtifactUserStories ArtifactType = "user_stories"
	// ArtifactTechnicalSpecification is a stack and implementation proposal.
	ArtifactTechnicalSpecification ArtifactType = "technical_specification"
	// ArtifactArchitectureDesign is a system architecture description.
	ArtifactArchitectureDesign ArtifactType = "architecture_design"
	// ArtifactMVPScope is a minimum-viable-product scope definition.
	ArtifactMVPScope ArtifactType = "mvp_scope"
	// ArtifactUnitEconomics is a unit-economics summary (ARPU, CAC, LTV).
	ArtifactUnitEconomics ArtifactType = "unit_economics"
)

// Valid reports whether the type is one of the known artifact kinds.
func (t ArtifactType) Valid() bool {
	switch t {
	case ArtifactMarketAnalysis, ArtifactRequirementsDocument, ArtifactUserStories,
		ArtifactTechnicalSpecification, ArtifactArchitectureDesign,
		ArtifactMVPScope, ArtifactUnitEconomics:
		return true
	}
	return false
}

// Artifact is a durable deliverable detected in a responder's generated text.
// Content is the full, unmodified response; the detector never trims or
// rewrites it. Versioning and retention belong to the storage layer.
type Artifact struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"project_id"`
	Type      ArtifactType `json:"type"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	CreatedBy string       `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
}
