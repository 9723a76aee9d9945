package responder

import (
	"fmt"

	"github.com/ventureops/squad/core"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
)

// Registry owns the five responder instances for the lifetime of the
// process. Identifier resolution goes through an exhaustive switch on the
// typed ID, so the responder set is closed at compile time. The registry is
// read-only shared state across concurrent turns except for the per-responder
// prompt override, which SetOverride swaps atomically.
type Registry struct {
	projectManager *ProjectManagerResponder
	business       *BusinessResponder
	discovery      *DiscoveryResponder
	delivery       *DeliveryResponder
	techLead       *TechLeadResponder
}

// NewRegistry builds the full responder set backed by the given model.
func NewRegistry(llm model.Model, logger logging.Logger) *Registry {
	return &Registry{
		projectManager: NewProjectManager(llm, logger),
		business:       NewBusiness(llm, logger),
		discovery:      NewDiscovery(llm, logger),
		delivery:       NewDelivery(llm, logger),
		techLead:       NewTechLead(llm, logger),
	}
}

// Get resolves a typed identifier to its live responder instance.
func (r *Registry) Get(id ID) (core.Responder, bool) {
	switch id {
	case ProjectManager:
		return r.projectManager, true
	case Business:
		return r.business, true
	case Discovery:
		return r.discovery, true
	case Delivery:
		return r.delivery, true
	case TechLead:
		return r.techLead, true
	default:
		return nil, false
	}
}

// Lookup resolves an untyped identifier string, for callers holding ids that
// crossed a serialization boundary.
func (r *Registry) Lookup(id string) (core.Responder, bool) {
	return r.Get(ID(id))
}

// All returns the responders in their fixed enumeration order.
func (r *Registry) All() []core.Responder {
	return []core.Responder{
		r.projectManager,
		r.business,
		r.discovery,
		r.delivery,
		r.techLead,
	}
}

// SetOverride atomically swaps a responder's active prompt. A nil prompt
// restores the built-in default. Concurrent readers observe either the old or
// the new prompt; the last writer wins.
func (r *Registry) SetOverride(id ID, prompt *string) error {
	b, ok := r.baseOf(id)
	if !ok {
		return fmt.Errorf("unknown responder: %s", id)
	}
	b.setOverride(prompt)
	return nil
}

// PromptInfo describes one responder's prompt configuration.
type PromptInfo struct {
	ID            ID      `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	DefaultPrompt string  `json:"default_prompt"`
	Override      *string `json:"override,omitempty"`
	// OverrideActive is true when the override, not the default, is in effect.
	OverrideActive bool `json:"override_active"`
}

// Prompts lists prompt configuration for every responder in enumeration order.
func (r *Registry) Prompts() []PromptInfo {
	infos := make([]PromptInfo, 0, len(AllIDs()))
	for _, id := range AllIDs() {
		b, _ := r.baseOf(id)
		override := b.overridePrompt()
		infos = append(infos, PromptInfo{
			ID:             id,
			Name:           b.name,
			Role:           b.role,
			DefaultPrompt:  b.defaultPrompt,
			Override:       override,
			OverrideActive: override != nil,
		})
	}
	return infos
}

// Prompt returns the prompt configuration for a single responder.
func (r *Registry) Prompt(id ID) (PromptInfo, error) {
	b, ok := r.baseOf(id)
	if !ok {
		return PromptInfo{}, fmt.Errorf("unknown responder: %s", id)
	}
	override := b.overridePrompt()
	return PromptInfo{
		ID:             id,
		Name:           b.name,
		Role:           b.role,
		DefaultPrompt:  b.defaultPrompt,
		Override:       override,
		OverrideActive: override != nil,
	}, nil
}

// baseOf returns the shared base of the identified responder.
func (r *Registry) baseOf(id ID) (*base, bool) {
	switch id {
	case ProjectManager:
		return &r.projectManager.base, true
	case Business:
		return &r.business.base, true
	case Discovery:
		return &r.discovery.base, true
	case Delivery:
		return &r.delivery.base, true
	case TechLead:
		return &r.techLead.base, true
	default:
		return nil, false
	}
}
