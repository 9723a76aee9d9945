package orchestrator

import (
	"strings"

	"github.com/ventureops/squad/responder"
)

// routeRule associates a responder with the keyword triggers that pull a
// turn toward it regardless of which responder was previously active.
type routeRule struct {
	id       responder.ID
	keywords []string
}

// routeTable is consulted in fixed enumeration order; the first responder
// with a matching keyword wins, so ties between overlapping keywords are
// broken by position, not specificity. The entries are hand-tuned data, not
// a semantic guarantee.
var routeTable = []routeRule{
	{responder.ProjectManager, []string{"project manager", "coordinator", "status update", "progress report"}},
	{responder.Business, []string{"business agent", "cpo", "cro", "unit economics", "pricing strategy"}},
	{responder.Discovery, []string{"discovery", "validate", "market research", "research", "competitor", "competitive"}},
	{responder.Delivery, []string{"delivery", "requirements", "user stories", "user story", "prd", "specs"}},
	{responder.TechLead, []string{"tech lead", "technical", "architecture", "stack"}},
}

// Router selects the responder for an incoming turn. Selection is
// deterministic and total: it always yields one of the five known ids.
type Router struct {
	table []routeRule
}

// NewRouter constructs a Router over the built-in keyword table.
func NewRouter() *Router {
	return &Router{table: routeTable}
}

// Select returns the responder id for the turn. The previously active
// responder is kept unless the user text names another responder's
// territory; with no valid previous responder the Project Manager is the
// default.
func (r *Router) Select(previous, text string) responder.ID {
	selected := responder.ID(previous)
	if !selected.Valid() {
		selected = responder.ProjectManager
	}

	lower := strings.ToLower(text)
	for _, rule := range r.table {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.id
			}
		}
	}

	return selected
}
