package responder

import "strings"

// The escalation and delegation heuristics are explicit, ordered rule tables
// rather than inline string checks. Matching is case-insensitive substring
// search; the first matching rule wins. The tables are hand-tuned and make no
// semantic guarantee: a well-formed escalation that avoids every marker
// phrase is simply not flagged, and marker text appearing incidentally can
// trigger a false positive. Treat the entries as tunable data.

// escalationRules flag generated text that requires a human (CEO) decision.
type escalationRules []string

// Match reports whether any marker phrase occurs in the text.
func (rs escalationRules) Match(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range rs {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// delegationRule associates one trigger phrase with a delegation target.
type delegationRule struct {
	trigger string
	target  ID
}

// delegationRules is an ordered first-match-wins classifier over generated text.
type delegationRules []delegationRule

// Classify returns the target of the first matching rule, or "" when no rule
// matches (no delegation).
func (rs delegationRules) Classify(text string) ID {
	lower := strings.ToLower(text)
	for _, rule := range rs {
		if strings.Contains(lower, rule.trigger) {
			return rule.target
		}
	}
	return ""
}

// Project Manager tables. The PM announces handoffs with explicit
// coordination commands ("DELEGATE TO DISCOVERY: ..."), so its triggers are
// the command forms its prompt instructs it to emit.
var (
	pmEscalationRules = escalationRules{
		"ESCALATE TO CEO",
		"Questions for CEO",
		"CEO DECISION",
		"YOUR DECISION",
		"🚩",
	}

	pmDelegationRules = delegationRules{
		{trigger: "delegate to discovery", target: Discovery},
		{trigger: "→ discovery", target: Discovery},
		{trigger: "delegate to delivery", target: Delivery},
		{trigger: "→ delivery", target: Delivery},
		{trigger: "delegate to tech lead", target: TechLead},
		{trigger: "→ tech lead", target: TechLead},
		{trigger: "delegate to business", target: Business},
		{trigger: "delegate to cpo", target: Business},
		{trigger: "→ cpo", target: Business},
	}
)

// Business tables. The business responder delegates more loosely: besides the
// explicit command form it hands off when its answer talks about another
// specialist's territory.
var (
	businessEscalationRules = escalationRules{
		"CEO DECISION NEEDED",
		"YOUR DECISION",
	}

	businessDelegationRules = delegationRules{
		{trigger: "delegate to discovery", target: Discovery},
		{trigger: "discovery expert", target: Discovery},
		{trigger: "market validation", target: Discovery},
		{trigger: "validate the idea", target: Discovery},
		{trigger: "delegate to delivery", target: Delivery},
		{trigger: "delivery expert", target: Delivery},
		{trigger: "user stories", target: Delivery},
		{trigger: "delegate to tech", target: TechLead},
		{trigger: "tech lead", target: TechLead},
		{trigger: "technical decision", target: TechLead},
		{trigger: "architecture", target: TechLead},
	}
)
