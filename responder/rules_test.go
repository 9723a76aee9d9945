package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelegationRulesFirstMatchWins(t *testing.T) {
	// "delegate to discovery" precedes "user stories" in the business table,
	// so a text containing both hands off to discovery.
	text := "I will delegate to discovery before we draft user stories."
	assert.Equal(t, Discovery, businessDelegationRules.Classify(text))
}

func TestDelegationRulesNoMatch(t *testing.T) {
	assert.Equal(t, ID(""), pmDelegationRules.Classify("all quiet on this front"))
	assert.Equal(t, ID(""), businessDelegationRules.Classify(""))
}

func TestDelegationRulesTable(t *testing.T) {
	tests := []struct {
		name  string
		rules delegationRules
		text  string
		want  ID
	}{
		{"pm arrow form", pmDelegationRules, "Next: → DELIVERY for scoping", Delivery},
		{"pm tech lead", pmDelegationRules, "DELEGATE TO TECH LEAD: choose the stack", TechLead},
		{"pm business", pmDelegationRules, "DELEGATE TO CPO: pricing call", Business},
		{"business architecture", businessDelegationRules, "This needs an architecture review.", TechLead},
		{"business validation", businessDelegationRules, "We should run market validation first.", Discovery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rules.Classify(tt.text))
		})
	}
}

func TestEscalationRules(t *testing.T) {
	assert.True(t, businessEscalationRules.Match("🤔 **CEO DECISION NEEDED**"))
	assert.True(t, businessEscalationRules.Match("ceo decision needed on pricing"))
	assert.True(t, pmEscalationRules.Match("🚩 blocked on access"))
	assert.False(t, pmEscalationRules.Match("smooth sailing"))
	assert.False(t, businessEscalationRules.Match(""))
}
