package core

// Outcome is the result of a single responder invocation. Outcomes are
// combined, never mutated, when a turn is delegated: the orchestrator builds
// a new merged Outcome from the primary and delegate results.
type Outcome struct {
	// ResponderID identifies the responder that produced this outcome.
	ResponderID string `json:"responder_id"`
	// ResponderName is the display name, repeated here so callers do not need
	// a registry lookup to render the result.
	ResponderName string `json:"responder_name"`
	// Text is the generated response shown to the user.
	Text string `json:"text"`
	// Escalate marks output that requires a decision from a human outside the
	// responder set.
	Escalate bool `json:"escalate"`
	// DelegateTo optionally names a responder that should also process the
	// same turn. Empty means no delegation.
	DelegateTo string `json:"delegate_to,omitempty"`
	// Usage is the token accounting for this invocation, nil if the model
	// backend reported none.
	Usage *Usage `json:"usage,omitempty"`
}

// Usage captures token consumption for one or more model invocations.
// Total is maintained as Input + Output at every stage.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add returns the field-wise sum of two usage tallies.
func (u Usage) Add(o Usage) Usage {
	return Usage{
		InputTokens:  u.InputTokens + o.InputTokens,
		OutputTokens: u.OutputTokens + o.OutputTokens,
		TotalTokens:  u.TotalTokens + o.TotalTokens,
	}
}

// MergeUsage sums token accounting across at most two delegation hops. It is
// a pure function over zero, one or two values: when both are present the
// result is the field-wise sum, otherwise whichever is present (nil when
// neither is). The returned value is always a fresh allocation.
func MergeUsage(primary, delegate *Usage) *Usage {
	switch {
	case primary == nil && delegate == nil:
		return nil
	case delegate == nil:
		cp := *primary
		return &cp
	case primary == nil:
		cp := *delegate
		return &cp
	default:
		sum := primary.Add(*delegate)
		return &sum
	}
}
