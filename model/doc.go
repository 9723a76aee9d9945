// Package model defines the text-generation boundary consumed by responders.
// The Model interface takes a system prompt plus an ordered message sequence
// and returns generated text with a token usage tally. Concrete adapters for
// hosted providers live in the model/anthropic and model/openai subpackages;
// MockModel provides deterministic canned output for tests and examples.
//
// Generation is deliberately synchronous: a turn is a strictly sequential
// flow with at most two model calls, so there is nothing to stream between.
// Cancellation and deadlines are the caller's responsibility via the passed
// context.
package model
