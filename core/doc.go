// Package core provides the foundational domain types and contracts shared by
// the squad packages. It defines:
//
//   - Responder (the capability contract every specialist satisfies)
//   - TurnContext (immutable input for a single conversational turn)
//   - Outcome (the result of one responder invocation)
//   - Usage (token accounting with field-wise merge semantics)
//   - Communication (append-only inter-responder event records)
//   - Artifact (durable deliverables detected in generated text)
//
// The package intentionally keeps implementation concerns (persistence,
// orchestration, concrete responders, model backends) out of scope, exposing
// small types so backends can be swapped without touching calling code.
package core
