// Package responder implements the five specialized text-generation
// responders (Project Manager, Business, Discovery, Delivery, Tech Lead) and
// the Registry that owns their lifecycle and prompt configuration.
//
// Every responder satisfies core.Responder. Process builds a message
// sequence from the turn context (a synthetic project-context exchange, the
// most recent history entries verbatim, then the current user text), submits
// it with the active system prompt to the model boundary, and applies the
// variant's marker-rule post-processing to set the escalation flag and the
// delegation target. Discovery, Delivery and Tech Lead never escalate or
// delegate.
//
// The responder set is closed: Registry resolves identifiers through an
// exhaustive switch on the typed ID so adding or removing a variant is a
// compile-time-checked change.
package responder
