// Package orchestrator runs one conversational turn end to end: routing the
// user's message to a responder, optionally performing a single delegation
// hop, detecting artifacts in the generated text, recording the
// inter-responder communication trail, and merging token usage across hops.
//
// A turn moves through a fixed sequence: routing, primary processing, an
// optional delegation phase (delegate processing plus artifact check), then
// merge. There is no terminal failure state of its own; an error from either
// model invocation or from the persistence boundary aborts the turn and
// propagates to the caller, with any side effects already committed left
// standing.
package orchestrator
