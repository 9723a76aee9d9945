// Package stats keeps the per-project token usage ledger: every generation
// is recorded against the responder that produced it, and totals can be
// read back aggregated by responder.
package stats
