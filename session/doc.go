// Package session stores projects and their conversations. Projects carry
// the business context responders reason over; conversations carry the
// ordered message history a turn is replayed against.
//
// Add additional backends (Redis, Postgres, etc.) in sub-packages without
// changing any calling code; only the wiring layer decides which
// implementation to instantiate.
package session
