// Package comm keeps the append-only log of inter-responder
// communications: delegation handoffs, delegate reports, and artifact
// creation notices.
package comm
