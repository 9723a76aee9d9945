// Package server exposes the squad over HTTP: project management, the chat
// turn endpoint, the responder prompt configuration boundary, and read
// access to communications, artifacts and token usage.
package server
