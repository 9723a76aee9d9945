package session

import "fmt"

var (
	// ErrProjectNotFound is returned when no project exists for the given id.
	ErrProjectNotFound = fmt.Errorf("project not found")

	// ErrConversationNotFound is returned when no conversation exists for the
	// given id.
	ErrConversationNotFound = fmt.Errorf("conversation not found")
)
