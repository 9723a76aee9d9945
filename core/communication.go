package core

import "time"

// CommunicationType categorizes an inter-responder communication record.
type CommunicationType string

const (
	// CommDelegation marks a responder handing a task to another responder.
	CommDelegation CommunicationType = "delegation"
	// CommResponse marks a delegate reporting back to the responder that
	// delegated the work. Content is a truncated summary, not the full text.
	CommResponse CommunicationType = "response"
	// CommArtifactCreated marks that a responder's output was persisted as a
	// durable artifact. ArtifactID references the stored record.
	CommArtifactCreated CommunicationType = "artifact_created"
)

// Communication is an append-only record of a handoff, response or artifact
// event between responders during a turn. Records are a byproduct trail for
// observers; the merged outcome of a turn never depends on them.
type Communication struct {
	ID             string            `json:"id"`
	ProjectID      string            `json:"project_id"`
	ConversationID string            `json:"conversation_id,omitempty"`
	FromResponder  string            `json:"from_responder"`
	ToResponder    string            `json:"to_responder"`
	Type           CommunicationType `json:"type"`
	Content        string            `json:"content"`
	ArtifactID     string            `json:"artifact_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// NewCommunication constructs a communication record with a generated id and
// UTC timestamp.
func NewCommunication(projectID, conversationID, from, to string, typ CommunicationType, content string) Communication {
	return Communication{
		ID:             NewID(),
		ProjectID:      projectID,
		ConversationID: conversationID,
		FromResponder:  from,
		ToResponder:    to,
		Type:           typ,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
}
