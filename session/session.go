package session

import (
	"time"

	"github.com/ventureops/squad/core"
)

// Project is one product initiative the squad works on. Facts hold the
// free-form business context (target audience, budget, constraints) that is
// folded into each responder's turn context.
type Project struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Facts       map[string]string `json:"facts,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Clone returns a deep copy safe for caller mutation.
func (p *Project) Clone() *Project {
	cp := *p
	if p.Facts != nil {
		cp.Facts = make(map[string]string, len(p.Facts))
		for k, v := range p.Facts {
			cp.Facts[k] = v
		}
	}
	return &cp
}

// Context converts the project record into the turn-level context handed to
// responders.
func (p *Project) Context() core.ProjectContext {
	return core.ProjectContext{
		Name:        p.Name,
		Description: p.Description,
		Facts:       p.Clone().Facts,
	}
}

// Entry is one stored conversation message. ResponderID is empty for user
// messages; Usage is set only on assistant entries that consumed tokens.
type Entry struct {
	ID          string      `json:"id"`
	Role        string      `json:"role"`
	Content     string      `json:"content"`
	ResponderID string      `json:"responder_id,omitempty"`
	Usage       *core.Usage `json:"usage,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Conversation is the ordered exchange between the user and the squad within
// one project. LastResponder is the responder active on the most recent
// turn; the router uses it to keep follow-ups with the same specialist.
type Conversation struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	Entries       []Entry   `json:"entries"`
	LastResponder string    `json:"last_responder,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Clone returns a deep copy safe for caller mutation.
func (c *Conversation) Clone() *Conversation {
	cp := *c
	cp.Entries = make([]Entry, len(c.Entries))
	copy(cp.Entries, c.Entries)
	for i, e := range cp.Entries {
		if e.Usage != nil {
			u := *e.Usage
			cp.Entries[i].Usage = &u
		}
	}
	return &cp
}

// History flattens the conversation into the role/content pairs a turn
// context carries.
func (c *Conversation) History() []core.Message {
	history := make([]core.Message, 0, len(c.Entries))
	for _, e := range c.Entries {
		history = append(history, core.Message{Role: e.Role, Content: e.Content})
	}
	return history
}
