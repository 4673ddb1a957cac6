package model

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in a stylist chat session. Messages are
// append-only; they are never edited or removed.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
