package models

import "time"

// ChatMessage is a single conversational turn. Messages live only in the
// client session; they are not persisted.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "model"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest carries one advisory prompt, optionally bound to a service
// order for context.
type ChatRequest struct {
	Prompt  string `json:"prompt"`
	OrderID string `json:"orderID,omitempty"`
}
