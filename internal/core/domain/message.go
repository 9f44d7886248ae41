package domain

import "time"

// Message is a single direct message between the admin and a client.
// Messages are immutable once created; only the Read flag flips when the
// receiver fetches the conversation.
type Message struct {
	ID         string    `json:"_id"`
	SenderID   string    `json:"sender"`
	ReceiverID string    `json:"receiver"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}
