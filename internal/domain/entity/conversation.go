package entity

import "time"

// ConversationEntry is one chat message attached to exactly one request.
// Timestamps order entries for display; insertion order is authoritative.
type ConversationEntry struct {
	ID        string    `json:"id" firestore:"id"`
	RequestID string    `json:"request_id" firestore:"request_id"`
	SenderID  string    `json:"sender_id" firestore:"sender_id"`
	Sender    Role      `json:"sender" firestore:"sender"`
	Text      string    `json:"text" firestore:"text"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
