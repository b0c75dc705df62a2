package domain

import "time"

// Entry is a notification that was delivered
type Entry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	ChatID  string    `json:"chat_id"`
	TopicID *int      `json:"topic_id,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}
