package db_models

import "time"

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderAvatar   string    `json:"sender_avatar,omitempty"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

type Conversation struct {
	ID           string   `json:"id"`
	Participants []User   `json:"participants"`
	LastMessage  *Message `json:"last_message,omitempty"`
	UnreadCount  int      `json:"unread_count"`
}
