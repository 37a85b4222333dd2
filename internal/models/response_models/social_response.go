package response_models

import "journeys/internal/models/db_models"

type ConversationResponse struct {
	ID              string             `json:"id"`
	Participants    []db_models.User   `json:"participants"`
	IsGroup         bool               `json:"is_group"`
	LastMessage     *db_models.Message `json:"last_message,omitempty"`
	LastMessageTime string             `json:"last_message_time,omitempty"`
	UnreadCount     int                `json:"unread_count"`
}

type ActivityEntry struct {
	Activity     db_models.Activity `json:"activity"`
	Description  string             `json:"description"`
	RelativeTime string             `json:"relative_time"`
}
