package repositories

import (
	"context"
	"slices"

	"journeys/internal/models/db_models"
)

type ConversationRepository interface {
	GetConversations(ctx context.Context) ([]db_models.Conversation, error)
	GetConversation(ctx context.Context, id string) (*db_models.Conversation, error)
	GetMessages(ctx context.Context, conversationID string) ([]db_models.Message, error)
}

type conversationRepository struct {
	db *MockDB
}

func NewConversationRepository(db *MockDB) ConversationRepository {
	return &conversationRepository{db: db}
}

func cloneConversation(c db_models.Conversation) db_models.Conversation {
	c.Participants = slices.Clone(c.Participants)
	if c.LastMessage != nil {
		m := *c.LastMessage
		c.LastMessage = &m
	}
	return c
}

func (r *conversationRepository) GetConversations(ctx context.Context) ([]db_models.Conversation, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]db_models.Conversation, len(r.db.conversations))
	for i, c := range r.db.conversations {
		out[i] = cloneConversation(c)
	}
	return out, nil
}

func (r *conversationRepository) GetConversation(ctx context.Context, id string) (*db_models.Conversation, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.conversations {
		if c.ID == id {
			out := cloneConversation(c)
			return &out, nil
		}
	}
	return nil, nil
}

// GetMessages returns the messages of one conversation, oldest first.
func (r *conversationRepository) GetMessages(ctx context.Context, conversationID string) ([]db_models.Message, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]db_models.Message, 0)
	for _, m := range r.db.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b db_models.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out, nil
}
