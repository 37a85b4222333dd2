package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"journeys/internal/models/db_models"
	"journeys/internal/models/response_models"
	"journeys/internal/repositories"
	"journeys/internal/views"
	"journeys/pkg/utils"
)

type SocialServiceInterface interface {
	ListUsers(ctx context.Context) ([]db_models.User, error)
	GetUser(ctx context.Context, userID string) (*db_models.User, error)
	ListConversations(ctx context.Context, query string) ([]response_models.ConversationResponse, error)
	GetMessages(ctx context.Context, conversationID string) ([]db_models.Message, error)
	ActivityFeed(ctx context.Context) ([]response_models.ActivityEntry, error)
}

type SocialService struct {
	userRepo         repositories.UserRepository
	conversationRepo repositories.ConversationRepository
	activityRepo     repositories.ActivityRepository
	currentUserID    string
	now              func() time.Time
	logger           *zap.Logger
}

func NewSocialService(
	userRepo repositories.UserRepository,
	conversationRepo repositories.ConversationRepository,
	activityRepo repositories.ActivityRepository,
	currentUserID string,
	logger *zap.Logger,
) SocialServiceInterface {
	return &SocialService{
		userRepo:         userRepo,
		conversationRepo: conversationRepo,
		activityRepo:     activityRepo,
		currentUserID:    currentUserID,
		now:              time.Now,
		logger:           logger.Named("social"),
	}
}

func (s *SocialService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	return s.userRepo.GetUsers(ctx)
}

func (s *SocialService) GetUser(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// ListConversations filters the inbox by the names of the other
// participants. The current user never appears as a participant.
func (s *SocialService) ListConversations(ctx context.Context, query string) ([]response_models.ConversationResponse, error) {
	convs, err := s.conversationRepo.GetConversations(ctx)
	if err != nil {
		s.logger.Error("get conversations", zap.Error(err))
		return nil, err
	}

	now := s.now()
	filtered := views.FilterConversations(convs, s.currentUserID, query)
	out := make([]response_models.ConversationResponse, 0, len(filtered))
	for _, c := range filtered {
		others := views.OtherParticipants(c, s.currentUserID)
		resp := response_models.ConversationResponse{
			ID:           c.ID,
			Participants: others,
			IsGroup:      len(others) > 1,
			LastMessage:  c.LastMessage,
			UnreadCount:  c.UnreadCount,
		}
		if c.LastMessage != nil {
			resp.LastMessageTime = views.ConversationTime(c.LastMessage.Timestamp, now)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *SocialService) GetMessages(ctx context.Context, conversationID string) ([]db_models.Message, error) {
	conv, err := s.conversationRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, utils.ErrConversationNotFound
	}
	return s.conversationRepo.GetMessages(ctx, conv.ID)
}

func (s *SocialService) ActivityFeed(ctx context.Context) ([]response_models.ActivityEntry, error) {
	acts, err := s.activityRepo.GetActivities(ctx)
	if err != nil {
		s.logger.Error("get activities", zap.Error(err))
		return nil, err
	}

	now := s.now()
	out := make([]response_models.ActivityEntry, 0, len(acts))
	for _, a := range acts {
		out = append(out, response_models.ActivityEntry{
			Activity:     a,
			Description:  views.DescribeActivity(a),
			RelativeTime: views.RelativeTime(a.Timestamp, now),
		})
	}
	return out, nil
}
