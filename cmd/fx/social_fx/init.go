package social_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"journeys/internal/config"
	"journeys/internal/repositories"
	"journeys/internal/services"
)

var Module = fx.Provide(provideSocialService)

func provideSocialService(
	userRepo repositories.UserRepository,
	conversationRepo repositories.ConversationRepository,
	activityRepo repositories.ActivityRepository,
	cfg *config.Config,
	logger *zap.Logger,
) services.SocialServiceInterface {
	return services.NewSocialService(userRepo, conversationRepo, activityRepo, cfg.App.CurrentUserID, logger)
}
