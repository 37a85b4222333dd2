package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journeys/internal/models/request_models"
	"journeys/internal/services"
	"journeys/pkg/utils"
)

type SocialController struct {
	socialService services.SocialServiceInterface
}

func NewSocialController(socialService services.SocialServiceInterface) *SocialController {
	return &SocialController{
		socialService: socialService,
	}
}

func (s *SocialController) ListUsers(c *gin.Context) {
	users, err := s.socialService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

func (s *SocialController) GetUser(c *gin.Context) {
	user, err := s.socialService.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// ListConversations godoc
// @Summary Inbox
// @Description Conversations whose other participants match the search text
// @Tags Social
// @Produce json
// @Param q query string false "Participant name"
// @Success 200 {array} response_models.ConversationResponse
// @Router /conversations [get]
func (s *SocialController) ListConversations(c *gin.Context) {
	var req request_models.ConversationSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query")
		return
	}

	convs, err := s.socialService.ListConversations(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, convs, "Conversations fetched successfully")
}

func (s *SocialController) GetMessages(c *gin.Context) {
	msgs, err := s.socialService.GetMessages(c.Request.Context(), c.Param("conversationId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, msgs, "Messages fetched successfully")
}

func (s *SocialController) ActivityFeed(c *gin.Context) {
	feed, err := s.socialService.ActivityFeed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feed, "Activity fetched successfully")
}
