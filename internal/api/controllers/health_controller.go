package controllers

import (
	"github.com/gin-gonic/gin"

	"journeys/pkg/utils"
)

type HealthController struct {
	appName string
}

func NewHealthController(appName string) *HealthController {
	return &HealthController{appName: appName}
}

func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"app": h.appName, "status": "ok"}, "OK")
}
