package api

import (
	authHandler "campaign-server/internal/auth/handler"
	campaignHandler "campaign-server/internal/campaign/handler"
	"campaign-server/internal/ratelimit"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	campaignHandler campaignHandler.Handler
	rateLimiter     *ratelimit.Service
}

func New(router *gin.RouterGroup, authHandler authHandler.Handler, campaignHandler campaignHandler.Handler, rateLimiter *ratelimit.Service) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		campaignHandler: campaignHandler,
		rateLimiter:     rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware, a.rateLimiter.Middleware())
	{
		campaignsGroup := protectedGroup.Group("/campaigns")
		campaignsGroup.POST("/group-share", a.campaignHandler.HandleStartGroupShare)
		campaignsGroup.GET("/resumable", a.campaignHandler.HandleListResumable)
		campaignsGroup.POST("/:campaign_id/pause", a.campaignHandler.HandlePauseCampaign)
		campaignsGroup.POST("/:campaign_id/resume", a.campaignHandler.HandleResumeCampaign)
		campaignsGroup.POST("/:campaign_id/complete", a.campaignHandler.HandleCompleteCampaign)
		campaignsGroup.POST("/:campaign_id/cancel", a.campaignHandler.HandleCancelCampaign)
		campaignsGroup.GET("/:campaign_id/progress", a.campaignHandler.HandleGetProgress)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
