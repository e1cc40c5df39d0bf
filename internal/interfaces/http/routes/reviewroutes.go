package routes

import (
	"github.com/gin-gonic/gin"

	reviewhandlers "gatehouse/internal/interfaces/http/handlers/review"
	"gatehouse/internal/interfaces/http/middleware"
)

type ReviewRouteConfig struct {
	ReviewHandler *reviewhandlers.ReviewHandler
	RateLimit     gin.HandlerFunc
}

func SetupReviewRoutes(api *gin.RouterGroup, config *ReviewRouteConfig) {
	applications := api.Group("/applications")
	{
		applications.POST("", config.RateLimit, config.ReviewHandler.SubmitApplication)

		// Specific action endpoints must come before the bare /:id routes.
		applications.POST("/:id/claim",
			middleware.RequireStaffActor(), config.RateLimit,
			config.ReviewHandler.ClaimApplication)
		applications.POST("/:id/unclaim",
			middleware.RequireStaffActor(), config.RateLimit,
			config.ReviewHandler.UnclaimApplication)
		applications.POST("/:id/decision",
			middleware.RequireStaffActor(), config.RateLimit,
			config.ReviewHandler.DecideApplication)
		applications.GET("/:id/actions", config.ReviewHandler.RecentActions)

		applications.GET("/:id", config.ReviewHandler.GetApplication)
	}

	api.GET("/codes/:code", config.ReviewHandler.ResolveCode)
	api.GET("/guilds/:guild_id/stats", config.ReviewHandler.ReviewStats)
}
