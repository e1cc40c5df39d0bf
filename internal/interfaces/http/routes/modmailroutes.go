package routes

import (
	"github.com/gin-gonic/gin"

	modmailhandlers "gatehouse/internal/interfaces/http/handlers/modmail"
)

type ModmailRouteConfig struct {
	ModmailHandler *modmailhandlers.ModmailHandler
}

func SetupModmailRoutes(api *gin.RouterGroup, config *ModmailRouteConfig) {
	threads := api.Group("/modmail/threads")
	{
		threads.POST("", config.ModmailHandler.OpenThread)
		threads.POST("/:thread_id/close", config.ModmailHandler.CloseThread)
		threads.GET("/:thread_id", config.ModmailHandler.ThreadStatus)
	}
}
