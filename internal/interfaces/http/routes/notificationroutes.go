package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "traindesk/internal/interfaces/http/handlers/notification"
	"traindesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.List)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
	}
}
