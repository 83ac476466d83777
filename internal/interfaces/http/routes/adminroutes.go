package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "traindesk/internal/interfaces/http/handlers/admin"
	"traindesk/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler   *adminhandlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/stats", config.AdminHandler.GetStats)
		admin.GET("/solutions/pending", config.AdminHandler.PendingSolutions)
		admin.POST("/solutions/:id/disable", config.AdminHandler.DisableSolution)
		admin.DELETE("/users/:id", config.AdminHandler.DeleteUser)
	}
}
