package routes

import (
	"github.com/gin-gonic/gin"

	credithandlers "traindesk/internal/interfaces/http/handlers/credit"
	"traindesk/internal/interfaces/http/middleware"
)

type CreditRouteConfig struct {
	CreditHandler  *credithandlers.CreditHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCreditRoutes(engine *gin.Engine, config *CreditRouteConfig) {
	credits := engine.Group("/credits")
	credits.Use(config.AuthMiddleware.RequireAuth())
	{
		credits.GET("/balance", config.CreditHandler.GetBalance)
		credits.POST("/convert", config.CreditHandler.Convert)
		credits.GET("/coupons", config.CreditHandler.ListCoupons)
	}
}
