package routes

import (
	"github.com/gin-gonic/gin"

	knowledgehandlers "traindesk/internal/interfaces/http/handlers/knowledge"
	"traindesk/internal/interfaces/http/middleware"
)

type KnowledgeRouteConfig struct {
	KnowledgeHandler *knowledgehandlers.KnowledgeHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupKnowledgeRoutes(engine *gin.Engine, config *KnowledgeRouteConfig) {
	knowledge := engine.Group("/knowledge")
	knowledge.Use(config.AuthMiddleware.RequireAuth())
	{
		knowledge.GET("", config.KnowledgeHandler.Search)
		knowledge.GET("/recent", config.KnowledgeHandler.Recent)
		knowledge.GET("/:id", config.KnowledgeHandler.Get)
	}
}
