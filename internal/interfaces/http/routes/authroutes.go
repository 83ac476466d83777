// Package routes registers the HTTP endpoints on the gin engine, one file
// per area.
package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "traindesk/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
