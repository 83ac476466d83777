package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "traindesk/internal/interfaces/http/handlers/ticket"
	"traindesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Action endpoints come before the generic /:id routes.
		tickets.POST("/:id/redeem", config.TicketHandler.RedeemTicket)
		tickets.POST("/:id/resolve", config.TicketHandler.ResolveTicket)
		tickets.POST("/:id/resolve-with-existing", config.TicketHandler.ResolveWithExisting)
		tickets.POST("/:id/solutions/:solution_id/review", config.TicketHandler.ReviewSolution)
		tickets.POST("/:id/reopen", config.TicketHandler.ReopenTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
