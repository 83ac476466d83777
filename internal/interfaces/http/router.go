// Package http assembles the gin engine: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "traindesk/internal/application/auth/usecases"
	creditapp "traindesk/internal/application/credit"
	notificationapp "traindesk/internal/application/notification"
	solutionusecases "traindesk/internal/application/solution/usecases"
	ticketusecases "traindesk/internal/application/ticket/usecases"
	userusecases "traindesk/internal/application/user/usecases"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/infrastructure/auth"
	"traindesk/internal/infrastructure/config"
	"traindesk/internal/infrastructure/repository"
	"traindesk/internal/infrastructure/token"
	adminhandlers "traindesk/internal/interfaces/http/handlers/admin"
	authhandlers "traindesk/internal/interfaces/http/handlers/auth"
	credithandlers "traindesk/internal/interfaces/http/handlers/credit"
	knowledgehandlers "traindesk/internal/interfaces/http/handlers/knowledge"
	notificationhandlers "traindesk/internal/interfaces/http/handlers/notification"
	tickethandlers "traindesk/internal/interfaces/http/handlers/ticket"
	"traindesk/internal/interfaces/http/middleware"
	"traindesk/internal/interfaces/http/routes"
	"traindesk/internal/shared/db"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/services/markdown"
	"traindesk/internal/shared/utils"
)

type Router struct {
	engine              *gin.Engine
	authMiddleware      *middleware.AuthMiddleware
	authHandler         *authhandlers.AuthHandler
	ticketHandler       *tickethandlers.TicketHandler
	knowledgeHandler    *knowledgehandlers.KnowledgeHandler
	creditHandler       *credithandlers.CreditHandler
	notificationHandler *notificationhandlers.NotificationHandler
	adminHandler        *adminhandlers.AdminHandler
}

// NewRouter wires the full HTTP stack against the given database and event
// dispatcher. The dispatcher must already be running; post-commit handlers
// are registered by the caller.
func NewRouter(database *gorm.DB, dispatcher events.EventDispatcher, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	txMgr := db.NewTransactionManager(database)

	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	solutionRepo := repository.NewSolutionRepository(database)
	couponRepo := repository.NewCouponRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	codeGen := token.NewCouponCodeGenerator()
	renderer := markdown.NewMarkdownService()
	ledger := creditapp.NewLedger(userRepo, log)

	authHandler := authhandlers.NewAuthHandler(
		authusecases.NewRegisterUseCase(userRepo, hasher, log),
		authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, dispatcher, log),
		ticketusecases.NewRedeemTicketUseCase(txMgr, ticketRepo, dispatcher, log),
		ticketusecases.NewResolveTicketUseCase(txMgr, ticketRepo, solutionRepo, dispatcher, log),
		ticketusecases.NewResolveWithExistingUseCase(txMgr, ticketRepo, solutionRepo, ledger, dispatcher, log),
		ticketusecases.NewReviewSolutionUseCase(txMgr, ticketRepo, solutionRepo, ledger, dispatcher, log),
		ticketusecases.NewReopenTicketUseCase(txMgr, ticketRepo, dispatcher, log),
		ticketusecases.NewUpdateTicketUseCase(txMgr, ticketRepo, dispatcher, log),
		ticketusecases.NewDeleteTicketUseCase(txMgr, ticketRepo, dispatcher, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, solutionRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
	)

	knowledgeHandler := knowledgehandlers.NewKnowledgeHandler(
		solutionusecases.NewSearchSolutionsUseCase(solutionRepo, renderer, log),
		solutionusecases.NewRecentSolutionsUseCase(solutionRepo, log),
		solutionusecases.NewGetSolutionUseCase(solutionRepo, renderer, log),
	)

	creditHandler := credithandlers.NewCreditHandler(
		creditapp.NewConvertCreditsUseCase(txMgr, ledger, couponRepo, codeGen, dispatcher, log),
		creditapp.NewListCouponsUseCase(couponRepo, log),
		creditapp.NewGetBalanceUseCase(userRepo, log),
	)

	notificationHandler := notificationhandlers.NewNotificationHandler(
		notificationapp.NewListNotificationsUseCase(notificationRepo, log),
		notificationapp.NewMarkReadUseCase(notificationRepo, log),
	)

	adminHandler := adminhandlers.NewAdminHandler(
		userusecases.NewGetStatsUseCase(userRepo, ticketRepo, solutionRepo, log),
		userusecases.NewDeleteUserUseCase(txMgr, userRepo, ticketRepo, solutionRepo, log),
		solutionusecases.NewPendingSolutionsUseCase(solutionRepo, log),
		solutionusecases.NewDisableSolutionUseCase(txMgr, solutionRepo, log),
	)

	return &Router{
		engine:              engine,
		authMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
		authHandler:         authHandler,
		ticketHandler:       ticketHandler,
		knowledgeHandler:    knowledgeHandler,
		creditHandler:       creditHandler,
		notificationHandler: notificationHandler,
		adminHandler:        adminHandler,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupKnowledgeRoutes(r.engine, &routes.KnowledgeRouteConfig{
		KnowledgeHandler: r.knowledgeHandler,
		AuthMiddleware:   r.authMiddleware,
	})
	routes.SetupCreditRoutes(r.engine, &routes.CreditRouteConfig{
		CreditHandler:  r.creditHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
