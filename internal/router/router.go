package router

import (
	"time"

	"dermasilk/config"
	"dermasilk/internal/domain"
	"dermasilk/internal/guard"
	"dermasilk/internal/handler"
	"dermasilk/internal/middleware"
	"dermasilk/internal/repository"
	"dermasilk/internal/service"
	"dermasilk/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	operatorRepo := repository.NewOperatorRepository(db)
	clientRepo := repository.NewClientRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	guardRepo := repository.NewGuardRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Change events go out over one hub shared by all consoles.
	hub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(cfg, operatorRepo)
	rewardsSvc := service.NewRewardsService(rewardRepo, ledgerRepo)
	membershipSvc := service.NewMembershipService(membershipRepo, clientRepo)
	deleteGuard := guard.New(guardRepo, &cfg.Guard)
	deleteGuard.StartJanitor(time.Second)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, auditRepo)
	clientHandler := handler.NewClientHandler(clientRepo, membershipRepo, ledgerRepo, deleteGuard, domain.GuardActionDeleteClient, auditRepo, hub)
	membershipHandler := handler.NewMembershipHandler(membershipSvc, membershipRepo, hub)
	rewardHandler := handler.NewRewardHandler(rewardRepo, hub)
	pointsHandler := handler.NewPointsHandler(ledgerRepo, rewardsSvc, auditRepo, hub)
	auditHandler := handler.NewAuditHandler(auditRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
		}

		clients := api.Group("/clients")
		clients.Use(authMw)
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.GET("/guard", clientHandler.GuardStatus)
			clients.GET("/stats", clientHandler.Stats)
			clients.GET("/:id", clientHandler.Get)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
			clients.GET("/:id/balance", pointsHandler.Balance)
			clients.GET("/:id/transactions", pointsHandler.ClientTransactions)
			clients.GET("/:id/rewards", pointsHandler.Eligible)
		}

		memberships := api.Group("/memberships")
		memberships.Use(authMw)
		{
			memberships.GET("", membershipHandler.List)
			memberships.POST("", membershipHandler.Create)
			memberships.POST("/quote", membershipHandler.Quote)
			memberships.GET("/:id", membershipHandler.Get)
			memberships.PUT("/:id", membershipHandler.Update)
			memberships.DELETE("/:id", membershipHandler.Delete)
			memberships.POST("/:id/sessions/complete", membershipHandler.CompleteSession)
		}

		rewards := api.Group("/rewards")
		rewards.Use(authMw)
		{
			rewards.GET("", rewardHandler.List)
			rewards.POST("", rewardHandler.Create)
			rewards.PUT("/:id", rewardHandler.Update)
			rewards.PATCH("/:id/active", rewardHandler.ToggleActive)
			rewards.DELETE("/:id", rewardHandler.Delete)
		}

		audit := api.Group("/audit")
		audit.Use(authMw)
		{
			audit.GET("", auditHandler.List)
		}

		points := api.Group("/points")
		points.Use(authMw)
		{
			points.POST("/adjust", pointsHandler.Adjust)
			points.POST("/redeem", pointsHandler.Redeem)
			points.GET("/transactions", pointsHandler.RecentTransactions)
		}

		api.GET("/ws/events", ws.UpgradeEvents(&cfg.JWT, hub))
	}

	return r
}
