// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CardHandler        *handler.CardHandler
	CodeHandler        *handler.CodeHandler
	TransactionHandler *handler.TransactionHandler
	TierHandler        *handler.TierHandler
	RedemptionHandler  *handler.RedemptionHandler
	JobHandler         *handler.JobHandler
	HealthHandler      *handler.HealthHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cardHandler        *handler.CardHandler
	codeHandler        *handler.CodeHandler
	transactionHandler *handler.TransactionHandler
	tierHandler        *handler.TierHandler
	redemptionHandler  *handler.RedemptionHandler
	jobHandler         *handler.JobHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cardHandler:        params.CardHandler,
		codeHandler:        params.CodeHandler,
		transactionHandler: params.TransactionHandler,
		tierHandler:        params.TierHandler,
		redemptionHandler:  params.RedemptionHandler,
		jobHandler:         params.JobHandler,
		healthHandler:      params.HealthHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)

	staff := r.authMiddleware.RequireRole(entity.RoleStaff, entity.RoleAdmin)
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	scoped := r.authMiddleware.RestaurantScope("rid")

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Card routes. Guests reach their own cards, the handlers check ownership.
	cardsGroup := apiV1.Group("/cards")
	{
		cardsGroup.POST("", r.cardHandler.IssueCard)
		cardsGroup.GET("/:id", r.cardHandler.GetCard)
		cardsGroup.GET("/:id/ledger", r.cardHandler.GetLedger)
		cardsGroup.PUT("/:id/status", r.cardHandler.UpdateCardStatus, admin)
		cardsGroup.POST("/:id/adjustments", r.cardHandler.AdjustPoints, admin)
		cardsGroup.GET("/:id/reconcile", r.cardHandler.ReconcileCard, admin)

		cardsGroup.POST("/:id/code", r.codeHandler.GenerateCode)
		cardsGroup.GET("/:id/code", r.codeHandler.GetActiveCode)
		cardsGroup.GET("/:id/code/qr", r.codeHandler.RenderQR)

		cardsGroup.POST("/:id/tier", r.tierHandler.ManualUpgrade, admin)
		cardsGroup.POST("/:id/tier/evaluate", r.tierHandler.EvaluateTier)
		cardsGroup.GET("/:id/tier-history", r.tierHandler.GetTierHistory)

		cardsGroup.POST("/:id/redemptions", r.redemptionHandler.Redeem)
	}

	// Terminal routes, confined to the staff member's restaurant
	restaurantsGroup := apiV1.Group("/restaurants/:rid")
	{
		restaurantsGroup.POST("/codes/validate", r.codeHandler.ValidateCode, staff, scoped)
		restaurantsGroup.POST("/purchases", r.transactionHandler.RecordPurchase, staff, scoped)
		restaurantsGroup.GET("/tiers", r.tierHandler.ListTiers)
		restaurantsGroup.POST("/tiers", r.tierHandler.CreateTier, admin)
		restaurantsGroup.POST("/rewards", r.redemptionHandler.CreateReward, admin)
	}

	transactionsGroup := apiV1.Group("/transactions")
	transactionsGroup.Use(staff)
	{
		transactionsGroup.GET("/:id", r.transactionHandler.GetTransaction)
		transactionsGroup.POST("/:id/refund", r.transactionHandler.ProcessRefund)
		transactionsGroup.POST("/:id/cancel", r.transactionHandler.CancelTransaction)
		transactionsGroup.POST("/:id/dispute", r.transactionHandler.DisputeTransaction, admin)
	}

	apiV1.DELETE("/tiers/:id", r.tierHandler.DeleteTier, admin)
	apiV1.GET("/rewards/:id", r.redemptionHandler.GetReward)

	redemptionsGroup := apiV1.Group("/redemptions")
	redemptionsGroup.Use(staff)
	{
		redemptionsGroup.POST("/use", r.redemptionHandler.UseRedemption)
		redemptionsGroup.POST("/:id/cancel", r.redemptionHandler.CancelRedemption)
	}

	// Maintenance triggers for the scheduler
	jobsGroup := e.Group("/internal/jobs")
	jobsGroup.Use(r.authMiddleware.Authenticate)
	jobsGroup.Use(r.authMiddleware.RequireRole(entity.RoleScheduler))
	{
		jobsGroup.POST("/rotate-codes", r.jobHandler.RotateCodes)
		jobsGroup.POST("/cleanup-identifiers", r.jobHandler.CleanupIdentifiers)
		jobsGroup.POST("/expire-redemptions", r.jobHandler.ExpireRedemptions)
	}
}
