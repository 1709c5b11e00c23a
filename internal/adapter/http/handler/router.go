package handler

import (
	"ticket-store-ledger/internal/adapter/http/middleware"
	redisStore "ticket-store-ledger/internal/adapter/storage/redis"
	"ticket-store-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger           ports.TicketLedger
	TokenSvc         ports.TokenService
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	IdempotencyCache ports.IdempotencyCache     // nil = idempotency replay disabled
	HealthCheckers   []ports.HealthChecker
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies PostgreSQL + Redis when configured)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	idem := func(c *gin.Context) { c.Next() }
	if deps.IdempotencyCache != nil {
		idem = middleware.Idempotency(deps.IdempotencyCache, deps.Logger)
	}

	storeHandler := NewStoreHandler(deps.Ledger)
	eventHandler := NewEventHandler(deps.Ledger)
	purchaseHandler := NewPurchaseHandler(deps.Ledger)
	notificationHandler := NewNotificationHandler(deps.Ledger)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public queries (no auth) ---
	v1.GET("/store", rl("queries"), storeHandler.Info)
	v1.GET("/events/:id", rl("queries"), eventHandler.Info)
	v1.GET("/events/:id/sales", rl("queries"), eventHandler.SalesInfo)
	v1.GET("/purchases/:id", rl("queries"), purchaseHandler.Info)
	v1.GET("/notifications", rl("queries"), notificationHandler.List)

	// --- Authenticated commands ---
	auth := middleware.CallerAuth(deps.TokenSvc, deps.Logger)

	store := v1.Group("/store", auth)
	{
		store.POST("/open", rl("store"), storeHandler.Open)
		store.POST("/suspend", rl("store"), storeHandler.Suspend)
		store.POST("/close", rl("store"), storeHandler.Close)
	}

	events := v1.Group("/events", auth)
	{
		events.POST("", rl("events"), idem, eventHandler.Create)
		events.POST("/:id/start-sales", rl("events"), eventHandler.StartSales)
		events.POST("/:id/suspend-sales", rl("events"), eventHandler.SuspendSales)
		events.POST("/:id/end-sales", rl("events"), eventHandler.EndSales)
		events.POST("/:id/complete", rl("events"), eventHandler.Complete)
		events.POST("/:id/settle", rl("events"), eventHandler.Settle)
		events.POST("/:id/cancel", rl("events"), eventHandler.Cancel)
		events.POST("/:id/purchases", rl("purchases"), idem, purchaseHandler.Purchase)
		events.POST("/:id/purchases/:purchase_id/refund", rl("purchases"), purchaseHandler.Refund)
	}

	purchases := v1.Group("/purchases", auth)
	{
		purchases.POST("/:id/cancel", rl("purchases"), idem, purchaseHandler.Cancel)
		purchases.POST("/:id/checkin", rl("purchases"), purchaseHandler.CheckIn)
	}

	return r
}
