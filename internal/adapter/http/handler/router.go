package handler

import (
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/middleware"
	redisStore "github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/storage/redis"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Stock          ports.StockLedger
	Orders         ports.OrderLedger
	Payments       ports.PaymentService
	Wallet         ports.WalletService
	Redemptions    ports.RedemptionService
	Payouts        ports.PayoutService
	AuditSvc       ports.AuditService         // nil = audit logging disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	InternalSecret string
	FailOpen       bool
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil || deps.RateLimit.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, deps.RateLimit, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	stockHandler := NewStockHandler(deps.Stock)
	orderHandler := NewOrderHandler(deps.Orders)
	paymentHandler := NewPaymentHandler(deps.Payments)
	walletHandler := NewWalletHandler(deps.Wallet)
	redemptionHandler := NewRedemptionHandler(deps.Redemptions)
	payoutHandler := NewPayoutHandler(deps.Payouts)

	// --- Internal routes (shared secret) ---
	internal := middleware.InternalAuth(deps.InternalSecret, deps.FailOpen, deps.Logger)
	v1.POST("/vouchers/:id/reserve", internal, stockHandler.Reserve)
	v1.POST("/vouchers/:id/release", internal, stockHandler.Release)
	v1.POST("/wallet/issue", internal, walletHandler.Issue)
	holds := v1.Group("/payouts/holds", internal)
	{
		holds.POST("", payoutHandler.CreateHold)
		holds.GET("", payoutHandler.ListHolds)
	}

	// --- Public routes (user id from the gateway) ---
	user := middleware.UserIdentity()

	orders := v1.Group("/orders", user)
	{
		orders.POST("", rl("orders"), orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("/:id/cancel", orderHandler.Cancel)
	}

	payments := v1.Group("/payments", user)
	{
		payments.POST("", rl("payments"), paymentHandler.ProcessPayment)
		payments.GET("/:orderId", paymentHandler.GetStatus)
	}

	wallet := v1.Group("/wallet/vouchers", user)
	{
		wallet.GET("", walletHandler.ListVouchers)
		wallet.POST("/:id/gift", rl("gifts"), walletHandler.Gift)
	}

	v1.POST("/redemptions", user, middleware.MerchantIdentity(), rl("redemptions"), redemptionHandler.Redeem)

	return r
}
