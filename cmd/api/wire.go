package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/kado24mv-star/kado24-platform-sub000/config"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/client"
	httpHandler "github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/handler"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/middleware"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/messaging/kafka"
	pgStorage "github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/storage/postgres"
	redisStorage "github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/storage/redis"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/service"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// app holds the wired process. close releases everything in reverse order.
type app struct {
	cfg *config.Config
	log zerolog.Logger

	pool     *pgxpool.Pool
	rdb      *goredis.Client
	producer *kafka.Producer
	consumer *kafka.Consumer

	deps       httpHandler.RouterDeps
	reconciler *service.WalletReconciler
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty), nil
}

func buildApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	a.pool = pool

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.rdb = rdb

	// Repositories
	voucherRepo := pgStorage.NewVoucherRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	walletRepo := pgStorage.NewWalletVoucherRepo(pool)
	redemptionRepo := pgStorage.NewRedemptionRepo(pool)
	holdRepo := pgStorage.NewPayoutHoldRepo(pool)
	outboxRepo := pgStorage.NewOutboxRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Messaging
	var publisher interface {
		ports.EventPublisher
		ports.NotificationSender
	}
	if cfg.Kafka.Enabled() {
		a.producer = kafka.NewProducer(cfg.Kafka, logger.Component(log, "kafka_producer"))
		a.producer.Start(ctx)
		publisher = kafka.NewPublisher(a.producer)
	} else {
		log.Warn().Msg("no kafka brokers configured, events are only logged")
		publisher = kafka.NewLogPublisher(logger.Component(log, "events"))
	}

	qr, err := service.NewQRService(qrSecret(cfg, log), cfg.Security.QRIssuer)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("qr codec: %w", err)
	}

	// Services
	stockSvc := service.NewStockService(voucherRepo, transactor, logger.Component(log, "stock"))
	orderSvc := service.NewOrderService(orderRepo, publisher, logger.Component(log, "orders"))
	walletSvc := service.NewWalletService(walletRepo, transactor, qr, publisher, logger.Component(log, "wallet"))
	redemptionSvc := service.NewRedemptionService(
		redemptionRepo, walletRepo, transactor,
		redisStorage.NewRedemptionCache(rdb), qr, publisher, publisher,
		cfg.Redemption.CacheTTL, logger.Component(log, "redemptions"),
	)
	payoutSvc := service.NewPayoutService(holdRepo, logger.Component(log, "payouts"))
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	// Settlement talks to stock and wallet through their ports; remote
	// services replace the in-process ones when their URLs are set.
	var stock ports.StockLedger = stockSvc
	if cfg.Services.VoucherURL != "" {
		stock = client.NewStockClient(cfg.Services.VoucherURL, cfg.Security.InternalSecret, cfg.Services.Timeout)
		log.Info().Str("url", cfg.Services.VoucherURL).Msg("using remote voucher service")
	}
	var issuer ports.WalletIssuer = walletSvc
	if cfg.Services.WalletURL != "" {
		issuer = client.NewWalletClient(cfg.Services.WalletURL, cfg.Security.InternalSecret, cfg.Services.Timeout)
		log.Info().Str("url", cfg.Services.WalletURL).Msg("using remote wallet service")
	}

	var outbox ports.WalletOutboxRepository
	if cfg.Settlement.WalletOutbox {
		outbox = outboxRepo
	}
	paymentSvc := service.NewPaymentService(
		orderSvc, stock, issuer, outbox,
		redisStorage.NewSettlementLock(rdb),
		service.SettlementConfig{
			ReserveTimeout:     cfg.Settlement.ReserveTimeout,
			WalletIssueTimeout: cfg.Settlement.WalletIssueTimeout,
			LockTTL:            cfg.Settlement.LockTTL,
		},
		logger.Component(log, "payments"),
	)

	a.reconciler = service.NewWalletReconciler(outboxRepo, walletRepo, issuer, service.ReconcilerConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
		BaseBackoff:  cfg.Outbox.BaseBackoff,
		MaxBackoff:   cfg.Outbox.MaxBackoff,
		Lease:        cfg.Outbox.Lease,
	}, logger.Component(log, "wallet_reconciler"))

	if cfg.Kafka.Enabled() {
		suspensions := service.NewSuspensionHandler(payoutSvc, voucherRepo, logger.Component(log, "suspensions"))
		a.consumer = kafka.NewConsumer(cfg.Kafka, domain.TopicMerchantEvents, logger.Component(log, "kafka_consumer"))
		a.consumer.Handle(domain.EventMerchantSuspended, suspensions.HandleMerchantSuspended)
	}

	a.deps = httpHandler.RouterDeps{
		Stock:          stockSvc,
		Orders:         orderSvc,
		Payments:       paymentSvc,
		Wallet:         walletSvc,
		Redemptions:    redemptionSvc,
		Payouts:        payoutSvc,
		AuditSvc:       auditSvc,
		InternalSecret: cfg.Security.InternalSecret,
		FailOpen:       cfg.Security.InternalFailOpen,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	}
	if cfg.RateLimit.Enabled {
		a.deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		a.deps.RateLimit = middleware.RateLimitRule{Limit: int64(cfg.RateLimit.Limit), Window: cfg.RateLimit.Window}
	}

	return a, nil
}

// qrSecret returns the configured signing secret. Without one a random
// secret is generated, so QR payloads do not survive a restart.
func qrSecret(cfg *config.Config, log zerolog.Logger) string {
	if cfg.Security.QRSigningSecret != "" {
		return cfg.Security.QRSigningSecret
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	log.Warn().Msg("security.qr_signing_secret not set, using a random secret; issued QR codes will not verify after restart")
	return hex.EncodeToString(b)
}

func (a *app) close() {
	if a.producer != nil {
		a.producer.Close()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing redis")
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
