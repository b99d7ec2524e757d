package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Security   SecurityConfig   `mapstructure:"security"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Outbox     OutboxConfig     `mapstructure:"outbox"`
	Redemption RedemptionConfig `mapstructure:"redemption"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
	Services   ServicesConfig   `mapstructure:"services"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// KafkaConfig controls event publishing and the merchant event consumer.
// An empty broker list disables Kafka; events are then only logged.
type KafkaConfig struct {
	Brokers       []string `mapstructure:"brokers"`
	ClientID      string   `mapstructure:"client_id"`
	ConsumerGroup string   `mapstructure:"consumer_group"`
	BufferSize    int      `mapstructure:"buffer_size"`
}

// Enabled reports whether at least one broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.Brokers[0] != ""
}

type SecurityConfig struct {
	InternalSecret   string `mapstructure:"internal_secret"`
	InternalFailOpen bool   `mapstructure:"internal_fail_open"`
	QRSigningSecret  string `mapstructure:"qr_signing_secret"`
	QRIssuer         string `mapstructure:"qr_issuer"`
}

type SettlementConfig struct {
	ReserveTimeout     time.Duration `mapstructure:"reserve_timeout"`
	WalletIssueTimeout time.Duration `mapstructure:"wallet_issue_timeout"`
	LockTTL            time.Duration `mapstructure:"lock_ttl"`
	WalletOutbox       bool          `mapstructure:"wallet_outbox"`
}

type OutboxConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	BaseBackoff  time.Duration `mapstructure:"base_backoff"`
	MaxBackoff   time.Duration `mapstructure:"max_backoff"`
	Lease        time.Duration `mapstructure:"lease"`
}

type RedemptionConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// ServicesConfig points at remote collaborators. Empty URLs mean the
// in-process implementation is used.
type ServicesConfig struct {
	VoucherURL string        `mapstructure:"voucher_url"`
	WalletURL  string        `mapstructure:"wallet_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from a .env file, a config file and environment
// variables, in increasing order of precedence. Prefix: KADO_.
// Nested keys use underscore: KADO_DATABASE_HOST, KADO_SECURITY_INTERNAL_SECRET, etc.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "kado24")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.client_id", "kado24-settlement")
	v.SetDefault("kafka.consumer_group", "kado24-settlement")
	v.SetDefault("kafka.buffer_size", 1024)
	v.SetDefault("security.internal_secret", "")
	v.SetDefault("security.internal_fail_open", false)
	v.SetDefault("security.qr_signing_secret", "")
	v.SetDefault("security.qr_issuer", "kado24")
	v.SetDefault("settlement.reserve_timeout", "5s")
	v.SetDefault("settlement.wallet_issue_timeout", "10s")
	v.SetDefault("settlement.lock_ttl", "30s")
	v.SetDefault("settlement.wallet_outbox", true)
	v.SetDefault("outbox.poll_interval", "15s")
	v.SetDefault("outbox.batch_size", 20)
	v.SetDefault("outbox.max_attempts", 8)
	v.SetDefault("outbox.base_backoff", "30s")
	v.SetDefault("outbox.max_backoff", "1h")
	v.SetDefault("outbox.lease", "2m")
	v.SetDefault("redemption.cache_ttl", "24h")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.limit", 60)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("services.voucher_url", "")
	v.SetDefault("services.wallet_url", "")
	v.SetDefault("services.timeout", "5s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// KADO_DATABASE_HOST -> database.host
	v.SetEnvPrefix("KADO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
