package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	InquiryStorePostgres = "postgres"
	InquiryStoreDynamoDB = "dynamodb"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Database Database
	DynamoDB DynamoDB
	Redis    Redis
	Admin    Admin
	Telegram Telegram
	Studio   Studio

	InquiryStore      string        `env:"INQUIRY_STORE" envDefault:"postgres"`
	InquiryRateLimit  int64         `env:"INQUIRY_RATE_LIMIT" envDefault:"5"`
	InquiryRateWindow time.Duration `env:"INQUIRY_RATE_WINDOW" envDefault:"10m"`
}

type Database struct {
	URL            string        `env:"DATABASE_URL,required,notEmpty"`
	MaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns       int32         `env:"DB_MIN_CONNS" envDefault:"2"`
	MaxConnIdle    time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"2m"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	InquiriesTable  string `env:"INQUIRIES_TABLE" envDefault:"inquiries"`
}

// Redis is optional: an empty Addr disables the catalog cache and the
// inquiry rate limiter.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"1m"`
}

type Admin struct {
	JWTSecret    string        `env:"JWT_SECRET,required,notEmpty"`
	PasswordHash string        `env:"ADMIN_PASSWORD_HASH,required,notEmpty"`
	TokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`
}

type Telegram struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   int64  `env:"TELEGRAM_CHAT_ID"`
}

type Studio struct {
	Name     string `env:"STUDIO_NAME" envDefault:"Laser Wood Design"`
	Currency string `env:"CURRENCY" envDefault:"RSD"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.InquiryStore {
	case InquiryStorePostgres, InquiryStoreDynamoDB:
	default:
		return nil, fmt.Errorf("unsupported INQUIRY_STORE %q", cfg.InquiryStore)
	}
	if len(cfg.Admin.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	if cfg.InquiryRateLimit <= 0 {
		return nil, fmt.Errorf("INQUIRY_RATE_LIMIT must be positive")
	}

	return &cfg, nil
}

func (c *Config) Release() bool { return c.GinMode == "release" }

func (t Telegram) Enabled() bool { return t.BotToken != "" && t.ChatID != 0 }
