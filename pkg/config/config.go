package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Shop     ShopConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Snapshot SnapshotConfig
	Gemini   GeminiConfig
	Guards   GuardsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Auth.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Snapshot.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPSUITE_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPSUITE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPSUITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPSUITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ShopConfig seeds the shop settings record on first boot; afterwards the
// persisted snapshot wins.
type ShopConfig struct {
	Name        string `envconfig:"SHOPSUITE_SHOP_NAME" default:"Akom Computer Service Suite"`
	Phone       string `envconfig:"SHOPSUITE_SHOP_PHONE" default:""`
	LineID      string `envconfig:"SHOPSUITE_SHOP_LINE_ID" default:""`
	FacebookURL string `envconfig:"SHOPSUITE_SHOP_FACEBOOK_URL" default:""`
	MapURL      string `envconfig:"SHOPSUITE_SHOP_MAP_URL" default:""`
	Address     string `envconfig:"SHOPSUITE_SHOP_ADDRESS" default:""`
}

// AuthConfig drives the shared-PIN admin gate. PIN and PINHash are mutually
// optional, but one must be set; the argon2id hash wins when both are.
type AuthConfig struct {
	PIN               string        `envconfig:"SHOPSUITE_AUTH_PIN"`
	PINHash           string        `envconfig:"SHOPSUITE_AUTH_PIN_HASH"`
	JWTSecret         string        `envconfig:"SHOPSUITE_JWT_SECRET" required:"true"`
	JWTIssuer         string        `envconfig:"SHOPSUITE_JWT_ISSUER" default:"shopsuite"`
	ExpirationMinutes int           `envconfig:"SHOPSUITE_JWT_EXPIRATION_MINUTES" default:"720"`
	LoginWindow       time.Duration `envconfig:"SHOPSUITE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit      int           `envconfig:"SHOPSUITE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"10"`
}

// SessionTTL returns the lifetime of a minted admin session.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(a.ExpirationMinutes) * time.Minute
}

func (a AuthConfig) validate() error {
	if strings.TrimSpace(a.PIN) == "" && strings.TrimSpace(a.PINHash) == "" {
		return fmt.Errorf("either %s or %s is required", EnvAuthPIN, EnvAuthPINHash)
	}
	if a.ExpirationMinutes <= 0 {
		return fmt.Errorf("%s must be positive", EnvJWTExpMins)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPSUITE_REDIS_URL"`
	Address      string        `envconfig:"SHOPSUITE_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPSUITE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPSUITE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPSUITE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPSUITE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPSUITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPSUITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPSUITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SnapshotConfig selects the durable slot the store persists into after every
// mutation.
type SnapshotConfig struct {
	Backend string `envconfig:"SHOPSUITE_SNAPSHOT_BACKEND" default:"redis"`
	Key     string `envconfig:"SHOPSUITE_SNAPSHOT_KEY" default:"shopsuite_db_v2"`

	DSN        string `envconfig:"SHOPSUITE_DB_DSN"`
	UseSQLite  bool   `envconfig:"SHOPSUITE_USE_SQLITE" default:"false"`
	SQLitePath string `envconfig:"SHOPSUITE_SQLITE_PATH" default:"shopsuite.db"`

	MaxOpenConns    int           `envconfig:"SHOPSUITE_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"SHOPSUITE_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPSUITE_DB_CONN_MAX_LIFETIME" default:"1h"`
}

func (s SnapshotConfig) validate() error {
	switch s.Backend {
	case SnapshotBackendRedis, SnapshotBackendMemory:
		return nil
	case SnapshotBackendDB:
		if s.DSN == "" && !s.UseSQLite {
			return fmt.Errorf("snapshot backend %q needs %s or %s=true", s.Backend, EnvDBDSN, EnvUseSQLite)
		}
		return nil
	default:
		return fmt.Errorf("unknown snapshot backend %q", s.Backend)
	}
}

type GeminiConfig struct {
	APIKey  string        `envconfig:"SHOPSUITE_GEMINI_API_KEY"`
	Model   string        `envconfig:"SHOPSUITE_GEMINI_MODEL" default:"gemini-3-flash-preview"`
	Timeout time.Duration `envconfig:"SHOPSUITE_GEMINI_TIMEOUT" default:"30s"`
}

// GuardsConfig toggles the strict-mode validations. Every flag defaults to
// the permissive legacy behavior.
type GuardsConfig struct {
	GuardRepairTransitions bool `envconfig:"SHOPSUITE_STORE_GUARD_REPAIR_TRANSITIONS" default:"false"`
	ClampNegativeStock     bool `envconfig:"SHOPSUITE_STORE_CLAMP_NEGATIVE_STOCK" default:"false"`
	RejectReimport         bool `envconfig:"SHOPSUITE_STORE_REJECT_REIMPORT" default:"false"`
}
