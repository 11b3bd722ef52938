package config

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	SnapshotBackendRedis  = "redis"
	SnapshotBackendDB     = "db"
	SnapshotBackendMemory = "memory"
)

const (
	EnvAppEnv      = "SHOPSUITE_APP_ENV"
	EnvAppPort     = "SHOPSUITE_APP_PORT"
	EnvAuthPIN     = "SHOPSUITE_AUTH_PIN"
	EnvAuthPINHash = "SHOPSUITE_AUTH_PIN_HASH"
	EnvJWTSecret   = "SHOPSUITE_JWT_SECRET"
	EnvJWTExpMins  = "SHOPSUITE_JWT_EXPIRATION_MINUTES"
	EnvRedisURL    = "SHOPSUITE_REDIS_URL"
	EnvSnapBackend = "SHOPSUITE_SNAPSHOT_BACKEND"
	EnvDBDSN       = "SHOPSUITE_DB_DSN"
	EnvUseSQLite   = "SHOPSUITE_USE_SQLITE"
	EnvGeminiKey   = "SHOPSUITE_GEMINI_API_KEY"
)
