package config

import (
	"time"
)

// Config is the root configuration of the API server and the reaper.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Generation GenerationConfig `yaml:"generation"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// WorkerConfig is the root configuration of the generation worker.
type WorkerConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Worker   WorkerSettings `yaml:"worker"`
	LLM      LLMConfig      `yaml:"llm"`
	Log      LogConfig      `yaml:"log"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"postcraft"`
	SlowQuery       time.Duration `yaml:"slow_query"         env:"DATABASE_SLOW_QUERY"         env-default:"500ms"`
}

// AuthConfig holds access token settings. Token issuance lives in the
// account service; this process only validates.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"postcraft"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// GenerationConfig holds generation controller settings.
type GenerationConfig struct {
	MaxActive     int           `yaml:"max_active"     env:"GENERATION_MAX_ACTIVE"     env-default:"10"`
	BatchSize     int           `yaml:"batch_size"     env:"GENERATION_BATCH_SIZE"     env-default:"5"`
	PostTypesRaw  string        `yaml:"post_types"     env:"GENERATION_POST_TYPES"     env-default:"story,how-to,listicle,contrarian,question"`
	WorkerURL     string        `yaml:"worker_url"     env:"GENERATION_WORKER_URL"     env-default:"http://localhost:8081"`
	WorkerTimeout time.Duration `yaml:"worker_timeout" env:"GENERATION_WORKER_TIMEOUT" env-default:"10s"`
	StaleAfter    time.Duration `yaml:"stale_after"    env:"GENERATION_STALE_AFTER"    env-default:"15m"`
	HistoryLimit  int           `yaml:"history_limit"  env:"GENERATION_HISTORY_LIMIT"  env-default:"50"`

	// PostTypes is parsed from PostTypesRaw during validation.
	PostTypes []string `yaml:"-" env:"-"`
}

// WorkerSettings holds the generation worker runtime settings.
type WorkerSettings struct {
	ListenAddr      string        `yaml:"listen_addr"      env:"WORKER_LISTEN_ADDR"      env-default:":8081"`
	Concurrency     int           `yaml:"concurrency"      env:"WORKER_CONCURRENCY"      env-default:"4"`
	ClaimInterval   time.Duration `yaml:"claim_interval"   env:"WORKER_CLAIM_INTERVAL"   env-default:"5s"`
	ClaimAfter      time.Duration `yaml:"claim_after"      env:"WORKER_CLAIM_AFTER"      env-default:"30s"`
	ClaimBatch      int           `yaml:"claim_batch"      env:"WORKER_CLAIM_BATCH"      env-default:"10"`
	ItemTimeout     time.Duration `yaml:"item_timeout"     env:"WORKER_ITEM_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"WORKER_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// LLMConfig selects and configures the backend that writes suggestions.
type LLMConfig struct {
	Provider  string `yaml:"provider"   env:"LLM_PROVIDER"   env-default:"echo"`
	Model     string `yaml:"model"      env:"LLM_MODEL"`
	APIKey    string `yaml:"api_key"    env:"LLM_API_KEY"`
	BaseURL   string `yaml:"base_url"   env:"LLM_BASE_URL"`
	MaxTokens int    `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"1024"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits how often a single owner may request generation.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}
