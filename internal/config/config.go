package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Local    LocalConfig    `yaml:"local"`
	Sync     SyncConfig     `yaml:"sync"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// SyncRateLimit caps manual sync triggers per minute; 0 disables the cap.
	SyncRateLimit int `yaml:"sync_rate_limit" env:"SERVER_SYNC_RATE_LIMIT" env-default:"6"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN runs
// the application without a remote: everything stays local.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LocalConfig holds the on-device SQLite store settings.
type LocalConfig struct {
	Path        string        `yaml:"path"         env:"LOCAL_PATH"         env-default:"wardrobe.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"LOCAL_BUSY_TIMEOUT" env-default:"5s"`
}

// SyncConfig controls how the two collections are reconciled with the remote.
type SyncConfig struct {
	OwnerID        string `yaml:"owner_id"        env:"SYNC_OWNER_ID"        env-required:"true"`
	SelfTable      string `yaml:"self_table"      env:"SYNC_SELF_TABLE"      env-default:"clothes_items"`
	DependentTable string `yaml:"dependent_table" env:"SYNC_DEPENDENT_TABLE" env-default:"dependent_clothes_items"`
	BatchSize      int    `yaml:"batch_size"      env:"SYNC_BATCH_SIZE"      env-default:"50"`
	Watch          bool   `yaml:"watch"           env:"SYNC_WATCH"           env-default:"true"`
	SyncOnStart    bool   `yaml:"sync_on_start"   env:"SYNC_ON_START"        env-default:"true"`
}

// AuthConfig holds settings for the local API bearer tokens.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wardrobe"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RemoteEnabled reports whether a remote database is configured.
func (c DatabaseConfig) RemoteEnabled() bool {
	return c.DSN != ""
}
