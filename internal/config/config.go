package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ENV" env-required:"true"`
	HTTP    HTTPConfig
	Storage StorageConfig
	Auth    AuthConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	Driver      string        `env:"STORAGE_DRIVER" env-default:"file"`
	LoadTimeout time.Duration `env:"STORAGE_LOAD_TIMEOUT" env-default:"10s"`
	SaveTimeout time.Duration `env:"STORAGE_SAVE_TIMEOUT" env-default:"10s"`
	FilePath    string        `env:"STORAGE_FILE_PATH" env-default:"tasks.json"`
	BoltPath    string        `env:"STORAGE_BOLT_PATH" env-default:"tasks.db"`
	Postgres    PostgresConfig
	NATS        NATSConfig
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

type NATSConfig struct {
	URL            string        `env:"NATS_URL" env-default:"nats://127.0.0.1:4222"`
	Bucket         string        `env:"NATS_BUCKET" env-default:"go-tasks"`
	ConnectTimeout time.Duration `env:"NATS_CONNECT_TIMEOUT" env-default:"10s"`
}

type AuthConfig struct {
	// PasswordHash is the argon2id hash of the owner password. Leaving it
	// empty disables auth entirely.
	PasswordHash   string        `env:"AUTH_PASSWORD_HASH"`
	JWTIssuer      string        `env:"JWT_ISSUER" env-default:"go-tasks"`
	JWTSigningKey  string        `env:"JWT_SIGNING_KEY"`
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
}
