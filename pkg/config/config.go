package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every Component Compass environment variable.
const EnvPrefix = "CC"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names used by tests and error messages.
const (
	EnvAppEnv    = "CC_APP_ENV"
	EnvPort      = "CC_APP_PORT"
	EnvDBDriver  = "CC_DB_DRIVER"
	EnvDBDSN     = "CC_DB_DSN"
	EnvDBPath    = "CC_DB_PATH"
	EnvRedisURL  = "CC_REDIS_URL"
	EnvJWTSecret = "CC_JWT_SECRET"
	EnvJWTIssuer = "CC_JWT_ISSUER"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Receipts     ReceiptsConfig
	Feedback     FeedbackConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CC_APP_ENV" default:"dev"`
	Port         string `envconfig:"CC_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CC_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CC_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"CC_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"CC_DB_DSN"`
	Path   string `envconfig:"CC_DB_PATH" default:"data/practical_management.db"`

	MaxOpenConns    int           `envconfig:"CC_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"CC_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CC_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CC_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the single-file sqlite driver is selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite") || strings.EqualFold(db.Driver, "sqlite3")
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		if db.Path == "" {
			return fmt.Errorf("either %s or %s is required for the sqlite driver", EnvDBDSN, EnvDBPath)
		}
		db.DSN = db.Path
		return nil
	}
	return fmt.Errorf("%s is required for driver %q", EnvDBDSN, db.Driver)
}

type RedisConfig struct {
	URL          string        `envconfig:"CC_REDIS_URL"`
	Address      string        `envconfig:"CC_REDIS_ADDR"`
	Password     string        `envconfig:"CC_REDIS_PASSWORD"`
	DB           int           `envconfig:"CC_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CC_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CC_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CC_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CC_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CC_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis-backed session store is configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"CC_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CC_JWT_ISSUER" default:"component-compass"`
	ExpirationMinutes int    `envconfig:"CC_JWT_EXPIRATION_MINUTES" default:"120"`
	SessionTTLMinutes int    `envconfig:"CC_SESSION_TTL_MINUTES" default:"240"`
}

// SessionTTL returns the server-side session lifetime.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	MinLength        int `envconfig:"CC_PASSWORD_MIN_LENGTH" default:"6"`
	ArgonMemoryKB    int `envconfig:"CC_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CC_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CC_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CC_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CC_ARGON_KEY_LEN" default:"32"`
}

type ReceiptsConfig struct {
	Dir    string `envconfig:"CC_RECEIPTS_DIR" default:"Reserved_components"`
	Format string `envconfig:"CC_RECEIPTS_FORMAT" default:"pdf"`
}

type FeedbackConfig struct {
	Dir string `envconfig:"CC_FEEDBACK_DIR" default:"customer_feedback"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CC_AUTO_MIGRATE" default:"false"`
}
