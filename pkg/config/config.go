package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Exchange  ExchangeConfig
	Analytics AnalyticsConfig
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
	Env          string `envconfig:"MERCURA_APP_ENV" required:"true"`
	Port         string `envconfig:"MERCURA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MERCURA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MERCURA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MERCURA_DB_DSN"`
	Driver string `envconfig:"MERCURA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MERCURA_DB_HOST"`
	LegacyPort     int    `envconfig:"MERCURA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MERCURA_DB_USER"`
	LegacyPassword string `envconfig:"MERCURA_DB_PASSWORD"`
	LegacyName     string `envconfig:"MERCURA_DB_NAME"`
	LegacySSLMode  string `envconfig:"MERCURA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MERCURA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MERCURA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MERCURA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MERCURA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MERCURA_REDIS_URL" required:"true"`
	Password     string        `envconfig:"MERCURA_REDIS_PASSWORD"`
	DB           int           `envconfig:"MERCURA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MERCURA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MERCURA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MERCURA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MERCURA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MERCURA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// ExchangeConfig points at the exchange-rate provider and controls how long
// a fetched rate table stays cached.
type ExchangeConfig struct {
	BaseURL  string        `envconfig:"MERCURA_EXCHANGE_BASE_URL" default:"https://api.exchangerate.host"`
	APIKey   string        `envconfig:"MERCURA_EXCHANGE_API_KEY"`
	CacheTTL time.Duration `envconfig:"MERCURA_EXCHANGE_CACHE_TTL" default:"24h"`
}

// AnalyticsConfig carries the dashboard plugin settings.
type AnalyticsConfig struct {
	ReportingCurrency string `envconfig:"MERCURA_ANALYTICS_REPORTING_CURRENCY" default:"EUR"`
	LowStockThreshold int    `envconfig:"MERCURA_ANALYTICS_LOW_STOCK_THRESHOLD" default:"5"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
