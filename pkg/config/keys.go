package config

// EnvPrefix is passed to envconfig; the explicit tags above carry the full
// variable names, so the prefix only matters for untagged fields.
const EnvPrefix = "mercura"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv   = "MERCURA_APP_ENV"
	EnvPort     = "MERCURA_APP_PORT"
	EnvDBDSN    = "MERCURA_DB_DSN"
	EnvDBHost   = "MERCURA_DB_HOST"
	EnvDBUser   = "MERCURA_DB_USER"
	EnvDBName   = "MERCURA_DB_NAME"
	EnvRedisURL = "MERCURA_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
