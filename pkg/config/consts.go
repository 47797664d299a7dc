package config

// EnvPrefix is the envconfig prefix shared by every CraftKart binary.
const EnvPrefix = "craftkart"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv                 = "CRAFTKART_APP_ENV"
	EnvPort                   = "CRAFTKART_APP_PORT"
	EnvDBDSN                  = "CRAFTKART_DB_DSN"
	EnvDBHost                 = "CRAFTKART_DB_HOST"
	EnvDBUser                 = "CRAFTKART_DB_USER"
	EnvDBName                 = "CRAFTKART_DB_NAME"
	EnvRedisURL               = "CRAFTKART_REDIS_URL"
	EnvJWTSecret              = "CRAFTKART_JWT_SECRET"
	EnvJWTIssuer              = "CRAFTKART_JWT_ISSUER"
	EnvJWTExpMins             = "CRAFTKART_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "CRAFTKART_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
