package config

const (
	// EnvPrefix is applied by envconfig when processing the environment.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "CAKEKART_APP_ENV"
	EnvPort     = "CAKEKART_APP_PORT"
	EnvDBDSN    = "CAKEKART_DB_DSN"
	EnvDBHost   = "CAKEKART_DB_HOST"
	EnvDBUser   = "CAKEKART_DB_USER"
	EnvDBName   = "CAKEKART_DB_NAME"
	EnvRedisURL = "CAKEKART_REDIS_URL"

	EnvJWTSecret  = "CAKEKART_JWT_SECRET"
	EnvJWTIssuer  = "CAKEKART_JWT_ISSUER"
	EnvJWTExpMins = "CAKEKART_JWT_EXPIRATION_MINUTES"

	EnvBakeryWhatsAppPhone = "CAKEKART_BAKERY_WHATSAPP_PHONE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
