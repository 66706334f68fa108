package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Bakery       BakeryConfig
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
	Env          string   `envconfig:"CAKEKART_APP_ENV" required:"true"`
	Port         string   `envconfig:"CAKEKART_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"CAKEKART_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"CAKEKART_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"CAKEKART_CORS_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CAKEKART_DB_DSN"`
	Driver string `envconfig:"CAKEKART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CAKEKART_DB_HOST"`
	LegacyPort     int    `envconfig:"CAKEKART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CAKEKART_DB_USER"`
	LegacyPassword string `envconfig:"CAKEKART_DB_PASSWORD"`
	LegacyName     string `envconfig:"CAKEKART_DB_NAME"`
	LegacySSLMode  string `envconfig:"CAKEKART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CAKEKART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CAKEKART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CAKEKART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAKEKART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CAKEKART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CAKEKART_REDIS_ADDR"`
	Password     string        `envconfig:"CAKEKART_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAKEKART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAKEKART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAKEKART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAKEKART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAKEKART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAKEKART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"CAKEKART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CAKEKART_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"CAKEKART_JWT_EXPIRATION_MINUTES" required:"true"`
}

// BakeryConfig carries storefront business knobs.
type BakeryConfig struct {
	WhatsAppPhone         string `envconfig:"CAKEKART_BAKERY_WHATSAPP_PHONE" default:"918624891891"`
	InquiryPhone          string `envconfig:"CAKEKART_BAKERY_INQUIRY_PHONE" default:"918888888888"`
	Name                  string `envconfig:"CAKEKART_BAKERY_NAME" default:"Sweet Delights"`
	DeliveryFee           int    `envconfig:"CAKEKART_DELIVERY_FEE" default:"50"`
	FreeDeliveryThreshold int    `envconfig:"CAKEKART_FREE_DELIVERY_THRESHOLD" default:"999"`
}

type FeatureFlagsConfig struct {
	UseSQLite      bool `envconfig:"CAKEKART_USE_SQLITE" default:"false"`
	AutoMigrate    bool `envconfig:"CAKEKART_AUTO_MIGRATE" default:"false"`
	SeedDemoOrders bool `envconfig:"CAKEKART_SEED_DEMO_ORDERS" default:"false"`
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
