package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	Scheduler SchedulerConfig
	Rating    RatingConfig
	Voucher   VoucherConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Lagos"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-RateLimit-Remaining"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Lagos"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	// empty Issuer accepts tokens from any issuer
	Issuer string        `envconfig:"JWT_ISSUER" default:""`
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

// Empty Addr disables rate limiting.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled   bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Requests  int64         `envconfig:"RATE_LIMIT_REQUESTS" default:"20"`
	Window    time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	KeyPrefix string        `envconfig:"RATE_LIMIT_KEY_PREFIX" default:"ratelimit:voucher"`
}

// Empty Brokers means grant notifications are only logged.
type KafkaConfig struct {
	Brokers  []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic    string   `envconfig:"KAFKA_VOUCHER_TOPIC" default:"voucher.granted"`
	ClientID string   `envconfig:"KAFKA_CLIENT_ID" default:"mmartplus-vouchers"`
}

type SchedulerConfig struct {
	Enabled          bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	RatingSweepSpec  string `envconfig:"SCHEDULER_RATING_SWEEP" default:"0 3 * * *"`
	DistributionSpec string `envconfig:"SCHEDULER_VOUCHER_DISTRIBUTION" default:"0 * * * *"`
}

type RatingConfig struct {
	ConfidenceWeight float64 `envconfig:"RATING_CONFIDENCE_WEIGHT" default:"5"`
	DefaultMean      float64 `envconfig:"RATING_DEFAULT_MEAN" default:"3.5"`
}

type VoucherConfig struct {
	DefaultCodeLength int `envconfig:"VOUCHER_DEFAULT_CODE_LENGTH" default:"8"`
	MaxBulkQuantity   int `envconfig:"VOUCHER_MAX_BULK_QUANTITY" default:"1000"`
	CodeMaxAttempts   int `envconfig:"VOUCHER_CODE_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Africa/Lagos",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Lagos",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		RateLimit: RateLimitConfig{
			Enabled:   false,
			Requests:  20,
			Window:    time.Minute,
			KeyPrefix: "ratelimit:voucher",
		},
		Kafka: KafkaConfig{
			Topic:    "voucher.granted",
			ClientID: "mmartplus-vouchers-test",
		},
		Scheduler: SchedulerConfig{
			Enabled: false,
		},
		Rating: RatingConfig{
			ConfidenceWeight: 5,
			DefaultMean:      3.5,
		},
		Voucher: VoucherConfig{
			DefaultCodeLength: 8,
			MaxBulkQuantity:   1000,
			CodeMaxAttempts:   5,
		},
	}
}
