package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv string
	Port   string

	HTTP HTTPConfig
	DB   DBConfig

	RedisAddr string

	Kafka KafkaConfig

	JWTSecret string

	RateLimitRPS   float64
	RateLimitBurst int

	OutboxPollInterval         time.Duration
	CustodyLowBalanceThreshold string
}

type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBConfig struct {
	Host          string
	User          string
	Password      string
	Name          string
	Port          string
	SSLMode       string
	MaxRetries    int
	RunMigrations bool
}

type KafkaConfig struct {
	Broker  string
	GroupID string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment. Call godotenv.Load first
// when a .env file should be honoured.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return Config{
		AppEnv: v.GetString("APP_ENV"),
		Port:   v.GetString("PORT"),
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
		},
		DB: DBConfig{
			Host:          v.GetString("DB_HOST"),
			User:          v.GetString("DB_USER"),
			Password:      v.GetString("DB_PASSWORD"),
			Name:          v.GetString("DB_NAME"),
			Port:          v.GetString("DB_PORT"),
			SSLMode:       v.GetString("DB_SSLMODE"),
			MaxRetries:    v.GetInt("DB_MAX_RETRIES"),
			RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		},
		RedisAddr: v.GetString("REDIS_ADDR"),
		Kafka: KafkaConfig{
			Broker:  v.GetString("KAFKA_BROKER"),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
		},
		JWTSecret:                  v.GetString("JWT_SECRET"),
		RateLimitRPS:               v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:             v.GetInt("RATE_LIMIT_BURST"),
		OutboxPollInterval:         v.GetDuration("OUTBOX_POLL_INTERVAL"),
		CustodyLowBalanceThreshold: v.GetString("CUSTODY_LOW_BALANCE_THRESHOLD"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("HTTP_READ_TIMEOUT", "5s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("HTTP_IDLE_TIMEOUT", "60s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "construction_accounting")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("RUN_MIGRATIONS", false)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_BROKER", "")
	v.SetDefault("KAFKA_GROUP_ID", "construction-accounting-alerts")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("OUTBOX_POLL_INTERVAL", "3s")
	v.SetDefault("CUSTODY_LOW_BALANCE_THRESHOLD", "1000")
}
