package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
	KeySession = key("session")
	KeyToken   = key("token")
)

type Config struct {
	Service     Service
	Postgres    Postgres
	Valkey      Valkey
	Kafka       Kafka
	JWT         JWT
	UserService UserService
	Stream      Stream
	Storage     Storage
	Logger      Logger
	Metrics     Metrics
	Platform    Platform
}

type Service struct {
	Port string `env:"MESSENGER_SERVICE_PORT" env-default:"8080"`
	Name string `env:"MESSENGER_SERVICE_NAME" env-default:"messenger-service"`
	Role string `env:"MESSENGER_SERVICE_REQUIRED_ROLE"`
}

type Postgres struct {
	User     string `env:"MESSENGER_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"MESSENGER_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"MESSENGER_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"MESSENGER_SERVICE_POSTGRES_HOST" env-required:"true"`
	Port     string `env:"MESSENGER_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Valkey struct {
	Address  string `env:"MESSENGER_SERVICE_VALKEY_ADDRESS" env-required:"true"`
	Password string `env:"MESSENGER_SERVICE_VALKEY_PASSWORD"`
	DB       int    `env:"MESSENGER_SERVICE_VALKEY_DB" env-default:"0"`
}

type Kafka struct {
	Host            string `env:"MESSENGER_SERVICE_KAFKA_HOST" env-required:"true"`
	Port            string `env:"MESSENGER_SERVICE_KAFKA_PORT" env-default:"9092"`
	PreviewTopic    string `env:"MESSENGER_SERVICE_KAFKA_PREVIEW_TOPIC" env-default:"chat.craw-url"`
	PreviewGroupID  string `env:"MESSENGER_SERVICE_KAFKA_PREVIEW_GROUP" env-default:"messenger-preview-crawler"`
}

type JWT struct {
	AccessPublicKey  string        `env:"MESSENGER_SERVICE_JWT_ACCESS_PUBLIC_KEY" env-required:"true"`
	RefreshPublicKey string        `env:"MESSENGER_SERVICE_JWT_REFRESH_PUBLIC_KEY" env-required:"true"`
	VerifyTimeout    time.Duration `env:"MESSENGER_SERVICE_JWT_VERIFY_TIMEOUT" env-default:"3s"`
}

type UserService struct {
	BaseURL string        `env:"MESSENGER_SERVICE_USER_BASE_URL" env-required:"true"`
	Timeout time.Duration `env:"MESSENGER_SERVICE_USER_TIMEOUT" env-default:"3s"`
}

type Stream struct {
	BaseURL   string        `env:"MESSENGER_SERVICE_STREAM_BASE_URL" env-required:"true"`
	APIKey    string        `env:"MESSENGER_SERVICE_STREAM_API_KEY" env-required:"true"`
	SecretKey string        `env:"MESSENGER_SERVICE_STREAM_SECRET_KEY" env-required:"true"`
	Timeout   time.Duration `env:"MESSENGER_SERVICE_STREAM_TIMEOUT" env-default:"5s"`
}

type Storage struct {
	BaseURL string        `env:"MESSENGER_SERVICE_STORAGE_BASE_URL" env-required:"true"`
	Timeout time.Duration `env:"MESSENGER_SERVICE_STORAGE_TIMEOUT" env-default:"15s"`
}

type Logger struct {
	Host string `env:"MESSENGER_SERVICE_LOGGER_HOST"`
	Port string `env:"MESSENGER_SERVICE_LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"MESSENGER_SERVICE_METRICS_HOST"`
	Port int    `env:"MESSENGER_SERVICE_METRICS_PORT"`
}

type Platform struct {
	Env string `env:"MESSENGER_SERVICE_ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}
