package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - настройки консоли оперативного дежурного
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Upstream services
	APIBaseURL      string        `env:"API_BASE_URL"`
	AgentBaseURL    string        `env:"AGENT_BASE_URL"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"0"`
	UploadBucket    string        `env:"UPLOAD_BUCKET"`

	// Dispatch ledger
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr        string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass        string `env:"REDIS_PASSWORD"`
	RedisDB          int    `env:"REDIS_DB" envDefault:"0"`
	SessionKeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"drishti:session:"`

	// Kafka Config
	KafkaBrokers     []string `env:"KAFKA_BROKERS"`
	KafkaTopicEvents string   `env:"KAFKA_TOPIC_EVENTS" envDefault:"drishti.events"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Poll intervals
	PollResponders time.Duration `env:"POLL_INTERVAL_RESPONDERS" envDefault:"5s"`
	PollZones      time.Duration `env:"POLL_INTERVAL_ZONES" envDefault:"10s"`
	PollIncidents  time.Duration `env:"POLL_INTERVAL_INCIDENTS" envDefault:"30s"`

	// Camera
	CameraSnapshotURL   string        `env:"CAMERA_SNAPSHOT_URL"`
	CameraZone          string        `env:"CAMERA_ZONE"`
	LiveCaptureInterval time.Duration `env:"LIVE_CAPTURE_INTERVAL" envDefault:"5s"`
	MediaAutoIncident   bool          `env:"MEDIA_AUTO_INCIDENT" envDefault:"true"`
	// CameraDemo подставляет пустой кадр, когда CAMERA_SNAPSHOT_URL не задан
	CameraDemo bool `env:"CAMERA_DEMO" envDefault:"false"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		APIBaseURL:          strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		AgentBaseURL:        strings.TrimRight(os.Getenv("AGENT_BASE_URL"), "/"),
		UpstreamTimeout:     getEnvAsDuration("UPSTREAM_TIMEOUT", 0),
		UploadBucket:        os.Getenv("UPLOAD_BUCKET"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		SessionKeyPrefix:    getEnv("SESSION_KEY_PREFIX", "drishti:session:"),
		KafkaBrokers:        getEnvAsList("KAFKA_BROKERS"),
		KafkaTopicEvents:    getEnv("KAFKA_TOPIC_EVENTS", "drishti.events"),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		PollResponders:      getEnvAsDuration("POLL_INTERVAL_RESPONDERS", 5*time.Second),
		PollZones:           getEnvAsDuration("POLL_INTERVAL_ZONES", 10*time.Second),
		PollIncidents:       getEnvAsDuration("POLL_INTERVAL_INCIDENTS", 30*time.Second),
		CameraSnapshotURL:   os.Getenv("CAMERA_SNAPSHOT_URL"),
		CameraZone:          os.Getenv("CAMERA_ZONE"),
		LiveCaptureInterval: getEnvAsDuration("LIVE_CAPTURE_INTERVAL", 5*time.Second),
		MediaAutoIncident:   getEnvAsBool("MEDIA_AUTO_INCIDENT", true),
		CameraDemo:          getEnvAsBool("CAMERA_DEMO", false),
	}

	if cfg.AgentBaseURL == "" {
		cfg.AgentBaseURL = cfg.APIBaseURL
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
