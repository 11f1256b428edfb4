package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/db"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/envutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

const (
	defaultPort           = "8080"
	defaultMaxUploadBytes = 100 << 20
	configFileEnv         = "AEROSENSE_CONFIG"
)

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

type OtelSettings struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Environment string  `yaml:"environment"`
	Endpoint    string  `yaml:"endpoint"`
	Headers     string  `yaml:"headers"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type Config struct {
	LogMode string `yaml:"log_mode"`
	Port    string `yaml:"port"`
	Version string `yaml:"version"`

	DBDriver   string         `yaml:"db_driver"`
	Postgres   PostgresConfig `yaml:"postgres"`
	SQLitePath string         `yaml:"sqlite_path"`

	NarrativeProvider string `yaml:"narrative_provider"`
	Location          string `yaml:"location"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisChannel  string `yaml:"redis_channel"`

	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`

	// EventTimeout caps how long a write request waits on Redis/Kafka publishing.
	EventTimeout time.Duration `yaml:"event_timeout"`

	CORSOrigins []string `yaml:"cors_origins"`

	MetricsAddr string       `yaml:"metrics_addr"`
	Otel        OtelSettings `yaml:"otel"`

	MockAnalysisDelay time.Duration `yaml:"mock_analysis_delay"`
	MaxUploadBytes    int64         `yaml:"max_upload_bytes"`
	ChartFont         string        `yaml:"chart_font"`
}

func defaultConfig() Config {
	return Config{
		LogMode:  "development",
		Port:     defaultPort,
		DBDriver: "postgres",
		Postgres: PostgresConfig{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "aerosense",
		},
		NarrativeProvider: "demo",
		RedisChannel:      "aerosense:events",
		KafkaTopic:        "aerosense.activity",
		EventTimeout:      2 * time.Second,
		Otel: OtelSettings{
			ServiceName: "aerosense",
			SampleRatio: 1,
		},
		MaxUploadBytes: defaultMaxUploadBytes,
	}
}

// LoadConfig layers defaults, the optional YAML file named by AEROSENSE_CONFIG,
// then environment variables.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()
	if path := strings.TrimSpace(os.Getenv(configFileEnv)); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
		log.Info("Loaded config file", "path", path)
	}
	applyEnv(&cfg)
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	log.Info("Configuration loaded",
		"port", cfg.Port,
		"db_driver", cfg.DBDriver,
		"narrative_provider", cfg.NarrativeProvider,
		"location", cfg.Location,
		"redis", cfg.RedisAddr != "",
		"kafka", len(cfg.KafkaBrokers) > 0,
		"otel", cfg.Otel.Enabled,
	)
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.Port = envutil.String("PORT", cfg.Port)
	cfg.Version = envutil.String("APP_VERSION", cfg.Version)

	cfg.DBDriver = envutil.String("DB_DRIVER", cfg.DBDriver)
	cfg.Postgres.Host = envutil.String("POSTGRES_HOST", cfg.Postgres.Host)
	cfg.Postgres.Port = envutil.String("POSTGRES_PORT", cfg.Postgres.Port)
	cfg.Postgres.User = envutil.String("POSTGRES_USER", cfg.Postgres.User)
	cfg.Postgres.Password = envutil.String("POSTGRES_PASSWORD", cfg.Postgres.Password)
	cfg.Postgres.Name = envutil.String("POSTGRES_NAME", cfg.Postgres.Name)
	cfg.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.Postgres.SSLMode)
	cfg.SQLitePath = envutil.String("SQLITE_PATH", cfg.SQLitePath)

	cfg.NarrativeProvider = envutil.String("NARRATIVE_PROVIDER", cfg.NarrativeProvider)
	cfg.Location = envutil.String("AEROSENSE_LOCATION", cfg.Location)

	cfg.RedisAddr = envutil.String("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = envutil.String("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisChannel = envutil.String("REDIS_CHANNEL", cfg.RedisChannel)

	cfg.KafkaBrokers = envutil.List("EVENTS_KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopic = envutil.String("EVENTS_KAFKA_TOPIC", cfg.KafkaTopic)
	cfg.EventTimeout = envutil.Duration("EVENT_PUBLISH_TIMEOUT", cfg.EventTimeout)

	cfg.CORSOrigins = envutil.List("CORS_ORIGINS", cfg.CORSOrigins)

	cfg.MetricsAddr = envutil.String("METRICS_ADDR", cfg.MetricsAddr)
	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.Otel.ServiceName)
	cfg.Otel.Environment = envutil.String("OTEL_ENVIRONMENT", cfg.Otel.Environment)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Headers = envutil.String("OTEL_EXPORTER_OTLP_HEADERS", cfg.Otel.Headers)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLE_RATIO", cfg.Otel.SampleRatio)

	cfg.MockAnalysisDelay = envutil.Duration("MOCK_ANALYSIS_DELAY", cfg.MockAnalysisDelay)
	cfg.MaxUploadBytes = int64(envutil.Int("MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
	cfg.ChartFont = envutil.String("CHART_FONT", cfg.ChartFont)
}

func (c Config) Address() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = defaultPort
	}
	return ":" + port
}

func (c Config) DBConfig() db.Config {
	return db.Config{
		Driver: c.DBDriver,
		Postgres: db.PostgresConfig{
			Host:     c.Postgres.Host,
			Port:     c.Postgres.Port,
			User:     c.Postgres.User,
			Password: c.Postgres.Password,
			Name:     c.Postgres.Name,
			SSLMode:  c.Postgres.SSLMode,
		},
		SQLitePath: c.SQLitePath,
	}
}
