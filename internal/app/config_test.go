package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		configFileEnv, "PORT", "DB_DRIVER", "SQLITE_PATH", "NARRATIVE_PROVIDER", "AEROSENSE_LOCATION",
		"REDIS_ADDR", "EVENTS_KAFKA_BROKERS", "CORS_ORIGINS", "MOCK_ANALYSIS_DELAY", "MAX_UPLOAD_BYTES",
		"OTEL_ENABLED", "OTEL_SAMPLE_RATIO", "POSTGRES_HOST", "EVENT_PUBLISH_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "demo", cfg.NarrativeProvider)
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Zero(t, cfg.MockAnalysisDelay)
	assert.Equal(t, 2*time.Second, cfg.EventTimeout)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "localhost", cfg.DBConfig().Postgres.Host)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "aerosense.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
db_driver: sqlite
sqlite_path: /tmp/aerosense.db
location: Denver, CO
kafka_brokers: [k1:9092, k2:9092]
mock_analysis_delay: 2s
otel:
  enabled: true
  sample_ratio: 0.25
`), 0o600))
	t.Setenv(configFileEnv, path)
	t.Setenv("AEROSENSE_LOCATION", "Austin, TX")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Address())
	assert.Equal(t, "sqlite", cfg.DBConfig().Driver)
	assert.Equal(t, "/tmp/aerosense.db", cfg.DBConfig().SQLitePath)
	assert.Equal(t, "Austin, TX", cfg.Location)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.MockAnalysisDelay)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.True(t, cfg.otelConfig().Enabled)
	assert.Equal(t, 0.25, cfg.otelConfig().SampleRatio)
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(configFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig(logger.Nop())
	assert.Error(t, err)
}

func TestAddressAcceptsColonPrefix(t *testing.T) {
	assert.Equal(t, ":7000", Config{Port: ":7000"}.Address())
	assert.Equal(t, ":8080", Config{}.Address())
}
