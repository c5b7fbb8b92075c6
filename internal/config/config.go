package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"veritas-core/internal/domain/entity"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port       string
	AppVersion string
	Env        string

	LogLevel  string
	LogFormat string

	RedisAddr string

	EngineCatalogPath string

	SimulateDelays  bool
	MinDelay        time.Duration
	MaxDelay        time.Duration
	AnalysisTimeout time.Duration
	AnalysisRPS     float64
	AnalysisBurst   int
	HistoryLimit    int
}

// Load reads the given dotenv files (missing files are ignored) and then the
// process environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		AppVersion:        os.Getenv("APP_VERSION"),
		Env:               getEnvOrDefault("ENV", "dev"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvOrDefault("LOG_FORMAT", "json"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		EngineCatalogPath: os.Getenv("ENGINE_CATALOG_PATH"),
	}

	var err error
	if cfg.SimulateDelays, err = getBool("SIMULATE_DELAYS", true); err != nil {
		return nil, err
	}
	if cfg.MinDelay, err = getDuration("ANALYSIS_MIN_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.MaxDelay, err = getDuration("ANALYSIS_MAX_DELAY", 4*time.Second); err != nil {
		return nil, err
	}
	if cfg.AnalysisTimeout, err = getDuration("ANALYSIS_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.AnalysisRPS, err = getFloat("ANALYSIS_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.AnalysisBurst, err = getInt("ANALYSIS_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = getInt("HISTORY_LIMIT", 50); err != nil {
		return nil, err
	}

	if cfg.MaxDelay < cfg.MinDelay {
		return nil, fmt.Errorf("ANALYSIS_MAX_DELAY (%s) is below ANALYSIS_MIN_DELAY (%s)", cfg.MaxDelay, cfg.MinDelay)
	}
	return cfg, nil
}

// Catalog returns the engine catalog from EngineCatalogPath, or the built-in
// one when no path is configured.
func (c *Config) Catalog() (entity.Catalog, error) {
	if c.EngineCatalogPath == "" {
		return entity.DefaultCatalog(), nil
	}
	return LoadCatalogFile(c.EngineCatalogPath)
}

type catalogFile struct {
	Engines []entity.EngineDescriptor `yaml:"engines"`
}

// LoadCatalogFile loads an engine catalog from a YAML file.
func LoadCatalogFile(path string) (entity.Catalog, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file '%s': %w", path, err)
	}
	return ParseCatalog(buf)
}

func ParseCatalog(buf []byte) (entity.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(buf, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Engines) == 0 {
		return nil, fmt.Errorf("catalog defines no engines")
	}

	seen := make(map[string]bool, len(file.Engines))
	for i, e := range file.Engines {
		if e.ID == "" {
			return nil, fmt.Errorf("engine #%d has no id", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate engine id %q", e.ID)
		}
		if e.RatePer1K < 0 {
			return nil, fmt.Errorf("engine %q has a negative rate", e.ID)
		}
		seen[e.ID] = true
	}
	return entity.Catalog(file.Engines), nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
