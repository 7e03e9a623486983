package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/nestedbench/internal/paramsource"
	"github.com/kailas-cloud/nestedbench/internal/rally"
)

// Config holds the nestedbench configuration.
type Config struct {
	Track         TrackConfig         `yaml:"track"`
	Params        map[string]any      `yaml:"params"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Metrics       MetricsConfig       `yaml:"metrics"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// TrackConfig describes the track the param sources are registered for.
type TrackConfig struct {
	Name        string  `yaml:"name"`
	Dir         string  `yaml:"dir"`
	DatasetPath string  `yaml:"dataset_path"` // overrides <dir>/queries.csv
	Seed        *uint64 `yaml:"seed"`
	// HarnessVersion is the version the simulated harness reports; empty means
	// the harness publishes no version metadata.
	HarnessVersion string `yaml:"harness_version"`
}

// ElasticsearchConfig holds cluster connection settings for runners.
type ElasticsearchConfig struct {
	URLs             []string `yaml:"urls"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	Sniff            bool     `yaml:"sniff"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// MetricsConfig toggles param source instrumentation.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Track.Name == "" {
		c.Track.Name = "nested"
	}
	if c.Track.Seed == nil {
		seed := paramsource.DefaultSeed
		c.Track.Seed = &seed
	}
	if c.Params == nil {
		c.Params = map[string]any{}
	}
	if c.Elasticsearch.ReadinessTimeout <= 0 {
		c.Elasticsearch.ReadinessTimeout = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Track.HarnessVersion != "" {
		if _, err := rally.ParseVersion(c.Track.HarnessVersion); err != nil {
			return fmt.Errorf("track.harness_version: %w", err)
		}
	}
	if p := c.Track.DatasetPath; p != "" {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".csv", ".parquet":
			// ok
		default:
			return fmt.Errorf("track.dataset_path must be a .csv or .parquet file, got %q", p)
		}
	}
	for i, u := range c.Elasticsearch.URLs {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("elasticsearch.urls[%d] must start with http:// or https://, got %q", i, u)
		}
	}
	return nil
}

// MetaData returns the harness metadata described by the track section.
func (t TrackConfig) MetaData() rally.MetaData {
	if t.HarnessVersion == "" {
		return rally.MetaData{}
	}
	v, err := rally.ParseVersion(t.HarnessVersion)
	if err != nil {
		// Validate rejects this; treat as absent if it slipped through.
		return rally.MetaData{}
	}
	return rally.MetaData{RallyVersion: &v}
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
