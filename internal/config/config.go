package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "CITESCANNER_CONFIG"
	collectorURLEnv = "CITESCANNER_COLLECTOR_URL"
	storePathEnv    = "CITESCANNER_STORE_PATH"
	sourceTagEnv    = "CITESCANNER_SOURCE"
	logLevelEnv     = "CITESCANNER_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Collector CollectorConfig `yaml:"collector"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CollectorConfig describes where extracted references are submitted.
type CollectorConfig struct {
	EndpointURL string `yaml:"endpointUrl"`
	SourceTag   string `yaml:"sourceTag"`
}

// StorageConfig locates the local SQLite database holding submission
// bookkeeping and settings.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(collectorURLEnv); v != "" {
		c.Collector.EndpointURL = v
	}
	if v := os.Getenv(sourceTagEnv); v != "" {
		c.Collector.SourceTag = v
	}
	if v := os.Getenv(storePathEnv); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Collector.EndpointURL != "" {
		base.Collector.EndpointURL = override.Collector.EndpointURL
	}
	if override.Collector.SourceTag != "" {
		base.Collector.SourceTag = override.Collector.SourceTag
	}
	if override.Storage.Path != "" {
		base.Storage.Path = override.Storage.Path
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	return base
}

func defaultConfig() Config {
	storePath := "citescanner.db"
	if home, err := os.UserHomeDir(); err == nil {
		storePath = filepath.Join(home, ".citescanner", "sent.db")
	}

	return Config{
		Collector: CollectorConfig{
			EndpointURL: "http://127.0.0.1:5000/sendrefs/",
			SourceTag:   "citescanner-cli",
		},
		Storage: StorageConfig{Path: storePath},
		Logging: LoggingConfig{Level: "info"},
	}
}
