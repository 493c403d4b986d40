// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds bridgelink configuration
type Config struct {
	Target        string   `yaml:"target"`         // target triple
	EngineDir     string   `yaml:"engine_dir"`     // engine source tree
	SchemaDir     string   `yaml:"schema_dir"`     // .proto schema directory
	BuildDir      string   `yaml:"build_dir"`      // build output root
	BuildType     string   `yaml:"build_type"`     // Debug, Release, RelWithDebInfo
	BridgeSources []string `yaml:"bridge_sources"` // bridge entry-point sources
	CacheDir      string   `yaml:"cache_dir"`      // prebuilt bundle cache
	Debug         bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		EngineDir:     "valhalla",
		SchemaDir:     filepath.Join("valhalla", "proto"),
		BuildDir:      "target",
		BuildType:     "Release",
		BridgeSources: []string{filepath.Join("src", "libvalhalla.cpp")},
		CacheDir:      getDefaultCacheDir(),
		Debug:         false,
	}
}

// LoadConfig loads configuration from file, falling back to defaults when
// the file is absent.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "bridgelink", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "bridgelink", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultCacheDir() string {
	if path := os.Getenv("BRIDGELINK_CACHE"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bridgelink")
	}

	return filepath.Join(home, ".cache", "bridgelink")
}
