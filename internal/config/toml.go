// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Visual VisualConfig `toml:"visual"`
	Bench  BenchConfig  `toml:"bench"`
	Log    LogConfig    `toml:"log"`
}

// VisualConfig maps visualiser settings.
type VisualConfig struct {
	Algorithm *string `toml:"algorithm"`
	Size      *int    `toml:"size"`
	Min       *int    `toml:"min"`
	Max       *int    `toml:"max"`
	DelayMs   *int    `toml:"delay-ms"`
	Seed      *int64  `toml:"seed"`
}

// BenchConfig maps benchmark settings.
type BenchConfig struct {
	Sizes      []int   `toml:"sizes"`
	Algorithms *string `toml:"algorithms"`
	Seed       *int64  `toml:"seed"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
