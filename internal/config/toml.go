// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Detective DetectiveConfig `toml:"detective"`
	Password  PasswordConfig  `toml:"password"`
	Log       LogConfig       `toml:"log"`
}

// DetectiveConfig maps game settings.
type DetectiveConfig struct {
	Alphabet *string `toml:"alphabet"`
	Shift    *int    `toml:"shift"`
	Phrases  *string `toml:"phrases"`
}

// PasswordConfig maps password generator settings.
type PasswordConfig struct {
	Length    *int    `toml:"length"`
	Upper     *bool   `toml:"upper"`
	Lower     *bool   `toml:"lower"`
	Digits    *bool   `toml:"digits"`
	Symbols   *bool   `toml:"symbols"`
	Obfuscate *string `toml:"obfuscate"`
	Shift     *int    `toml:"shift"`
	Key       *string `toml:"key"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Debug *bool `toml:"debug"`
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
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
