// config.go handles loading and saving kestrelctl's TOML configuration
// file, grounded on Mgrdich-TermChess/internal/config/config.go's
// load-or-default / create-directory-then-encode shape.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the engine settings a kestrelctl session starts with.
type Config struct {
	HashMB  int `toml:"hash_mb"`
	Threads int `toml:"threads"`
}

// DefaultConfig returns the settings used when no config file exists yet.
func DefaultConfig() Config {
	return Config{HashMB: 64, Threads: 0}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kestrelctl"), nil
}

func configFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads ~/.kestrelctl/config.toml, falling back to
// DefaultConfig if it is missing or malformed. This never returns an
// error: an unreadable config file should not stop the engine from
// starting.
func LoadConfig() Config {
	path, err := configFilePath()
	if err != nil {
		return DefaultConfig()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig()
	}
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return DefaultConfig()
	}
	if c.HashMB <= 0 {
		c.HashMB = DefaultConfig().HashMB
	}
	return c
}

// SaveConfig writes c to ~/.kestrelctl/config.toml, creating the
// directory if needed.
func SaveConfig(c Config) error {
	dir, err := configDir()
	if err != nil {
		return fmt.Errorf("kestrelctl: config directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("kestrelctl: create config directory: %w", err)
	}
	path, err := configFilePath()
	if err != nil {
		return fmt.Errorf("kestrelctl: config file path: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kestrelctl: create config file: %w", err)
	}
	defer file.Close()
	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("kestrelctl: encode config: %w", err)
	}
	return nil
}
