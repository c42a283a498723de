package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type UserConfig struct {
	User User `toml:"user"`
	Keys Keys `toml:"keys"`
}

type User struct {
	Name string `toml:"name"`
	UUID string `toml:"user_uuid"`
}

type Keys struct {
	// Directory overrides the default key storage location when set.
	Directory string `toml:"directory,omitempty"`

	// DefaultKey is the key name used when no --key flag is given.
	DefaultKey string `toml:"default_key,omitempty"`
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file yields an empty config, not an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserSealboxSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserSealboxSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig ensures the user configuration exists and has a UUID.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	changed := false
	if config.User.UUID == "" {
		config.User.UUID = uuid.New().String()
		changed = true
	}
	if config.User.Name == "" {
		config.User.Name = UserSealboxSettings.Username
		changed = true
	}

	if changed {
		if err := SaveUserConfig(config); err != nil {
			return nil, fmt.Errorf("failed to save user config: %w", err)
		}
	}

	return config, nil
}
