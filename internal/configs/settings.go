package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/sealbox/sealbox/internal/utils"
)

type UserSettings struct {
	UserKeysPath    string
	UserConfigsPath string
	Username        string
}

var UserSealboxSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// Independent of any working directory, so it is ok to init here.
	UserSealboxSettings = &UserSettings{
		UserKeysPath:    filepath.Join(dataDir, "sealbox", "keys"),
		UserConfigsPath: filepath.Join(configDir, "sealbox"),
		Username:        username,
	}
}

// KeysDir returns the directory keys are stored in, honoring the
// user-config override when one is set.
func KeysDir() string {
	config, err := LoadUserConfig()
	if err == nil && config.Keys.Directory != "" {
		return config.Keys.Directory
	}
	return UserSealboxSettings.UserKeysPath
}

// DefaultKeyName returns the key name used when none is given.
func DefaultKeyName() string {
	config, err := LoadUserConfig()
	if err == nil && config.Keys.DefaultKey != "" {
		return config.Keys.DefaultKey
	}
	return "sealbox"
}
