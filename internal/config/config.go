package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pyskel-dev/pyskel/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyAuthorName  = "author_name"
	KeyAuthorEmail = "author_email"
	KeyDescription = "description"
	KeyHomepage    = "homepage"
	KeyIssues      = "issues"
	KeyPython      = "python"
)

var knownKeys = []string{
	KeyAuthorName,
	KeyAuthorEmail,
	KeyDescription,
	KeyHomepage,
	KeyIssues,
	KeyPython,
}

// Keys returns every recognized configuration key in display order.
func Keys() []string {
	return slices.Clone(knownKeys)
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	return slices.Contains(knownKeys, key)
}

// Dir returns the path to the config directory. PYSKEL_HOME wins over
// ~/.pyskel/ when set.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.pyskel/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns the current value of every recognized key, including empty ones.
func All() map[string]string {
	values := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		values[key] = viper.GetString(key)
	}
	return values
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
