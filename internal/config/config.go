// Package config manages application configuration from various sources.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/langhost/langhost/internal/logging"
	"github.com/spf13/viper"
)

// ServerConfig defines the configuration for one language server connection.
// Cmd, Args, Host, Port and External form the restart-trigger set: a change
// to any of them tears the running client down and recreates it. Everything
// under Configurations is an opaque settings document passed through to the
// server and can be updated live.
type ServerConfig struct {
	Cmd            string         `json:"cmd"`
	Args           []string       `json:"args"`
	Host           string         `json:"host"`
	Port           int            `json:"port"`
	External       bool           `json:"external"`
	Configurations map[string]any `json:"configurations,omitempty"`
}

// Data defines storage configuration.
type Data struct {
	Directory string `json:"directory,omitempty"`
}

// ProjectConfig points at the active project, if any.
type ProjectConfig struct {
	Path string `json:"path,omitempty"`
}

// Config is the main configuration structure for the application.
type Config struct {
	Data       Data                    `json:"data"`
	WorkingDir string                  `json:"wd,omitempty"`
	Servers    map[string]ServerConfig `json:"servers,omitempty"`
	Project    ProjectConfig           `json:"project,omitempty"`
	Debug      bool                    `json:"debug,omitempty"`
}

// Application constants
const (
	defaultDataDirectory = ".langhost"
	appName              = "langhost"
)

// Languages we ship server support for. Options in the servers section that
// don't match one of these are ignored by the reconciler.
var KnownLanguages = []string{
	"c",
	"cpp",
	"css",
	"fortran",
	"go",
	"html",
	"java",
	"javascript",
	"json",
	"julia",
	"python",
	"r",
	"rust",
	"typescript",
}

// IsKnownLanguage reports whether language has built-in server support.
func IsKnownLanguage(language string) bool {
	language = strings.ToLower(language)
	for _, l := range KnownLanguages {
		if l == language {
			return true
		}
	}
	return false
}

// Global configuration instance
var cfg *Config

// Reset clears the global configuration, allowing Load to be called again.
// This is intended for use in tests only.
func Reset() {
	cfg = nil
}

// Load initializes the configuration from environment variables and config
// files. If debug is true, debug mode is enabled and log level is set to
// debug. It returns an error if configuration loading fails.
func Load(workingDir string, debug bool) (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		WorkingDir: workingDir,
		Servers:    make(map[string]ServerConfig),
	}

	configureViper()
	setDefaults(debug)

	// Read global config
	if err := readConfig(viper.ReadInConfig()); err != nil {
		return cfg, err
	}

	// Load and merge local config
	mergeLocalConfig(workingDir)

	// Apply configuration to the struct
	if err := viper.Unmarshal(cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaultValues()

	defaultLevel := slog.LevelInfo
	if cfg.Debug {
		defaultLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: defaultLevel,
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// configureViper sets up viper's configuration paths and environment variables.
func configureViper() {
	viper.SetConfigName(fmt.Sprintf(".%s", appName))
	viper.SetConfigType("json")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(fmt.Sprintf("$XDG_CONFIG_HOME/%s", appName))
	viper.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", appName))
	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.AutomaticEnv()
}

// setDefaults configures default values for configuration options.
func setDefaults(debug bool) {
	viper.SetDefault("data.directory", defaultDataDirectory)

	if debug {
		viper.SetDefault("debug", true)
		viper.Set("log.level", "debug")
	} else {
		viper.SetDefault("debug", false)
		viper.SetDefault("log.level", "info")
	}
}

// readConfig handles the result of reading a configuration file.
func readConfig(err error) error {
	if err == nil {
		return nil
	}

	// It's okay if the config file doesn't exist
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}

	return fmt.Errorf("failed to read config: %w", err)
}

// mergeLocalConfig loads and merges configuration from the local directory.
func mergeLocalConfig(workingDir string) {
	local := viper.New()
	local.SetConfigName(fmt.Sprintf(".%s", appName))
	local.SetConfigType("json")
	local.AddConfigPath(workingDir)

	// Merge local config if it exists
	if err := local.ReadInConfig(); err == nil {
		viper.MergeConfigMap(local.AllSettings())
	}
}

// applyDefaultValues sets default values for configuration fields that need
// processing.
func applyDefaultValues() {
	// A Python entry is always present so its server can be started on the
	// first file registration, even with an empty user config.
	if _, ok := cfg.Servers["python"]; !ok {
		cfg.Servers["python"] = PythonConfiguration()
	}
}

// Validate checks if the configuration is valid and applies defaults where
// needed.
func Validate() error {
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	// Validate server configurations
	for language, server := range cfg.Servers {
		if !IsKnownLanguage(language) {
			logging.Warn("server configured for unsupported language, removing", "language", language)
			delete(cfg.Servers, language)
			continue
		}
		if server.Cmd == "" && !server.External {
			logging.Warn("server configuration has no command, marking as external", "language", language)
			server.External = true
			cfg.Servers[language] = server
		}
	}

	return nil
}

// Get returns the current configuration.
// It's safe to call this function multiple times.
func Get() *Config {
	return cfg
}

// WorkingDirectory returns the current working directory from the configuration.
func WorkingDirectory() string {
	if cfg == nil {
		panic("config not loaded")
	}
	return cfg.WorkingDir
}

// ReloadServers re-reads the config file and returns the refreshed server
// table. The owner calls this after a preferences change and hands the
// result to the manager's reconciler; configuration changes are never pushed.
func ReloadServers() (map[string]ServerConfig, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}

	if err := readConfig(viper.ReadInConfig()); err != nil {
		return nil, err
	}
	mergeLocalConfig(cfg.WorkingDir)

	refreshed := &Config{Servers: make(map[string]ServerConfig)}
	if err := viper.Unmarshal(refreshed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if _, ok := refreshed.Servers["python"]; !ok {
		refreshed.Servers["python"] = PythonConfiguration()
	}

	cfg.Servers = refreshed.Servers
	return refreshed.Servers, nil
}

// StartupSuppressed reports whether client starts should be suppressed.
// Server processes are not started on CI machines unless explicitly demanded.
func StartupSuppressed() bool {
	if os.Getenv("CI") == "" {
		return false
	}
	return os.Getenv("LANGHOST_USE_SERVERS") == ""
}
