/*
Package config manages TOML config for the typeahead services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sberney/typeahead/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Widget WidgetConfig `toml:"widget"`
	Demo   DemoConfig   `toml:"demo"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MaxInput     int  `toml:"max_input"`
	EnableFilter bool `toml:"enable_filter"`
}

// WidgetConfig holds suggestion box options.
type WidgetConfig struct {
	MaxVisible      int  `toml:"max_visible"`
	HighlightPrefix bool `toml:"highlight_prefix"`
}

// DemoConfig holds options for the bundled demo surfaces.
type DemoConfig struct {
	Candidates []string `toml:"candidates"`
	Wordlist   string   `toml:"wordlist"`
	NoFilter   bool     `toml:"no_filter"`
}

// GetConfigDir picks the first writable config directory: ~/.config/typeahead,
// then the macOS application support dir, then the executable's own directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.ExecutableDir()
	}
	candidates := []string{
		filepath.Join(homeDir, ".config", "typeahead"),
		filepath.Join(homeDir, "Library", "Application Support", "typeahead"),
	}
	for _, dir := range candidates {
		if utils.DirWritable(dir) {
			return dir, nil
		}
	}
	return utils.ExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority resolves config from the explicit path when given,
// then the default path, then builtin defaults. The returned string is the
// path actually used, "" when running on defaults. It never fails: a broken
// or missing file degrades with a warning.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, err := os.Stat(customConfigPath); err != nil {
			log.Warnf("Config file %s not found: %v. Falling back to the default path.", customConfigPath, err)
		} else if cfg, err := LoadConfig(customConfigPath); err != nil {
			log.Warnf("Could not read config %s: %v. Falling back to the default path.", customConfigPath, err)
		} else {
			log.Debugf("Loaded config from %s", customConfigPath)
			return cfg, customConfigPath, nil
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("No usable config directory: %v. Running on builtin defaults.", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Config at %s unusable: %v. Running on builtin defaults.", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from %s", defaultPath)
	return cfg, defaultPath, nil
}

// DefaultCandidates returns the builtin demo candidate list.
// Callers get a fresh copy each time.
func DefaultCandidates() []string {
	return []string{
		"Audi", "Alfa Romeo", "BMW", "Bentley", "Chevrolet", "Chrysler",
		"Citroën", "Dodge", "Ferrari", "Fiat", "Ford", "Honda", "Hyundai",
		"Jaguar", "Kia", "Lamborghini", "Land Rover", "Lexus", "Maserati",
		"Mazda", "Mercedes-Benz", "Mini", "Mitsubishi", "Nissan", "Opel",
		"Peugeot", "Porsche", "Renault", "Seat", "Škoda", "Subaru", "Suzuki",
		"Tesla", "Toyota", "Vauxhall", "Volkswagen", "Volvo",
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:     64,
			MaxInput:     60,
			EnableFilter: true,
		},
		Widget: WidgetConfig{
			MaxVisible:      8,
			HighlightPrefix: true,
		},
		Demo: DemoConfig{
			Candidates: DefaultCandidates(),
			Wordlist:   "",
			NoFilter:   false,
		},
	}
}

// InitConfig reads the config file at configPath, writing one with defaults
// first if it does not exist yet
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureParentDir(configPath); err != nil {
		log.Warnf("Cannot create config directory for %s: %v. Running on builtin defaults.", configPath, err)
		return DefaultConfig(), nil
	}
	if utils.FileExists(configPath) {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			log.Warnf("Could not read config %s: %v. Running on builtin defaults.", configPath, err)
			return DefaultConfig(), nil
		}
		return cfg, nil
	}
	cfg := DefaultConfig()
	if err := SaveConfig(cfg, configPath); err != nil {
		log.Warnf("Could not write default config to %s: %v. Running on builtin defaults.", configPath, err)
		return DefaultConfig(), nil
	}
	log.Debugf("Created default config at %s", configPath)
	return cfg, nil
}

// LoadConfig reads a TOML config file over the builtin defaults. A file the
// decoder rejects goes through section-wise salvage instead of failing.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.ReadTOMLFile(configPath, config); err != nil {
		log.Warnf("Config file %s did not decode cleanly: %v. Salvaging what parses.", configPath, err)
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps whatever sections and keys of a rejected file still
// decode, leaving defaults for the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLLoose(configPath)
	if err != nil {
		log.Warnf("No usable configuration in %s: %v. Running on builtin defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if widgetSection, ok := utils.ExtractSection(tempConfig, "widget"); ok {
		extractWidgetConfig(widgetSection, &config.Widget)
	}
	if demoSection, ok := utils.ExtractSection(tempConfig, "demo"); ok {
		extractDemoConfig(demoSection, &config.Demo)
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_input"); ok {
		server.MaxInput = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

func extractWidgetConfig(data map[string]any, widget *WidgetConfig) {
	if val, ok := utils.ExtractInt64(data, "max_visible"); ok {
		widget.MaxVisible = val
	}
	if val, ok := utils.ExtractBool(data, "highlight_prefix"); ok {
		widget.HighlightPrefix = val
	}
}

func extractDemoConfig(data map[string]any, demo *DemoConfig) {
	if val, ok := utils.ExtractStringSlice(data, "candidates"); ok {
		demo.Candidates = val
	}
	if val, ok := utils.ExtractString(data, "wordlist"); ok {
		demo.Wordlist = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		demo.NoFilter = val
	}
}

// RebuildConfigFile overwrites the config file at the default path with
// builtin defaults
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureParentDir(defaultPath); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath reports which config file a run is using, as an
// absolute path where one resolves
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.AbsPath(configPath)
}

// SaveConfig writes config as TOML to configPath
func SaveConfig(config *Config, configPath string) error {
	return utils.WriteTOMLFile(configPath, config)
}

// Update changes the config values and saves to file
func (c *Config) Update(configPath string, maxLimit, maxInput *int, enableFilter *bool) error {
	server := &c.Server
	if maxLimit != nil {
		server.MaxLimit = *maxLimit
	}
	if maxInput != nil {
		server.MaxInput = *maxInput
	}
	if enableFilter != nil {
		server.EnableFilter = *enableFilter
	}
	return SaveConfig(c, configPath)
}
