/*
Package config manages TOML config for the jpfreq services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/kirisagi/jpfreq/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Data   DataConfig   `toml:"data"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// DataConfig points at the input files loaded once at startup.
type DataConfig struct {
	FrequencyFile    string `toml:"frequency_file"`
	VocabFile        string `toml:"vocab_file"`
	VocabDB          string `toml:"vocab_db"`
	AnnotateReadings bool   `toml:"annotate_readings"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	// MaxResults caps rows returned per filter request. 0 means no cap,
	// which the grid frontend relies on for the unfiltered view.
	MaxResults     int `toml:"max_results"`
	MaxCompletions int `toml:"max_completions"`
	MaxTermLength  int `toml:"max_term_length"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowReadings bool `toml:"show_readings"`
	HighlightWK  bool `toml:"highlight_wk"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/jpfreq
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "jpfreq")
	if utils.DirWritable(primaryPath) {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/jpfreq/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			FrequencyFile:    "data/clean/word_frequency.csv",
			VocabFile:        "data/clean/wk_vocab.txt",
			VocabDB:          "",
			AnnotateReadings: false,
		},
		Server: ServerConfig{
			MaxResults:     0,
			MaxCompletions: 24,
			MaxTermLength:  60,
		},
		CLI: CliConfig{
			DefaultLimit: 20,
			ShowReadings: true,
			HighlightWK:  true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dataSection, ok := utils.ExtractSection(tempConfig, "data"); ok {
		extractDataConfig(dataSection, &config.Data)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractDataConfig extracts data file configuration from a map
func extractDataConfig(data map[string]any, dc *DataConfig) {
	if val, ok := utils.ExtractString(data, "frequency_file"); ok {
		dc.FrequencyFile = val
	}
	if val, ok := utils.ExtractString(data, "vocab_file"); ok {
		dc.VocabFile = val
	}
	if val, ok := utils.ExtractString(data, "vocab_db"); ok {
		dc.VocabDB = val
	}
	if val, ok := utils.ExtractBool(data, "annotate_readings"); ok {
		dc.AnnotateReadings = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		server.MaxResults = val
	}
	if val, ok := utils.ExtractInt64(data, "max_completions"); ok {
		server.MaxCompletions = val
	}
	if val, ok := utils.ExtractInt64(data, "max_term_length"); ok {
		server.MaxTermLength = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_readings"); ok {
		cli.ShowReadings = val
	}
	if val, ok := utils.ExtractBool(data, "highlight_wk"); ok {
		cli.HighlightWK = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
