// Config loading for the satchel CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/petar-djukic/satchel/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend           = "backend"
	cfgKeyDataDir           = "data_dir"
	cfgKeyWorkMinutes       = "timer.work_minutes"
	cfgKeyShortBreakMinutes = "timer.short_break_minutes"
	cfgKeyLongBreakMinutes  = "timer.long_break_minutes"
	cfgKeyLongBreakInterval = "timer.long_break_interval"
	cfgKeyAutoStartBreaks   = "timer.auto_start_breaks"
	cfgKeyAutoStartWork     = "timer.auto_start_work"

	defaultBackend = "sqlite"
)

// timerSettings is loaded from config.yaml by PersistentPreRunE.
var timerSettings types.TimerConfig

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Satchel CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Pomodoro timer settings
timer:
  work_minutes: 25
  short_break_minutes: 5
  long_break_minutes: 15
  long_break_interval: 4
  auto_start_breaks: false
  auto_start_work: false
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	defaults := types.DefaultTimerConfig()
	v.SetDefault(cfgKeyWorkMinutes, defaults.WorkMinutes)
	v.SetDefault(cfgKeyShortBreakMinutes, defaults.ShortBreakMinutes)
	v.SetDefault(cfgKeyLongBreakMinutes, defaults.LongBreakMinutes)
	v.SetDefault(cfgKeyLongBreakInterval, defaults.LongBreakInterval)
	v.SetDefault(cfgKeyAutoStartBreaks, defaults.AutoStartBreaks)
	v.SetDefault(cfgKeyAutoStartWork, defaults.AutoStartWork)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// timerConfigFrom extracts timer settings from a loaded config.
func timerConfigFrom(v *viper.Viper) types.TimerConfig {
	return types.TimerConfig{
		WorkMinutes:       v.GetInt(cfgKeyWorkMinutes),
		ShortBreakMinutes: v.GetInt(cfgKeyShortBreakMinutes),
		LongBreakMinutes:  v.GetInt(cfgKeyLongBreakMinutes),
		LongBreakInterval: v.GetInt(cfgKeyLongBreakInterval),
		AutoStartBreaks:   v.GetBool(cfgKeyAutoStartBreaks),
		AutoStartWork:     v.GetBool(cfgKeyAutoStartWork),
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
