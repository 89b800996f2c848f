package types

import "errors"

// Config holds backend selection and parameters for Cupboard.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// TimerConfig holds pomodoro timer settings. Durations are minutes, the
// unit the settings surface exposes; countdown arithmetic converts to
// seconds.
type TimerConfig struct {
	WorkMinutes       int  `json:"work_minutes" yaml:"work_minutes"`
	ShortBreakMinutes int  `json:"short_break_minutes" yaml:"short_break_minutes"`
	LongBreakMinutes  int  `json:"long_break_minutes" yaml:"long_break_minutes"`
	LongBreakInterval int  `json:"long_break_interval" yaml:"long_break_interval"`
	AutoStartBreaks   bool `json:"auto_start_breaks" yaml:"auto_start_breaks"`
	AutoStartWork     bool `json:"auto_start_work" yaml:"auto_start_work"`
}

// DefaultTimerConfig returns the classic pomodoro settings.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
	}
}
