package configs

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Monitor MonitorConfig `mapstructure:"monitor" validate:"required"`
	Limits  LimitsConfig  `mapstructure:"limits"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// MonitorConfig holds the log-scanning configuration: which server log
// directories to watch, how often to rebuild the snapshot, and how many of
// the most recent files to read per source each cycle.
type MonitorConfig struct {
	Sources                []string `mapstructure:"sources" validate:"required,min=1,dive,required"`
	RefreshIntervalSeconds int      `mapstructure:"refresh_interval_seconds" validate:"required,min=1"`
	FilesPerSource         int      `mapstructure:"files_per_source" validate:"required,min=1"`
}

// LimitsConfig holds the two quota tables. Models absent from a table are
// unrestricted for that tier. The key sets are fixed for the process
// lifetime; only the ceilings can be adjusted at runtime.
type LimitsConfig struct {
	ModelHourly       map[string]int64 `mapstructure:"model_hourly" validate:"omitempty,dive,min=0"`
	UserDailyPerModel map[string]int64 `mapstructure:"user_daily_per_model" validate:"omitempty,dive,min=0"`
}
