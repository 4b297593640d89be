package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings holds configuration settings for logging, including log level, type and file path.
// Rotation limits only apply to the file logger and default to 10 MB, 3 backups and 28 days.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" yaml:"log_level" env:"MB_CIPHER_LOG_LEVEL" env-default:"info" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" yaml:"log_type" env:"MB_CIPHER_LOG_TYPE" env-default:"console" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" yaml:"file_path" env:"MB_CIPHER_LOG_FILE"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size" env:"MB_CIPHER_LOG_MAX_SIZE" env-default:"10"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" env:"MB_CIPHER_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age" env:"MB_CIPHER_LOG_MAX_AGE" env-default:"28"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	// Additional validation for file logger
	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 || s.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 || s.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}
