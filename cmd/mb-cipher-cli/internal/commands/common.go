package commands

import (
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/app"
	"github.com/MGTheTrain/mb-cipher/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/config"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"
)

func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func setupLogger(cfg *config.AppConfig) (logger.Logger, error) {
	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newJobManager builds a manager and its kernel from the scheduler settings.
func newJobManager[T any](settings config.SchedulerSettings, log logger.Logger) (*app.JobManager[T], error) {
	kernel, err := cryptography.NewKernel(settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kernel: %w", err)
	}

	manager, err := app.NewJobManager[T](settings, kernel, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create job manager: %w", err)
	}
	return manager, nil
}
