package commands

import (
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/app"
	"github.com/MGTheTrain/mb-cipher/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/config"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/vectors"

	"github.com/spf13/cobra"
)

// SelfTestCommandHandler runs the known-answer self-test via CLI.
type SelfTestCommandHandler struct {
	settings config.SchedulerSettings
	logger   logger.Logger
}

// NewSelfTestCommandHandler initializes and returns a SelfTestCommandHandler instance.
func NewSelfTestCommandHandler() (*SelfTestCommandHandler, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SelfTestCommandHandler{
		settings: cfg.Scheduler,
		logger:   loggerInstance,
	}, nil
}

// SelfTestCmd encrypts and decrypts every known-answer vector for every batch size
func (commandHandler *SelfTestCommandHandler) SelfTestCmd(cmd *cobra.Command, _ []string) error {
	settings := commandHandler.settings

	kernelType, err := cmd.Flags().GetString("kernel")
	if err != nil {
		return fmt.Errorf("invalid kernel flag: %w", err)
	}
	if kernelType != "" {
		settings.Kernel = kernelType
	}

	kernel, err := cryptography.NewKernel(settings, commandHandler.logger)
	if err != nil {
		return err
	}
	keyExpander, err := cryptography.NewKeyExpander(commandHandler.logger)
	if err != nil {
		return err
	}
	runner, err := app.NewSelfTestRunner(settings, kernel, keyExpander, commandHandler.logger)
	if err != nil {
		return err
	}

	report, err := runner.Run(vectors.ECB, vectors.BatchSizes)
	if err != nil {
		return err
	}

	for _, failure := range report.Failures {
		commandHandler.logger.Error("Case ", failure.Case.String(), " job ", failure.Job, ": ", failure.Reason)
	}
	if !report.Passed() {
		return fmt.Errorf("self-test failed: %d failures in %d cases", len(report.Failures), report.Cases)
	}

	cmd.Printf("Self-test passed: %d cases on the %s kernel with %d lanes\n", report.Cases, settings.Kernel, settings.Lanes)
	return nil
}

// InitSelfTestCommands registers the self-test command
func InitSelfTestCommands(rootCmd *cobra.Command) error {
	handler, err := NewSelfTestCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create self-test command handler %w", err)
	}

	var selfTestCmd = &cobra.Command{
		Use:   "selftest",
		Short: "Run the AES-ECB known-answer self-test across batch sizes",
		RunE:  handler.SelfTestCmd,
	}
	selfTestCmd.Flags().StringP("kernel", "", "", "Kernel to test (lockstep or parallel), overrides the configuration")
	rootCmd.AddCommand(selfTestCmd)

	return nil
}
