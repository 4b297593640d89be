// Package main is the entry point for the mb-cipher-cli application.
// It initializes the root command and registers the ECB and self-test sub-commands,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/mb-cipher/cmd/mb-cipher-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "mb-cipher-cli",
		Short: "Multi-buffer AES-ECB CLI tool",
		Long: `mb-cipher-cli drives the multi-buffer AES-ECB job scheduler.
Supports AES key generation, file encryption/decryption split into jobs,
and a known-answer self-test across batch sizes.

Configuration is read from the YAML file named by MB_CIPHER_CONFIG_PATH,
or from the environment alone:
- MB_CIPHER_LANES, MB_CIPHER_CAPACITY, MB_CIPHER_KERNEL, MB_CIPHER_WORKERS
- MB_CIPHER_LOG_LEVEL, MB_CIPHER_LOG_TYPE, MB_CIPHER_LOG_FILE`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitECBCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize ECB commands: %w", err)
	}

	if err := commands.InitSelfTestCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize self-test commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
