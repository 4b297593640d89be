package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/mb-cipher/internal/app"
	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/config"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/padding"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ECBCommandHandler encapsulates logic for handling AES-ECB operations via CLI.
type ECBCommandHandler struct {
	keyExpander cipherjob.KeyExpander
	settings    config.SchedulerSettings
	logger      logger.Logger
}

// NewECBCommandHandler initializes and returns an ECBCommandHandler instance with
// configured logger, scheduler settings and key expander.
func NewECBCommandHandler() (*ECBCommandHandler, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyExpander, err := cryptography.NewKeyExpander(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key expander: %w", err)
	}

	return &ECBCommandHandler{
		keyExpander: keyExpander,
		settings:    cfg.Scheduler,
		logger:      loggerInstance,
	}, nil
}

// GenerateAESKeyCmd generates an AES key and persists it in a selected directory
func (commandHandler *ECBCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	secretKey, err := commandHandler.keyExpander.GenerateKey(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("AES key saved to ", keyFilePath)
}

// EncryptECBCmd pads a file with PKCS#7 and encrypts it in chunk jobs
func (commandHandler *ECBCommandHandler) EncryptECBCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runFile(cmd, cipherjob.Encrypt)
}

// DecryptECBCmd decrypts a file in chunk jobs and strips its PKCS#7 padding
func (commandHandler *ECBCommandHandler) DecryptECBCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runFile(cmd, cipherjob.Decrypt)
}

func (commandHandler *ECBCommandHandler) runFile(cmd *cobra.Command, dir cipherjob.Direction) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}
	chunkSize, err := cmd.Flags().GetInt("chunk-size")
	if err != nil {
		commandHandler.logger.Error("invalid chunk-size flag ", err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	output, err := commandHandler.transform(dir, key, data, chunkSize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, output, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if dir == cipherjob.Encrypt {
		commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
	} else {
		commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
	}
}

func (commandHandler *ECBCommandHandler) transform(dir cipherjob.Direction, key, data []byte, chunkSize int) ([]byte, error) {
	enc, dec, err := commandHandler.keyExpander.Expand(key)
	if err != nil {
		return nil, err
	}

	manager, err := newJobManager[int](commandHandler.settings, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	bufferCipher, err := app.NewBufferCipher(manager, chunkSize, commandHandler.logger)
	if err != nil {
		return nil, err
	}

	if dir == cipherjob.Encrypt {
		padded, err := padding.PKCS7Pad(data, cipherjob.BlockSize)
		if err != nil {
			return nil, err
		}
		if err := bufferCipher.Encrypt(enc, padded, padded); err != nil {
			return nil, fmt.Errorf("failed to encrypt: %w", err)
		}
		return padded, nil
	}

	plain := make([]byte, len(data))
	if err := bufferCipher.Decrypt(dec, data, plain); err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return padding.PKCS7Unpad(plain, cipherjob.BlockSize)
}

// InitECBCommands registers AES-ECB related commands
func InitECBCommands(rootCmd *cobra.Command) error {
	handler, err := NewECBCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create ECB command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate an AES key",
		Run:   handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", cipherjob.KeySize128, "AES key size in bytes (16, 24 or 32)")
	generateAESKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptECBCmd = &cobra.Command{
		Use:   "encrypt-ecb",
		Short: "Encrypt a file using AES-ECB with PKCS#7 padding",
		Run:   handler.EncryptECBCmd,
	}
	encryptECBCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptECBCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptECBCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	encryptECBCmd.Flags().IntP("chunk-size", "", app.DefaultChunkSize, "Bytes per job (multiple of 16)")
	rootCmd.AddCommand(encryptECBCmd)

	var decryptECBCmd = &cobra.Command{
		Use:   "decrypt-ecb",
		Short: "Decrypt a file using AES-ECB with PKCS#7 padding",
		Run:   handler.DecryptECBCmd,
	}
	decryptECBCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptECBCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptECBCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	decryptECBCmd.Flags().IntP("chunk-size", "", app.DefaultChunkSize, "Bytes per job (multiple of 16)")
	rootCmd.AddCommand(decryptECBCmd)

	return nil
}
