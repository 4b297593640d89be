package cryptography

import (
	"crypto/rand"
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"
)

// keyExpander struct that implements the KeyExpander interface
type keyExpander struct {
	logger logger.Logger
}

// NewKeyExpander creates and returns a new instance of keyExpander
func NewKeyExpander(logger logger.Logger) (cipherjob.KeyExpander, error) {
	return &keyExpander{
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of the specified size.
// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
func (e *keyExpander) GenerateKey(keySize int) ([]byte, error) {
	if _, err := cipherjob.Rounds(keySize); err != nil {
		return nil, err
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	e.logger.Info("Generated AES-", keySize*8, " key")
	return key, nil
}

// Expand derives the encryption and decryption schedules of rawKey.
func (e *keyExpander) Expand(rawKey []byte) (cipherjob.RoundKeys, cipherjob.RoundKeys, error) {
	enc, dec, err := Expand(rawKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to expand key: %w", err)
	}

	e.logger.Debug("Expanded AES-", len(rawKey)*8, " key into ", enc.Rounds()+1, " round keys")
	return enc, dec, nil
}
