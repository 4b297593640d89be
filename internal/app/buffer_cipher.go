package app

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"
)

// DefaultChunkSize is the span of a buffer covered by one job.
const DefaultChunkSize = 4096

// BufferCipher transforms whole buffers by splitting them into chunk jobs, so that the
// chunks of one buffer fill the lanes of a kernel batch. The manager must not be shared.
type BufferCipher struct {
	manager   *JobManager[int]
	chunkSize int
	logger    logger.Logger
}

// NewBufferCipher creates a BufferCipher on top of manager. chunkSize must be a positive
// multiple of the block size.
func NewBufferCipher(manager *JobManager[int], chunkSize int, logger logger.Logger) (*BufferCipher, error) {
	if manager == nil {
		return nil, errors.New("job manager cannot be nil")
	}
	if chunkSize <= 0 || chunkSize%cipherjob.BlockSize != 0 {
		return nil, fmt.Errorf("%w: chunk size %d is not a positive multiple of %d", cipherjob.ErrContractViolation, chunkSize, cipherjob.BlockSize)
	}
	return &BufferCipher{
		manager:   manager,
		chunkSize: chunkSize,
		logger:    logger,
	}, nil
}

// Encrypt writes the ECB encryption of src into dst. dst may be src.
func (c *BufferCipher) Encrypt(keys cipherjob.RoundKeys, src, dst []byte) error {
	return c.transform(cipherjob.Encrypt, keys, src, dst)
}

// Decrypt writes the ECB decryption of src into dst. dst may be src.
func (c *BufferCipher) Decrypt(keys cipherjob.RoundKeys, src, dst []byte) error {
	return c.transform(cipherjob.Decrypt, keys, src, dst)
}

func (c *BufferCipher) transform(dir cipherjob.Direction, keys cipherjob.RoundKeys, src, dst []byte) error {
	if keys == nil {
		return fmt.Errorf("%w: missing key schedule", cipherjob.ErrContractViolation)
	}
	if len(src) == 0 || len(src)%cipherjob.BlockSize != 0 {
		return fmt.Errorf("%w: buffer of %d bytes is not a positive multiple of %d", cipherjob.ErrContractViolation, len(src), cipherjob.BlockSize)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: destination of %d bytes is shorter than source of %d", cipherjob.ErrContractViolation, len(dst), len(src))
	}

	chunks := (len(src) + c.chunkSize - 1) / c.chunkSize
	var firstErr error
	done := 0

	receive := func(job *cipherjob.Job[int]) {
		done++
		if job.Status() == cipherjob.StatusFailed && firstErr == nil {
			firstErr = fmt.Errorf("chunk %d: %w", job.Tag, job.Err())
		}
		if err := c.manager.Release(job); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for i := 0; i < chunks; i++ {
		job, err := c.manager.GetNextSlot()
		if err != nil {
			// Drain to make room; every outstanding slot is ours.
			for finished := range c.manager.Drain() {
				receive(finished)
			}
			if job, err = c.manager.GetNextSlot(); err != nil {
				return err
			}
		}

		offset := i * c.chunkSize
		job.Direction = dir
		job.Mode = cipherjob.ModeECB
		job.KeyLength = keys.KeyLength()
		if dir == cipherjob.Encrypt {
			job.EncryptKeys = keys
		} else {
			job.DecryptKeys = keys
		}
		job.Src = src
		job.Dst = dst
		job.Offset = offset
		job.Length = min(c.chunkSize, len(src)-offset)
		job.Tag = i

		finished, err := c.manager.Submit(job)
		if err != nil {
			_ = c.manager.Release(job)
			for f := range c.manager.Drain() {
				receive(f)
			}
			return err
		}
		if finished != nil {
			receive(finished)
		}
	}

	for finished := range c.manager.Drain() {
		receive(finished)
	}

	if done != chunks && firstErr == nil {
		firstErr = fmt.Errorf("expected %d chunks, received %d", chunks, done)
	}
	if firstErr != nil {
		return firstErr
	}

	c.logger.Debug("Transformed ", len(src), " bytes in ", chunks, " chunks (", dir, ")")
	return nil
}
