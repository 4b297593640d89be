package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/config"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// lockstepKernel advances every lane of a batch one block at a time, the way a
// multi-buffer SIMD core processes its lanes side by side.
type lockstepKernel struct {
	lanes  int
	logger logger.Logger
}

// NewLockstepKernel creates a single-goroutine ECB kernel with the given lane count.
func NewLockstepKernel(lanes int, logger logger.Logger) (cipherjob.Kernel, error) {
	if lanes < 1 {
		return nil, fmt.Errorf("kernel needs at least one lane, got %d", lanes)
	}
	return &lockstepKernel{
		lanes:  lanes,
		logger: logger,
	}, nil
}

func (k *lockstepKernel) Lanes() int { return k.lanes }

func (k *lockstepKernel) Name() string { return config.KernelLockstep }

// Execute transforms all lanes; block i of every lane is processed before block i+1.
func (k *lockstepKernel) Execute(batch []cipherjob.Lane) (err error) {
	if err := checkBatch(batch, k.lanes); err != nil {
		k.logger.Warn("Rejected batch: ", err)
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", cipherjob.ErrKernelFailure, r)
			k.logger.Error("Lockstep kernel aborted: ", r)
		}
	}()

	maxBlocks := 0
	for i := range batch {
		maxBlocks = max(maxBlocks, batch[i].Length/cipherjob.BlockSize)
	}

	for b := 0; b < maxBlocks; b++ {
		pos := b * cipherjob.BlockSize
		for i := range batch {
			lane := &batch[i]
			if pos >= lane.Length {
				continue
			}
			off := lane.Offset + pos
			lane.Keys.CryptBlock(lane.Dst[off:off+cipherjob.BlockSize], lane.Src[off:off+cipherjob.BlockSize])
		}
	}
	return nil
}

// parallelKernel spreads the lanes of a batch over a bounded set of goroutines.
type parallelKernel struct {
	lanes   int
	workers int
	logger  logger.Logger
}

// NewParallelKernel creates an ECB kernel that processes up to workers lanes concurrently.
func NewParallelKernel(lanes, workers int, logger logger.Logger) (cipherjob.Kernel, error) {
	if lanes < 1 {
		return nil, fmt.Errorf("kernel needs at least one lane, got %d", lanes)
	}
	if workers < 1 {
		return nil, fmt.Errorf("kernel needs at least one worker, got %d", workers)
	}
	return &parallelKernel{
		lanes:   lanes,
		workers: workers,
		logger:  logger,
	}, nil
}

func (k *parallelKernel) Lanes() int { return k.lanes }

func (k *parallelKernel) Name() string { return config.KernelParallel }

// Execute transforms all lanes and returns the first failure.
func (k *parallelKernel) Execute(batch []cipherjob.Lane) error {
	if err := checkBatch(batch, k.lanes); err != nil {
		k.logger.Warn("Rejected batch: ", err)
		return err
	}

	var g errgroup.Group
	g.SetLimit(k.workers)

	for i := range batch {
		lane := batch[i]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: lane %d: %v", cipherjob.ErrKernelFailure, i, r)
				}
			}()
			cryptLane(lane)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		k.logger.Error("Parallel kernel aborted: ", err)
		return err
	}
	return nil
}

func cryptLane(lane cipherjob.Lane) {
	for pos := 0; pos < lane.Length; pos += cipherjob.BlockSize {
		off := lane.Offset + pos
		lane.Keys.CryptBlock(lane.Dst[off:off+cipherjob.BlockSize], lane.Src[off:off+cipherjob.BlockSize])
	}
}

// checkBatch re-checks the lane contract. The job manager validates jobs on
// submission, so a failure here means a kernel was driven directly with bad input.
func checkBatch(batch []cipherjob.Lane, lanes int) error {
	if len(batch) > lanes {
		return fmt.Errorf("%w: batch of %d exceeds %d lanes", cipherjob.ErrKernelFailure, len(batch), lanes)
	}

	for i := range batch {
		lane := &batch[i]
		switch {
		case lane.Mode != cipherjob.ModeECB:
			return fmt.Errorf("%w: lane %d: unsupported mode %s", cipherjob.ErrKernelFailure, i, lane.Mode)
		case lane.Keys == nil:
			return fmt.Errorf("%w: lane %d: missing key schedule", cipherjob.ErrKernelFailure, i)
		case lane.Keys.Direction() != lane.Direction:
			return fmt.Errorf("%w: lane %d: %s schedule used to %s", cipherjob.ErrKernelFailure, i, lane.Keys.Direction(), lane.Direction)
		case lane.Length%cipherjob.BlockSize != 0:
			return fmt.Errorf("%w: lane %d: length %d is not a multiple of %d", cipherjob.ErrKernelFailure, i, lane.Length, cipherjob.BlockSize)
		case !cipherjob.SpanFits(lane.Offset, lane.Length, len(lane.Src)) || !cipherjob.SpanFits(lane.Offset, lane.Length, len(lane.Dst)):
			return fmt.Errorf("%w: lane %d: span at offset %d of length %d out of range", cipherjob.ErrKernelFailure, i, lane.Offset, lane.Length)
		}
	}
	return nil
}

// NewKernel builds the kernel selected by the scheduler settings.
func NewKernel(settings config.SchedulerSettings, logger logger.Logger) (cipherjob.Kernel, error) {
	switch settings.Kernel {
	case config.KernelLockstep, "":
		return NewLockstepKernel(settings.Lanes, logger)
	case config.KernelParallel:
		return NewParallelKernel(settings.Lanes, settings.Workers, logger)
	default:
		return nil, fmt.Errorf("unsupported kernel type: %s", settings.Kernel)
	}
}
