package app

import (
	"errors"
	"fmt"
	"iter"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/config"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"

	"github.com/google/uuid"
)

// slotState tracks who owns a pooled descriptor.
type slotState int

const (
	slotFree      slotState = iota // in the free list
	slotHandedOut                  // owned by the caller, not submitted
	slotQueued                     // owned by the manager: in flight or completed but not returned
	slotReturned                   // returned to the caller, awaiting Release
)

// Stats counts what a JobManager has done since construction.
type Stats struct {
	Submitted         uint64
	Rejected          uint64
	Completed         uint64
	Failed            uint64
	KernelInvocations uint64
}

// JobManager batches cipher jobs over a multi-lane kernel. Jobs are taken from a fixed
// pool with GetNextSlot, handed in with Submit and come back, in no particular order,
// from Submit, Flush or Drain. Every returned job must be given back with Release.
//
// A JobManager is not safe for concurrent use. Independent managers share nothing.
type JobManager[T any] struct {
	id       uuid.UUID
	kernel   cipherjob.Kernel
	logger   logger.Logger
	capacity int

	slots   map[*cipherjob.Job[T]]slotState
	free    []*cipherjob.Job[T]
	pending []*cipherjob.Job[T]
	ready   []*cipherjob.Job[T]
	lanes   []cipherjob.Lane

	stats Stats
}

// NewJobManager creates a manager with settings.Capacity pooled descriptors driving kernel.
// The kernel lane count must match settings.Lanes and the capacity must exceed it, so that
// a full batch can be formed while one slot is still being filled.
func NewJobManager[T any](settings config.SchedulerSettings, kernel cipherjob.Kernel, logger logger.Logger) (*JobManager[T], error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheduler settings: %w", err)
	}
	if kernel == nil {
		return nil, errors.New("kernel cannot be nil")
	}
	if kernel.Lanes() != settings.Lanes {
		return nil, fmt.Errorf("kernel has %d lanes, settings ask for %d", kernel.Lanes(), settings.Lanes)
	}

	id := uuid.New()
	m := &JobManager[T]{
		id:       id,
		kernel:   kernel,
		logger:   logger.With("manager", id.String(), "kernel", kernel.Name()),
		capacity: settings.Capacity,
		slots:    make(map[*cipherjob.Job[T]]slotState, settings.Capacity),
		free:     make([]*cipherjob.Job[T], 0, settings.Capacity),
		pending:  make([]*cipherjob.Job[T], 0, settings.Lanes),
		ready:    make([]*cipherjob.Job[T], 0, settings.Capacity),
		lanes:    make([]cipherjob.Lane, 0, settings.Lanes),
	}

	for i := 0; i < settings.Capacity; i++ {
		slot := cipherjob.NewSlot[T]()
		m.slots[slot] = slotFree
		m.free = append(m.free, slot)
	}

	m.logger.Info("Job manager ready with ", settings.Lanes, " lanes and ", settings.Capacity, " slots")
	return m, nil
}

// ID identifies the manager in logs.
func (m *JobManager[T]) ID() uuid.UUID {
	return m.id
}

// Capacity returns the size of the descriptor pool.
func (m *JobManager[T]) Capacity() int {
	return m.capacity
}

// InFlight returns the number of submitted jobs waiting for a kernel invocation.
func (m *JobManager[T]) InFlight() int {
	return len(m.pending)
}

// Outstanding returns the number of descriptors not in the free pool.
func (m *JobManager[T]) Outstanding() int {
	return m.capacity - len(m.free)
}

// Stats returns a snapshot of the manager counters.
func (m *JobManager[T]) Stats() Stats {
	return m.stats
}

// GetNextSlot hands out an unsubmitted descriptor. It fails with ErrNoFreeSlot when every
// descriptor is outstanding; the caller has to drain and release before retrying.
func (m *JobManager[T]) GetNextSlot() (*cipherjob.Job[T], error) {
	if len(m.free) == 0 {
		return nil, fmt.Errorf("%w: all %d slots outstanding", cipherjob.ErrNoFreeSlot, m.capacity)
	}

	last := len(m.free) - 1
	slot := m.free[last]
	m.free[last] = nil
	m.free = m.free[:last]

	m.slots[slot] = slotHandedOut
	return slot, nil
}

// Submit admits job to the current batch. A job that breaks the contract is rejected with
// an error wrapping ErrContractViolation and stays with the caller, unsubmitted.
//
// When the batch reaches the kernel lane count it is executed. Submit then returns one
// finished job if any is waiting to be returned, nil otherwise.
func (m *JobManager[T]) Submit(job *cipherjob.Job[T]) (*cipherjob.Job[T], error) {
	if err := m.checkOwned(job, slotHandedOut); err != nil {
		return nil, err
	}

	if err := job.Validate(); err != nil {
		m.stats.Rejected++
		return nil, err
	}
	if err := job.MarkInFlight(); err != nil {
		return nil, err
	}

	m.slots[job] = slotQueued
	m.pending = append(m.pending, job)
	m.stats.Submitted++

	if len(m.pending) == m.kernel.Lanes() {
		m.execute()
	}

	return m.popReady(), nil
}

// Flush returns one finished job. If none is waiting it executes the pending partial batch
// first. It returns nil once no job is in flight or waiting to be returned.
func (m *JobManager[T]) Flush() *cipherjob.Job[T] {
	if len(m.ready) == 0 && len(m.pending) > 0 {
		m.execute()
	}
	return m.popReady()
}

// Drain returns a sequence of finished jobs that flushes the manager as it is consumed.
// The sequence ends when no job is in flight; ranging over it again only yields jobs
// submitted in the meantime.
func (m *JobManager[T]) Drain() iter.Seq[*cipherjob.Job[T]] {
	return func(yield func(*cipherjob.Job[T]) bool) {
		for job := m.Flush(); job != nil; job = m.Flush() {
			if !yield(job) {
				return
			}
		}
	}
}

// Release gives a descriptor back to the pool and resets it. The caller may release a job
// that was returned by Submit, Flush or Drain, or abandon a slot it has not submitted.
func (m *JobManager[T]) Release(job *cipherjob.Job[T]) error {
	state, ok := m.slots[job]
	if !ok {
		return cipherjob.ErrUnknownJob
	}
	if state != slotHandedOut && state != slotReturned {
		return fmt.Errorf("%w: job %s cannot be released while owned by the manager or already free", cipherjob.ErrInvalidState, job.ID())
	}

	if err := job.Reset(); err != nil {
		return err
	}
	m.slots[job] = slotFree
	m.free = append(m.free, job)
	return nil
}

func (m *JobManager[T]) checkOwned(job *cipherjob.Job[T], want slotState) error {
	state, ok := m.slots[job]
	if !ok {
		return cipherjob.ErrUnknownJob
	}
	if state != want {
		return fmt.Errorf("%w: job %s is %s", cipherjob.ErrInvalidState, job.ID(), job.Status())
	}
	return nil
}

// execute runs the kernel over every pending job and moves them to the ready list.
func (m *JobManager[T]) execute() {
	for _, job := range m.pending {
		m.lanes = append(m.lanes, job.Lane())
	}

	err := m.invokeKernel(m.lanes)
	m.stats.KernelInvocations++

	if err != nil {
		if !errors.Is(err, cipherjob.ErrKernelFailure) {
			err = fmt.Errorf("%w: %w", cipherjob.ErrKernelFailure, err)
		}
		m.logger.Error("Batch of ", len(m.pending), " jobs failed: ", err)
	} else {
		m.logger.Debug("Executed batch of ", len(m.pending), " jobs")
	}

	for i, job := range m.pending {
		if err != nil {
			_ = job.MarkFailed(err)
			m.stats.Failed++
		} else {
			_ = job.MarkCompleted()
			m.stats.Completed++
		}
		m.ready = append(m.ready, job)
		m.pending[i] = nil
	}
	m.pending = m.pending[:0]

	clear(m.lanes)
	m.lanes = m.lanes[:0]
}

// invokeKernel turns a kernel panic into a batch failure.
func (m *JobManager[T]) invokeKernel(batch []cipherjob.Lane) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: kernel panic: %v", cipherjob.ErrKernelFailure, r)
		}
	}()
	return m.kernel.Execute(batch)
}

func (m *JobManager[T]) popReady() *cipherjob.Job[T] {
	if len(m.ready) == 0 {
		return nil
	}

	last := len(m.ready) - 1
	job := m.ready[last]
	m.ready[last] = nil
	m.ready = m.ready[:last]

	m.slots[job] = slotReturned
	return job
}
