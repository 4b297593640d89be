package cipherjob

import "errors"

var (
	// ErrContractViolation is returned when a caller breaks the job contract (bad length, key, buffers).
	ErrContractViolation = errors.New("cipher job contract violation")
	// ErrNoFreeSlot is returned when every descriptor of the pool is outstanding.
	ErrNoFreeSlot = errors.New("no free job slot")
	// ErrKernelFailure marks jobs of a batch the cipher kernel could not process.
	ErrKernelFailure = errors.New("cipher kernel failure")
	// ErrUnknownJob is returned for descriptors that do not belong to the manager.
	ErrUnknownJob = errors.New("job does not belong to this manager")
	// ErrInvalidState is returned when an operation does not fit the job's current status.
	ErrInvalidState = errors.New("invalid job state")
)
