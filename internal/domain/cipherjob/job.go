package cipherjob

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validators.New()

// Job is one cipher request. Callers fill the exported fields of a slot obtained from the
// job manager; the manager owns the status. Tag is carried through untouched so completed
// jobs can be correlated with caller state.
//
// Src, Dst and the key schedules are borrowed while the job is in flight and must not be
// modified by the caller until the job has been returned.
type Job[T any] struct {
	Direction   Direction  `validate:"oneof=1 2"`
	Mode        CipherMode `validate:"oneof=1"`
	KeyLength   int        `validate:"aes_key_length"`
	EncryptKeys RoundKeys  `validate:"-"`
	DecryptKeys RoundKeys  `validate:"-"`
	Src         []byte     `validate:"required"`
	Dst         []byte     `validate:"required"`
	Offset      int        `validate:"gte=0"`
	Length      int        `validate:"gt=0,block_multiple"`
	Tag         T          `validate:"-"`

	id     uuid.UUID
	status Status
	err    error
}

// NewSlot creates an unsubmitted descriptor with a fresh identifier.
func NewSlot[T any]() *Job[T] {
	return &Job[T]{id: uuid.New()}
}

// ID returns the identifier of the slot. It is stable across resets.
func (j *Job[T]) ID() uuid.UUID {
	return j.id
}

// Status returns the lifecycle state of the job.
func (j *Job[T]) Status() Status {
	return j.status
}

// Err returns the failure cause of a FAILED job, nil otherwise.
func (j *Job[T]) Err() error {
	return j.err
}

// Keys returns the schedule matching the job's direction.
func (j *Job[T]) Keys() RoundKeys {
	if j.Direction == Decrypt {
		return j.DecryptKeys
	}
	return j.EncryptKeys
}

// Validate checks the job against the submission contract.
func (j *Job[T]) Validate() error {
	var messages []string

	if err := validate.Struct(j); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("%w: validation error: %w", ErrContractViolation, err)
		}
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	if j.Offset >= 0 && j.Length > 0 {
		if j.Src != nil && !SpanFits(j.Offset, j.Length, len(j.Src)) {
			messages = append(messages, fmt.Sprintf("Field: Src, Tag: span (offset %d, length %d, %d available)", j.Offset, j.Length, len(j.Src)))
		}
		if j.Dst != nil && !SpanFits(j.Offset, j.Length, len(j.Dst)) {
			messages = append(messages, fmt.Sprintf("Field: Dst, Tag: span (offset %d, length %d, %d available)", j.Offset, j.Length, len(j.Dst)))
		}
	}

	if msg := j.validateKeys(); msg != "" {
		messages = append(messages, msg)
	}

	if len(messages) > 0 {
		return fmt.Errorf("%w: validation failed: %v", ErrContractViolation, messages)
	}
	return nil
}

// SpanFits reports whether [offset, offset+length) lies within a buffer of size n.
// It never computes offset+length, so huge offsets cannot wrap around.
func SpanFits(offset, length, n int) bool {
	return offset >= 0 && length >= 0 && offset <= n && length <= n-offset
}

func (j *Job[T]) validateKeys() string {
	if j.Direction != Encrypt && j.Direction != Decrypt {
		return ""
	}
	field := "EncryptKeys"
	if j.Direction == Decrypt {
		field = "DecryptKeys"
	}

	keys := j.Keys()
	switch {
	case keys == nil:
		return fmt.Sprintf("Field: %s, Tag: required", field)
	case keys.Direction() != j.Direction:
		return fmt.Sprintf("Field: %s, Tag: direction (%s schedule)", field, keys.Direction())
	case keys.KeyLength() != j.KeyLength:
		return fmt.Sprintf("Field: %s, Tag: key_length (%d bytes)", field, keys.KeyLength())
	}
	return ""
}

// Lane builds the kernel view of the job.
func (j *Job[T]) Lane() Lane {
	return Lane{
		Direction: j.Direction,
		Mode:      j.Mode,
		Keys:      j.Keys(),
		Src:       j.Src,
		Dst:       j.Dst,
		Offset:    j.Offset,
		Length:    j.Length,
	}
}

// MarkInFlight moves an unsubmitted job into flight.
func (j *Job[T]) MarkInFlight() error {
	if j.status != StatusUnsubmitted {
		return fmt.Errorf("%w: cannot submit job %s in status %s", ErrInvalidState, j.id, j.status)
	}
	j.status = StatusInFlight
	j.err = nil
	return nil
}

// MarkCompleted finishes an in-flight job successfully.
func (j *Job[T]) MarkCompleted() error {
	if j.status != StatusInFlight {
		return fmt.Errorf("%w: cannot complete job %s in status %s", ErrInvalidState, j.id, j.status)
	}
	j.status = StatusCompleted
	return nil
}

// MarkFailed finishes an in-flight job with the given cause.
func (j *Job[T]) MarkFailed(cause error) error {
	if j.status != StatusInFlight {
		return fmt.Errorf("%w: cannot fail job %s in status %s", ErrInvalidState, j.id, j.status)
	}
	j.status = StatusFailed
	j.err = cause
	return nil
}

// Reset clears every caller field and returns the job to StatusUnsubmitted.
// An in-flight job cannot be reset.
func (j *Job[T]) Reset() error {
	if j.status == StatusInFlight {
		return fmt.Errorf("%w: cannot reset in-flight job %s", ErrInvalidState, j.id)
	}
	*j = Job[T]{id: j.id}
	return nil
}
