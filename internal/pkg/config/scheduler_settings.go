package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Kernel type constants
const (
	KernelLockstep = "lockstep"
	KernelParallel = "parallel"
)

// Scheduler defaults
const (
	DefaultLanes    = 8
	DefaultCapacity = 16
	DefaultWorkers  = 4
)

// SchedulerSettings sizes a job manager and selects its cipher kernel.
// Capacity bounds the number of outstanding descriptors (handed out, in flight or
// completed but not yet released) and must leave room for one slot beyond a full batch.
type SchedulerSettings struct {
	Lanes    int    `mapstructure:"lanes" yaml:"lanes" env:"MB_CIPHER_LANES" env-default:"8" validate:"required,min=1,max=64"`
	Capacity int    `mapstructure:"capacity" yaml:"capacity" env:"MB_CIPHER_CAPACITY" env-default:"16" validate:"required,gtfield=Lanes,max=4096"`
	Kernel   string `mapstructure:"kernel" yaml:"kernel" env:"MB_CIPHER_KERNEL" env-default:"lockstep" validate:"required,oneof=lockstep parallel"`
	Workers  int    `mapstructure:"workers" yaml:"workers" env:"MB_CIPHER_WORKERS" env-default:"4" validate:"min=0,max=256"`
}

// DefaultSchedulerSettings returns the settings used when nothing is configured.
func DefaultSchedulerSettings() SchedulerSettings {
	return SchedulerSettings{
		Lanes:    DefaultLanes,
		Capacity: DefaultCapacity,
		Kernel:   KernelLockstep,
		Workers:  DefaultWorkers,
	}
}

// Validate checks that all fields in SchedulerSettings are valid
func (s *SchedulerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SchedulerSettings: %w", err)
	}

	if s.Kernel == KernelParallel && s.Workers < 1 {
		return fmt.Errorf("parallel kernel requires at least one worker")
	}

	return nil
}
