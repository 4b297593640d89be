//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *SchedulerSettings
		expectedError bool
	}{
		{
			name:          "defaults",
			settings:      func() *SchedulerSettings { s := DefaultSchedulerSettings(); return &s }(),
			expectedError: false,
		},
		{
			name:          "parallel kernel",
			settings:      &SchedulerSettings{Lanes: 4, Capacity: 5, Kernel: KernelParallel, Workers: 2},
			expectedError: false,
		},
		{
			name:          "missing lanes",
			settings:      &SchedulerSettings{Capacity: 16, Kernel: KernelLockstep},
			expectedError: true,
		},
		{
			name:          "capacity equal to lanes",
			settings:      &SchedulerSettings{Lanes: 8, Capacity: 8, Kernel: KernelLockstep},
			expectedError: true,
		},
		{
			name:          "unknown kernel",
			settings:      &SchedulerSettings{Lanes: 8, Capacity: 16, Kernel: "avx512"},
			expectedError: true,
		},
		{
			name:          "parallel kernel without workers",
			settings:      &SchedulerSettings{Lanes: 8, Capacity: 16, Kernel: KernelParallel},
			expectedError: true,
		},
		{
			name:          "too many lanes",
			settings:      &SchedulerSettings{Lanes: 65, Capacity: 128, Kernel: KernelLockstep},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}
