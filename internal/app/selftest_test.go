//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/config"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/testutil"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/vectors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSelfTestRunner(t *testing.T, settings config.SchedulerSettings, kernel cipherjob.Kernel) *SelfTestRunner {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	if kernel == nil {
		var err error
		kernel, err = cryptography.NewKernel(settings, log)
		require.NoError(t, err)
	}
	expander, err := cryptography.NewKeyExpander(log)
	require.NoError(t, err)

	runner, err := NewSelfTestRunner(settings, kernel, expander, log)
	require.NoError(t, err)
	return runner
}

func TestSelfTestRunner(t *testing.T) {
	tests := []struct {
		name     string
		settings config.SchedulerSettings
	}{
		{"lockstep 4 lanes", config.SchedulerSettings{Lanes: 4, Capacity: 5, Kernel: config.KernelLockstep}},
		{"lockstep defaults", config.DefaultSchedulerSettings()},
		{"parallel 8 lanes", config.SchedulerSettings{Lanes: 8, Capacity: 16, Kernel: config.KernelParallel, Workers: 3}},
		{"lockstep 16 lanes", config.SchedulerSettings{Lanes: 16, Capacity: 17, Kernel: config.KernelLockstep}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := setupSelfTestRunner(t, tt.settings, nil)

			report, err := runner.Run(vectors.ECB, vectors.BatchSizes)
			require.NoError(t, err)
			assert.Empty(t, report.Failures)
			assert.True(t, report.Passed())
			assert.Equal(t, len(vectors.ECB)*len(vectors.BatchSizes)*4, report.Cases)
			assert.Equal(t, 0, runner.manager.Outstanding())
		})
	}
}

func TestSelfTestRunner_DetectsBrokenKernel(t *testing.T) {
	kernel := new(MockKernel)
	kernel.On("Lanes").Return(4)
	kernel.On("Name").Return("noop")
	kernel.On("Execute", mock.Anything).Return(nil)

	settings := config.SchedulerSettings{Lanes: 4, Capacity: 8, Kernel: config.KernelLockstep}
	runner := setupSelfTestRunner(t, settings, kernel)

	report, err := runner.Run(vectors.ECB[:1], []int{3})
	require.NoError(t, err)
	assert.False(t, report.Passed())
	assert.Equal(t, 4, report.Cases)

	// A kernel that writes nothing leaves every out-of-place target untouched and every
	// in-place target holding its input.
	require.Len(t, report.Failures, 12)
	for _, failure := range report.Failures {
		assert.Equal(t, "mismatched", failure.Reason, failure.Case.String())
	}
}

func TestSelfTestRunner_DetectsOverwrite(t *testing.T) {
	kernel := new(MockKernel)
	kernel.On("Lanes").Return(2)
	kernel.On("Name").Return("sloppy")
	kernel.On("Execute", mock.Anything).Run(func(args mock.Arguments) {
		for _, lane := range args.Get(0).([]cipherjob.Lane) {
			for i := lane.Offset; i < lane.Offset+lane.Length; i += cipherjob.BlockSize {
				lane.Keys.CryptBlock(lane.Dst[i:i+cipherjob.BlockSize], lane.Src[i:i+cipherjob.BlockSize])
			}
			lane.Dst[lane.Offset+lane.Length] = 0
		}
	}).Return(nil)

	settings := config.SchedulerSettings{Lanes: 2, Capacity: 3, Kernel: config.KernelLockstep}
	runner := setupSelfTestRunner(t, settings, kernel)

	report, err := runner.Run(vectors.ECB[:1], []int{1})
	require.NoError(t, err)
	require.False(t, report.Passed())
	for _, failure := range report.Failures {
		assert.Equal(t, "overwrite tail", failure.Reason, failure.Case.String())
	}
}

func TestSelfTestRunner_InvalidVector(t *testing.T) {
	runner := setupSelfTestRunner(t, config.SchedulerSettings{Lanes: 4, Capacity: 8, Kernel: config.KernelLockstep}, nil)

	_, err := runner.Run([]vectors.Vector{{Name: "short key", Key: "00", Plaintext: "", Ciphertext: ""}}, []int{1})
	assert.ErrorIs(t, err, cipherjob.ErrContractViolation)

	_, err = runner.Run([]vectors.Vector{{Name: "not hex", Key: "zz"}}, []int{1})
	assert.Error(t, err)
}

func TestSelfTestCase_String(t *testing.T) {
	c := SelfTestCase{Vector: "v", Jobs: 3, Direction: cipherjob.Decrypt, InPlace: true}
	assert.Equal(t, "v decrypt in-place x3", c.String())
}
