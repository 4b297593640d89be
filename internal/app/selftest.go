package app

import (
	"bytes"
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/config"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/logger"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/vectors"
)

// canarySize guard bytes surround every self-test target buffer.
const canarySize = 16

const canaryByte = 0xff

// SelfTestCase identifies one run of the known-answer matrix.
type SelfTestCase struct {
	Vector    string
	Jobs      int
	Direction cipherjob.Direction
	InPlace   bool
}

func (c SelfTestCase) String() string {
	placement := "out-of-place"
	if c.InPlace {
		placement = "in-place"
	}
	return fmt.Sprintf("%s %s %s x%d", c.Vector, c.Direction, placement, c.Jobs)
}

// SelfTestFailure describes why a case did not pass.
type SelfTestFailure struct {
	Case   SelfTestCase
	Job    int
	Reason string
}

// SelfTestReport summarizes a self-test run.
type SelfTestReport struct {
	Cases    int
	Failures []SelfTestFailure
}

// Passed reports whether every case succeeded.
func (r *SelfTestReport) Passed() bool {
	return len(r.Failures) == 0
}

// selfTestTag correlates a completed job with its target buffer.
type selfTestTag struct {
	index  int
	target []byte
}

// SelfTestRunner runs the ECB known-answer matrix through its own job manager.
type SelfTestRunner struct {
	manager *JobManager[selfTestTag]
	keys    cipherjob.KeyExpander
	logger  logger.Logger
}

// NewSelfTestRunner creates a runner with a dedicated manager.
func NewSelfTestRunner(settings config.SchedulerSettings, kernel cipherjob.Kernel, keys cipherjob.KeyExpander, logger logger.Logger) (*SelfTestRunner, error) {
	manager, err := NewJobManager[selfTestTag](settings, kernel, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create job manager: %w", err)
	}
	return &SelfTestRunner{
		manager: manager,
		keys:    keys,
		logger:  logger,
	}, nil
}

// Run encrypts and decrypts every vector, out-of-place and in-place, once per batch size.
func (r *SelfTestRunner) Run(vecs []vectors.Vector, batchSizes []int) (*SelfTestReport, error) {
	report := &SelfTestReport{}

	for _, batch := range batchSizes {
		for _, v := range vecs {
			d, err := v.Decode()
			if err != nil {
				return nil, err
			}

			enc, dec, err := r.keys.Expand(d.Key)
			if err != nil {
				return nil, fmt.Errorf("vector %q: %w", v.Name, err)
			}

			runs := []struct {
				dir     cipherjob.Direction
				in, out []byte
				inPlace bool
			}{
				{cipherjob.Encrypt, d.Plaintext, d.Ciphertext, false},
				{cipherjob.Decrypt, d.Ciphertext, d.Plaintext, false},
				{cipherjob.Encrypt, d.Plaintext, d.Ciphertext, true},
				{cipherjob.Decrypt, d.Ciphertext, d.Plaintext, true},
			}
			for _, run := range runs {
				c := SelfTestCase{Vector: v.Name, Jobs: batch, Direction: run.dir, InPlace: run.inPlace}
				report.Cases++
				report.Failures = append(report.Failures, r.runCase(c, len(d.Key), enc, dec, run.in, run.out)...)
			}
		}
	}

	if report.Passed() {
		r.logger.Info("Self-test passed ", report.Cases, " cases")
	} else {
		r.logger.Error("Self-test failed ", len(report.Failures), " checks over ", report.Cases, " cases")
	}
	return report, nil
}

func (r *SelfTestRunner) runCase(c SelfTestCase, keyLength int, enc, dec cipherjob.RoundKeys, in, want []byte) []SelfTestFailure {
	var failures []SelfTestFailure
	fail := func(job int, format string, args ...interface{}) {
		failures = append(failures, SelfTestFailure{Case: c, Job: job, Reason: fmt.Sprintf(format, args...)})
	}

	r.discard()
	defer r.discard()

	received := 0
	check := func(job *cipherjob.Job[selfTestTag]) {
		received++
		if reason := checkTarget(job, want); reason != "" {
			fail(job.Tag.index, "%s", reason)
		}
		_ = r.manager.Release(job)
	}

	for i := 0; i < c.Jobs; i++ {
		job, err := r.manager.GetNextSlot()
		if err != nil {
			fail(i, "get slot: %v", err)
			return failures
		}

		target := bytes.Repeat([]byte{canaryByte}, len(in)+2*canarySize)
		job.Direction = c.Direction
		job.Mode = cipherjob.ModeECB
		job.KeyLength = keyLength
		job.EncryptKeys = enc
		job.DecryptKeys = dec
		job.Dst = target
		job.Offset = canarySize
		job.Length = len(in)
		job.Tag = selfTestTag{index: i, target: target}
		if c.InPlace {
			copy(target[canarySize:], in)
			job.Src = target
		} else {
			// Out-of-place source shares the target's offset.
			src := make([]byte, len(target))
			copy(src[canarySize:], in)
			job.Src = src
		}

		done, err := r.manager.Submit(job)
		if err != nil {
			fail(i, "submit: %v", err)
			_ = r.manager.Release(job)
			return failures
		}
		if done != nil {
			check(done)
		}
	}

	for job := range r.manager.Drain() {
		check(job)
	}

	if received != c.Jobs {
		fail(-1, "expected %d jobs, received %d", c.Jobs, received)
	}
	return failures
}

// discard drains and releases anything left over from an aborted case.
func (r *SelfTestRunner) discard() {
	for job := range r.manager.Drain() {
		_ = r.manager.Release(job)
	}
}

func checkTarget(job *cipherjob.Job[selfTestTag], want []byte) string {
	target := job.Tag.target
	guard := bytes.Repeat([]byte{canaryByte}, canarySize)

	switch {
	case job.Status() != cipherjob.StatusCompleted:
		return fmt.Sprintf("error status %s: %v", job.Status(), job.Err())
	case !bytes.Equal(target[canarySize:canarySize+len(want)], want):
		return "mismatched"
	case !bytes.Equal(target[:canarySize], guard):
		return "overwrite head"
	case !bytes.Equal(target[canarySize+len(want):], guard):
		return "overwrite tail"
	}
	return ""
}
