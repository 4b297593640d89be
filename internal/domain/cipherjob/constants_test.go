//go:build unit
// +build unit

package cipherjob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRounds(t *testing.T) {
	tests := []struct {
		keyLength int
		rounds    int
	}{
		{KeySize128, 10},
		{KeySize192, 12},
		{KeySize256, MaxRounds},
	}
	for _, tt := range tests {
		rounds, err := Rounds(tt.keyLength)
		assert.NoError(t, err)
		assert.Equal(t, tt.rounds, rounds)
	}

	for _, n := range []int{0, 8, 128, 256} {
		_, err := Rounds(n)
		assert.ErrorIs(t, err, ErrContractViolation, "key length %d", n)
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "encrypt", Encrypt.String())
	assert.Equal(t, "decrypt", Decrypt.String())
	assert.Equal(t, "direction(9)", Direction(9).String())
	assert.Equal(t, "ECB", ModeECB.String())
	assert.Equal(t, "mode(0)", CipherMode(0).String())
	assert.Equal(t, "IN_FLIGHT", StatusInFlight.String())
	assert.Equal(t, "FAILED", StatusFailed.String())
	assert.False(t, StatusInFlight.Terminal())
	assert.False(t, StatusUnsubmitted.Terminal())
}
