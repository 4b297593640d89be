package testutil

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// CanarySize is the number of guard bytes placed before and after a target span.
const CanarySize = 16

// CanaryByte fills guard regions.
const CanaryByte = 0xff

// GuardedBuffer allocates CanarySize guard bytes, a span of n bytes and CanarySize guard
// bytes, all set to CanaryByte. The returned offset is where the span starts.
func GuardedBuffer(n int) (buf []byte, offset int) {
	buf = bytes.Repeat([]byte{CanaryByte}, n+2*CanarySize)
	return buf, CanarySize
}

// RequireCanariesIntact fails the test if any guard byte around the span was written.
func RequireCanariesIntact(t *testing.T, buf []byte, offset, n int) {
	t.Helper()

	guard := bytes.Repeat([]byte{CanaryByte}, CanarySize)
	require.Equal(t, guard, buf[offset-CanarySize:offset], "head canary overwritten")
	require.Equal(t, guard, buf[offset+n:offset+n+CanarySize], "tail canary overwritten")
}

// MustHex decodes a hex string or fails the test.
func MustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
