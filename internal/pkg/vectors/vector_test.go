//go:build unit
// +build unit

package vectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestECBVectorsDecode(t *testing.T) {
	require.Len(t, ECB, 7)

	for _, v := range ECB {
		t.Run(v.Name, func(t *testing.T) {
			d, err := v.Decode()
			require.NoError(t, err)

			assert.Contains(t, []int{16, 24, 32}, len(d.Key))
			assert.NotEmpty(t, d.Plaintext)
			assert.Zero(t, len(d.Plaintext)%16)
			assert.Equal(t, len(d.Plaintext), len(d.Ciphertext))
		})
	}
}

func TestDecodeRejectsBadHex(t *testing.T) {
	_, err := Vector{Name: "bad", Key: "zz", Plaintext: "00", Ciphertext: "00"}.Decode()
	assert.Error(t, err)

	_, err = Vector{Name: "mismatch", Key: "00", Plaintext: "0000", Ciphertext: "00"}.Decode()
	assert.Error(t, err)
}
