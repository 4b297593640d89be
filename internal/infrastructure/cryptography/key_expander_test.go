//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyExpander(t *testing.T) cipherjob.KeyExpander {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	expander, err := NewKeyExpander(logger)
	require.NoError(t, err)
	return expander
}

func TestKeyExpander(t *testing.T) {
	expander := setupKeyExpander(t)

	t.Run("GenerateKey", func(t *testing.T) {
		for _, size := range []int{cipherjob.KeySize128, cipherjob.KeySize192, cipherjob.KeySize256} {
			key, err := expander.GenerateKey(size)
			require.NoError(t, err)
			assert.Len(t, key, size)

			other, err := expander.GenerateKey(size)
			require.NoError(t, err)
			assert.NotEqual(t, key, other)
		}
	})

	t.Run("GenerateKeyWithInvalidSize", func(t *testing.T) {
		key, err := expander.GenerateKey(128)
		assert.ErrorIs(t, err, cipherjob.ErrContractViolation)
		assert.Nil(t, key)
	})

	t.Run("ExpandGeneratedKey", func(t *testing.T) {
		key, err := expander.GenerateKey(cipherjob.KeySize192)
		require.NoError(t, err)

		enc, dec, err := expander.Expand(key)
		require.NoError(t, err)
		assert.Equal(t, 12, enc.Rounds())
		assert.Equal(t, cipherjob.Decrypt, dec.Direction())

		block := []byte("sixteen byte blk")
		out := make([]byte, len(block))
		enc.CryptBlock(out, block)
		assert.NotEqual(t, block, out)
		dec.CryptBlock(out, out)
		assert.Equal(t, block, out)
	})

	t.Run("ExpandInvalidKey", func(t *testing.T) {
		enc, dec, err := expander.Expand([]byte("shortkey"))
		assert.ErrorIs(t, err, cipherjob.ErrContractViolation)
		assert.Nil(t, enc)
		assert.Nil(t, dec)
	})
}
