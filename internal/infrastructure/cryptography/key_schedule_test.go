//go:build unit
// +build unit

package cryptography

import (
	"encoding/hex"
	"testing"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
	"github.com/MGTheTrain/mb-cipher/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSBox(t *testing.T) {
	assert.Equal(t, byte(0x63), sbox[0x00])
	assert.Equal(t, byte(0xed), sbox[0x53])
	assert.Equal(t, byte(0x16), sbox[0xff])

	seen := make(map[byte]bool, 256)
	for _, b := range sbox {
		seen[b] = true
	}
	assert.Len(t, seen, 256, "S-box is not a permutation")
}

func TestRcon(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}, rcon[:10])
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		rounds    int
		encRound1 string
		encLast   string
		decRound1 string
	}{
		{
			name:      "AES-128",
			key:       "2b7e151628aed2a6abf7158809cf4f3c",
			rounds:    10,
			encRound1: "a0fafe1788542cb123a339392a6c7605",
			encLast:   "d014f9a8c9ee2589e13f0cc8b6630ca6",
			decRound1: "0c7b5a631319eafeb0398890664cfbb4",
		},
		{
			name:      "AES-192",
			key:       "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
			rounds:    12,
			encLast:   "e98ba06f448c773c8ecc720401002202",
			decRound1: "ac491644e55710b746c08a75c89b2cad",
		},
		{
			name:      "AES-256",
			key:       "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
			rounds:    14,
			encLast:   "fe4890d1e6188d0b046df344706c631e",
			decRound1: "ada23f4963e23b2455427c8a5c709104",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := testutil.MustHex(t, tt.key)
			enc, dec, err := Expand(key)
			require.NoError(t, err)

			assert.Equal(t, cipherjob.Encrypt, enc.Direction())
			assert.Equal(t, cipherjob.Decrypt, dec.Direction())
			assert.Equal(t, len(key), enc.KeyLength())
			assert.Equal(t, tt.rounds, enc.Rounds())
			assert.Equal(t, tt.rounds, dec.Rounds())

			first := enc.RoundKey(0)
			assert.Equal(t, key[:cipherjob.BlockSize], first[:])
			last := enc.RoundKey(tt.rounds)
			assert.Equal(t, tt.encLast, hex.EncodeToString(last[:]))
			if tt.encRound1 != "" {
				k := enc.RoundKey(1)
				assert.Equal(t, tt.encRound1, hex.EncodeToString(k[:]))
			}

			// The decryption schedule starts with the last encryption round key and
			// ends with the first.
			assert.Equal(t, last, dec.RoundKey(0))
			assert.Equal(t, first, dec.RoundKey(tt.rounds))
			k := dec.RoundKey(1)
			assert.Equal(t, tt.decRound1, hex.EncodeToString(k[:]))

			assert.Len(t, enc.Bytes(), (tt.rounds+1)*cipherjob.BlockSize)
			assert.Len(t, dec.Bytes(), (tt.rounds+1)*cipherjob.BlockSize)
			assert.NotEqual(t, enc.Bytes(), dec.Bytes())
		})
	}
}

func TestExpand_InvalidKeyLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 20, 31, 33, 64} {
		enc, dec, err := Expand(make([]byte, n))
		assert.ErrorIs(t, err, cipherjob.ErrContractViolation, "key of %d bytes", n)
		assert.Nil(t, enc)
		assert.Nil(t, dec)
	}

	assert.Panics(t, func() { MustExpand(make([]byte, 10)) })
}

func TestExpand_FixedSizeHelpers(t *testing.T) {
	var k128 [cipherjob.KeySize128]byte
	var k192 [cipherjob.KeySize192]byte
	var k256 [cipherjob.KeySize256]byte

	enc, dec := Expand128(k128)
	assert.Equal(t, 10, enc.Rounds())
	assert.Len(t, dec.Bytes(), 176)

	enc, dec = Expand192(k192)
	assert.Equal(t, 12, enc.Rounds())
	assert.Len(t, dec.Bytes(), 208)

	enc, dec = Expand256(k256)
	assert.Equal(t, 14, enc.Rounds())
	assert.Len(t, dec.Bytes(), 240)
}

func TestRoundKeySchedule_CryptBlock(t *testing.T) {
	key := testutil.MustHex(t, "000102030405060708090a0b0c0d0e0f")
	plain := testutil.MustHex(t, "00112233445566778899aabbccddeeff")
	cipher := testutil.MustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	enc, dec, err := Expand(key)
	require.NoError(t, err)

	out := make([]byte, cipherjob.BlockSize)
	enc.CryptBlock(out, plain)
	assert.Equal(t, cipher, out)

	// In place.
	dec.CryptBlock(out, out)
	assert.Equal(t, plain, out)
}
