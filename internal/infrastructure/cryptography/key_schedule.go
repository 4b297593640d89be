package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"
)

// sbox and rcon are derived once from GF(2^8) arithmetic rather than transcribed.
var (
	sbox [256]byte
	rcon [10]byte
)

func init() {
	// Walk the multiplicative group with generator 3: p = 3^k, q = 3^-k.
	p, q := byte(1), byte(1)
	for {
		p = p ^ xtime(p)

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		sbox[p] = 0x63 ^ q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4)
		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63

	r := byte(1)
	for i := range rcon {
		rcon[i] = r
		r = xtime(r)
	}
}

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

func rotl8(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}

func gmul(a, b byte) byte {
	var product byte
	for b != 0 {
		if b&1 != 0 {
			product ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return product
}

func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func invMixColumn(w uint32) uint32 {
	b0, b1, b2, b3 := byte(w>>24), byte(w>>16), byte(w>>8), byte(w)
	return uint32(gmul(b0, 14)^gmul(b1, 11)^gmul(b2, 13)^gmul(b3, 9))<<24 |
		uint32(gmul(b0, 9)^gmul(b1, 14)^gmul(b2, 11)^gmul(b3, 13))<<16 |
		uint32(gmul(b0, 13)^gmul(b1, 9)^gmul(b2, 14)^gmul(b3, 11))<<8 |
		uint32(gmul(b0, 11)^gmul(b1, 13)^gmul(b2, 9)^gmul(b3, 14))
}

// RoundKeySchedule is the round-key material of one AES key for one direction.
// Storage is sized for AES-256; only Rounds()+1 round keys are populated.
type RoundKeySchedule struct {
	direction cipherjob.Direction
	keyLength int
	rounds    int
	keys      [cipherjob.MaxRounds + 1][cipherjob.BlockSize]byte
	block     cipher.Block
}

var _ cipherjob.RoundKeys = (*RoundKeySchedule)(nil)

// KeyLength returns the raw key length in bytes.
func (s *RoundKeySchedule) KeyLength() int { return s.keyLength }

// Rounds returns the number of cipher rounds.
func (s *RoundKeySchedule) Rounds() int { return s.rounds }

// Direction returns the direction the schedule was derived for.
func (s *RoundKeySchedule) Direction() cipherjob.Direction { return s.direction }

// RoundKey returns round key i, 0 <= i <= Rounds().
func (s *RoundKeySchedule) RoundKey(i int) [cipherjob.BlockSize]byte {
	return s.keys[i]
}

// Bytes returns a copy of the populated round keys, in application order.
func (s *RoundKeySchedule) Bytes() []byte {
	out := make([]byte, 0, (s.rounds+1)*cipherjob.BlockSize)
	for i := 0; i <= s.rounds; i++ {
		out = append(out, s.keys[i][:]...)
	}
	return out
}

// CryptBlock encrypts (encrypt schedule) or decrypts (decrypt schedule) one block.
func (s *RoundKeySchedule) CryptBlock(dst, src []byte) {
	if s.direction == cipherjob.Decrypt {
		s.block.Decrypt(dst, src)
		return
	}
	s.block.Encrypt(dst, src)
}

// Expand derives the encryption and decryption schedules of a 16, 24 or 32 byte key.
func Expand(rawKey []byte) (*RoundKeySchedule, *RoundKeySchedule, error) {
	rounds, err := cipherjob.Rounds(len(rawKey))
	if err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES block: %w", err)
	}

	nk := len(rawKey) / 4
	total := 4 * (rounds + 1)
	enc := make([]uint32, total)
	for i := 0; i < nk; i++ {
		enc[i] = binary.BigEndian.Uint32(rawKey[4*i:])
	}
	for i := nk; i < total; i++ {
		t := enc[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(rcon[i/nk-1])<<24
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		enc[i] = enc[i-nk] ^ t
	}

	// Equivalent inverse cipher: reverse the round order and apply InvMixColumns
	// to every round key but the first and the last.
	dec := make([]uint32, total)
	for i := 0; i < total; i += 4 {
		ei := total - i - 4
		for j := 0; j < 4; j++ {
			w := enc[ei+j]
			if i > 0 && i+4 < total {
				w = invMixColumn(w)
			}
			dec[i+j] = w
		}
	}

	encSchedule := newSchedule(cipherjob.Encrypt, len(rawKey), rounds, enc, block)
	decSchedule := newSchedule(cipherjob.Decrypt, len(rawKey), rounds, dec, block)
	return encSchedule, decSchedule, nil
}

func newSchedule(direction cipherjob.Direction, keyLength, rounds int, words []uint32, block cipher.Block) *RoundKeySchedule {
	s := &RoundKeySchedule{
		direction: direction,
		keyLength: keyLength,
		rounds:    rounds,
		block:     block,
	}
	for i, w := range words {
		binary.BigEndian.PutUint32(s.keys[i/4][4*(i%4):], w)
	}
	return s
}

// MustExpand is like Expand but panics on an unsupported key length.
func MustExpand(rawKey []byte) (*RoundKeySchedule, *RoundKeySchedule) {
	enc, dec, err := Expand(rawKey)
	if err != nil {
		panic(err)
	}
	return enc, dec
}

// Expand128 derives the schedules of an AES-128 key.
func Expand128(rawKey [cipherjob.KeySize128]byte) (*RoundKeySchedule, *RoundKeySchedule) {
	return MustExpand(rawKey[:])
}

// Expand192 derives the schedules of an AES-192 key.
func Expand192(rawKey [cipherjob.KeySize192]byte) (*RoundKeySchedule, *RoundKeySchedule) {
	return MustExpand(rawKey[:])
}

// Expand256 derives the schedules of an AES-256 key.
func Expand256(rawKey [cipherjob.KeySize256]byte) (*RoundKeySchedule, *RoundKeySchedule) {
	return MustExpand(rawKey[:])
}
