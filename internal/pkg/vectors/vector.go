// Package vectors provides AES known-answer test vectors used by the self-test and tests.
package vectors

import (
	"encoding/hex"
	"fmt"
)

// Vector is one known-answer case. All fields are hex encoded.
type Vector struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// Decoded is a Vector with its fields decoded to bytes.
type Decoded struct {
	Name       string
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

// Decode converts the hex fields of v.
func (v Vector) Decode() (Decoded, error) {
	key, err := hex.DecodeString(v.Key)
	if err != nil {
		return Decoded{}, fmt.Errorf("vector %q: key: %w", v.Name, err)
	}
	pt, err := hex.DecodeString(v.Plaintext)
	if err != nil {
		return Decoded{}, fmt.Errorf("vector %q: plaintext: %w", v.Name, err)
	}
	ct, err := hex.DecodeString(v.Ciphertext)
	if err != nil {
		return Decoded{}, fmt.Errorf("vector %q: ciphertext: %w", v.Name, err)
	}
	if len(pt) != len(ct) {
		return Decoded{}, fmt.Errorf("vector %q: plaintext is %d bytes, ciphertext %d", v.Name, len(pt), len(ct))
	}
	return Decoded{Name: v.Name, Key: key, Plaintext: pt, Ciphertext: ct}, nil
}

// BatchSizes are the job counts the self-test submits per vector. They cover a single job,
// partial batches, exact multiples and overflow of 4, 8 and 16 lane kernels.
var BatchSizes = []int{1, 3, 4, 5, 7, 8, 9, 15, 16, 17}
