package cipherjob

import "fmt"

// BlockSize is the AES block size in bytes
const BlockSize = 16

// KeySize128 is the 128-bit AES key size in bytes
const KeySize128 = 16

// KeySize192 is the 192-bit AES key size in bytes
const KeySize192 = 24

// KeySize256 is the 256-bit AES key size in bytes
const KeySize256 = 32

// MaxRounds is the round count of AES-256, the largest supported schedule
const MaxRounds = 14

// Direction selects whether a job encrypts or decrypts its buffer.
type Direction int

// Direction values
const (
	Encrypt Direction = iota + 1
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// CipherMode identifies the transform applied to a job's buffer.
type CipherMode int

// ModeECB is the only supported mode: every block is ciphered independently.
const ModeECB CipherMode = iota + 1

func (m CipherMode) String() string {
	if m == ModeECB {
		return "ECB"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Status is the lifecycle state of a job descriptor.
type Status int

// Status values. Transitions are monotonic: Unsubmitted -> InFlight -> Completed|Failed.
const (
	StatusUnsubmitted Status = iota
	StatusInFlight
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnsubmitted:
		return "UNSUBMITTED"
	case StatusInFlight:
		return "IN_FLIGHT"
	case StatusCompleted:
		return "COMPLETED"
	case StatusFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("STATUS(%d)", int(s))
	}
}

// Terminal reports whether no further transition can happen without a reset.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Rounds returns the AES round count for a raw key length in bytes.
func Rounds(keyLength int) (int, error) {
	switch keyLength {
	case KeySize128:
		return 10, nil
	case KeySize192:
		return 12, nil
	case KeySize256:
		return 14, nil
	default:
		return 0, fmt.Errorf("%w: unsupported AES key length %d bytes (must be 16, 24 or 32)", ErrContractViolation, keyLength)
	}
}
