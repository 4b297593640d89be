package cipherjob

// RoundKeys is precomputed, direction-specific key material for one raw AES key.
// Implementations are immutable after construction; jobs borrow them without copying.
type RoundKeys interface {
	// KeyLength returns the raw key length in bytes (16, 24 or 32).
	KeyLength() int
	// Rounds returns the number of cipher rounds (10, 12 or 14).
	Rounds() int
	// Direction returns the direction this schedule was derived for.
	Direction() Direction
	// Bytes returns the round-key material, (Rounds()+1)*BlockSize bytes long.
	Bytes() []byte
	// CryptBlock transforms exactly one block from src into dst in the schedule's direction.
	// dst and src may be the same slice.
	CryptBlock(dst, src []byte)
}

// KeyExpander derives encryption and decryption round keys from raw AES keys.
type KeyExpander interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Expand derives the encryption and decryption schedules of rawKey.
	// Any key length other than 16, 24 or 32 bytes is a contract violation.
	Expand(rawKey []byte) (RoundKeys, RoundKeys, error)
}

// Lane is the untyped view of one job as seen by a cipher kernel.
type Lane struct {
	Direction Direction
	Mode      CipherMode
	Keys      RoundKeys
	Src       []byte
	Dst       []byte
	Offset    int
	Length    int
}

// Kernel transforms a batch of independent buffers in one invocation.
type Kernel interface {
	// Lanes returns the number of buffers the kernel processes per invocation.
	Lanes() int
	// Name identifies the kernel implementation in logs.
	Name() string
	// Execute transforms every lane of the batch. The batch is atomic for the caller:
	// a non-nil error fails every job of the batch.
	Execute(batch []Lane) error
}
