// Package engine defines the bridge contract to the AES accelerator: a
// shared scratch region addressed by fixed slot offsets, plus the primitive
// single-block operations the mode layer is assembled from. Implementations
// may drive real hardware or fall back to software; either way every
// primitive blocks the caller until the operation has completed.
package engine

import "github.com/p4gefau1t/aescore/common"

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// MaxKeySize is the width of a key slot, large enough for AES-256.
	MaxKeySize = 32
)

// Scratch slot offsets. The layout mirrors the accelerator's shared memory
// region: the two key schedules first, then the transient working blocks
// and the IV/counter slot.
const (
	OffsetKey    = 0
	OffsetInvKey = OffsetKey + MaxKeySize
	OffsetBlock0 = OffsetInvKey + MaxKeySize
	OffsetBlock1 = OffsetBlock0 + BlockSize
	OffsetBlock2 = OffsetBlock1 + BlockSize
	OffsetIV     = OffsetBlock2 + BlockSize

	// ScratchSize is the total size of the shared scratch region.
	ScratchSize = OffsetIV + BlockSize
)

// Direction selects the forward or inverse block transform.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

// KeyLength is the AES key width class.
type KeyLength int

const (
	Key128 KeyLength = iota
	Key192
	Key256
)

// Size returns the key width in bytes, or 0 for an unknown class.
func (k KeyLength) Size() int {
	switch k {
	case Key128:
		return 16
	case Key192:
		return 24
	case Key256:
		return 32
	default:
		return 0
	}
}

// Engine is the primitive bridge to one accelerator instance. All offsets
// address the engine's scratch region; Transform and Xor16 operate on
// exactly one block. An Engine carries no locking: the caller owns the
// instance exclusively for the duration of each call.
type Engine interface {
	// ConfigureKey selects the key width for subsequent transforms.
	ConfigureKey(keyLength KeyLength)

	// InverseKey derives the decryption schedule at invOffset from the
	// key material at keyOffset. The forward transform is the only one
	// the accelerator runs natively, so this is done once per context.
	InverseKey(keyOffset, invOffset int)

	// Transform runs the single-block cipher from srcOffset to dstOffset
	// under the forward or inverse schedule depending on dir.
	Transform(dir Direction, dstOffset, srcOffset int)

	// Xor16 writes the XOR of the blocks at aOffset and bOffset to
	// dstOffset. dstOffset may equal either source.
	Xor16(dstOffset, aOffset, bOffset int)

	// Load copies len(src) bytes from a caller buffer into scratch.
	Load(offset int, src []byte)

	// Store copies len(dst) bytes from scratch into a caller buffer.
	Store(dst []byte, offset int)

	// Copy moves one block between two scratch slots.
	Copy(dstOffset, srcOffset int)

	// Wipe zeroes the entire scratch region and discards any derived
	// key schedules.
	Wipe()
}

// Creator creates an engine instance.
type Creator func() (Engine, error)

var creators = make(map[string]Creator)

func RegisterEngineCreator(name string, creator Creator) {
	creators[name] = creator
}

func NewEngine(name string) (Engine, error) {
	creator, found := creators[name]
	if !found {
		return nil, common.NewError("unknown engine name " + name)
	}
	return creator()
}
