// Package aes assembles the standard confidentiality modes (ECB, CBC, CFB,
// CTR) from an accelerator engine's primitive block operations. The package
// performs no locking: a Context and its engine belong to one caller at a
// time, and concurrent mode calls on the same Context must be serialized
// externally. Independent engine instances are independent.
package aes

import (
	log "github.com/sirupsen/logrus"

	"github.com/p4gefau1t/aescore/common"
	"github.com/p4gefau1t/aescore/engine"
)

// BlockSize is the AES block size in bytes.
const BlockSize = engine.BlockSize

type Direction = engine.Direction

const (
	Encrypt = engine.Encrypt
	Decrypt = engine.Decrypt
)

type KeyLength = engine.KeyLength

const (
	Key128 = engine.Key128
	Key192 = engine.Key192
	Key256 = engine.Key256
)

var (
	// ErrInvalidKeyLength is returned by Init when the key width class is
	// unknown or the key material does not match it.
	ErrInvalidKeyLength = common.NewError("aes: invalid key length")

	// ErrSizeNotBlockAligned is returned by ECB, CBC and CFB when the
	// source is not a whole number of blocks. No partial work is done and
	// the destination is left untouched.
	ErrSizeNotBlockAligned = common.NewError("aes: source size is not a multiple of the block size")
)

// Context binds a prepared key schedule to an engine. The engine's scratch
// region is exclusive to the Context until Free.
type Context struct {
	keyLength KeyLength
	eng       engine.Engine
}

// Init copies the key into the engine's key slot and derives the inverse
// schedule used for decryption. The accelerator only runs the forward
// transform natively, so the inverse schedule is prepared once here rather
// than per block.
func Init(eng engine.Engine, key []byte, keyLength KeyLength) (*Context, error) {
	size := keyLength.Size()
	if size == 0 || len(key) != size {
		return nil, ErrInvalidKeyLength
	}
	eng.ConfigureKey(keyLength)
	eng.Load(engine.OffsetKey, key)
	eng.InverseKey(engine.OffsetKey, engine.OffsetInvKey)
	log.Debugf("aes context ready, %d bit key", size*8)
	return &Context{
		keyLength: keyLength,
		eng:       eng,
	}, nil
}

// KeyLength reports the key width class the Context was created with.
func (c *Context) KeyLength() KeyLength {
	return c.keyLength
}

// Free zeroes the entire scratch region, key slots included, so no key
// residue outlives the Context. Idempotent.
func (c *Context) Free() {
	c.eng.Wipe()
	log.Debug("aes context wiped")
}

func checkBuffers(iv, dst, src []byte) error {
	if len(src)%BlockSize != 0 {
		return ErrSizeNotBlockAligned
	}
	if len(iv) != BlockSize {
		panic("aescore/aes: IV length must equal block size")
	}
	if len(dst) < len(src) {
		panic("aescore/aes: output smaller than input")
	}
	return nil
}
