// Package software satisfies the accelerator bridge contract in pure
// software, for hosts without the crypto block and for tests.
package software

import (
	stdaes "crypto/aes"
	"crypto/cipher"

	log "github.com/sirupsen/logrus"

	"github.com/p4gefau1t/aescore/common"
	"github.com/p4gefau1t/aescore/engine"
)

const Name = "software"

// Engine keeps the scratch region as a flat byte array and runs the block
// transform with crypto/aes. The expanded schedules live inside the
// cipher.Block value; the inverse-key slot mirrors the raw key so the slot
// layout and wipe semantics of the hardware region still hold.
type Engine struct {
	scratch   [engine.ScratchSize]byte
	keyLength engine.KeyLength
	block     cipher.Block
}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) ConfigureKey(keyLength engine.KeyLength) {
	e.keyLength = keyLength
}

func (e *Engine) InverseKey(keyOffset, invOffset int) {
	key := e.scratch[keyOffset : keyOffset+e.keyLength.Size()]
	block, err := stdaes.NewCipher(key)
	if err != nil {
		// Key widths are validated before key material reaches the slot.
		panic(common.NewError("software engine key schedule").Base(err))
	}
	e.block = block
	copy(e.scratch[invOffset:invOffset+len(key)], key)
}

func (e *Engine) Transform(dir engine.Direction, dstOffset, srcOffset int) {
	if e.block == nil {
		panic(common.NewError("software engine transform before key setup"))
	}
	dst := e.scratch[dstOffset : dstOffset+engine.BlockSize]
	src := e.scratch[srcOffset : srcOffset+engine.BlockSize]
	if dir == engine.Decrypt {
		e.block.Decrypt(dst, src)
		return
	}
	e.block.Encrypt(dst, src)
}

func (e *Engine) Xor16(dstOffset, aOffset, bOffset int) {
	for i := 0; i < engine.BlockSize; i++ {
		e.scratch[dstOffset+i] = e.scratch[aOffset+i] ^ e.scratch[bOffset+i]
	}
}

func (e *Engine) Load(offset int, src []byte) {
	copy(e.scratch[offset:], src)
}

func (e *Engine) Store(dst []byte, offset int) {
	copy(dst, e.scratch[offset:offset+len(dst)])
}

func (e *Engine) Copy(dstOffset, srcOffset int) {
	copy(e.scratch[dstOffset:dstOffset+engine.BlockSize],
		e.scratch[srcOffset:srcOffset+engine.BlockSize])
}

func (e *Engine) Wipe() {
	for i := range e.scratch {
		e.scratch[i] = 0
	}
	e.block = nil
}

func init() {
	engine.RegisterEngineCreator(Name, func() (engine.Engine, error) {
		log.Debug("creating software aes engine")
		return New(), nil
	})
}
