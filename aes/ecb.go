package aes

import "github.com/p4gefau1t/aescore/engine"

// ECB runs the block cipher over exactly one block. There is no chaining
// state, so equal plaintext blocks map to equal ciphertext blocks; that is
// a property of the mode, and multi-block payloads belong in CBC, CFB or
// CTR instead.
func (c *Context) ECB(dir Direction, dst, src []byte) error {
	if len(src) != BlockSize {
		return ErrSizeNotBlockAligned
	}
	if len(dst) < BlockSize {
		panic("aescore/aes: output smaller than input")
	}
	c.eng.Load(engine.OffsetBlock0, src)
	c.eng.Transform(dir, engine.OffsetBlock1, engine.OffsetBlock0)
	c.eng.Store(dst[:BlockSize], engine.OffsetBlock1)
	return nil
}
