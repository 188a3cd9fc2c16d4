package aes

import "github.com/p4gefau1t/aescore/engine"

// CBC encrypts or decrypts a whole number of blocks in cipher block
// chaining mode. The caller's iv buffer is copied into the IV slot and
// never written back; the rolling chain value lives in scratch. Blocks are
// processed strictly in order: each block's transform input depends on the
// previous block's result.
func (c *Context) CBC(dir Direction, iv, dst, src []byte) error {
	if err := checkBuffers(iv, dst, src); err != nil {
		return err
	}

	c.eng.Load(engine.OffsetIV, iv)

	if dir == Decrypt {
		for len(src) > 0 {
			c.eng.Load(engine.OffsetBlock0, src[:BlockSize])

			c.eng.Transform(Decrypt, engine.OffsetBlock1, engine.OffsetBlock0)
			c.eng.Xor16(engine.OffsetBlock1, engine.OffsetIV, engine.OffsetBlock1)

			// The ciphertext block seeds the next chain value, so it is
			// captured after the XOR above, not before.
			c.eng.Copy(engine.OffsetIV, engine.OffsetBlock0)

			c.eng.Store(dst[:BlockSize], engine.OffsetBlock1)

			src = src[BlockSize:]
			dst = dst[BlockSize:]
		}
		return nil
	}

	for len(src) > 0 {
		c.eng.Load(engine.OffsetBlock0, src[:BlockSize])

		c.eng.Xor16(engine.OffsetIV, engine.OffsetBlock0, engine.OffsetIV)
		c.eng.Transform(Encrypt, engine.OffsetBlock1, engine.OffsetIV)

		c.eng.Copy(engine.OffsetIV, engine.OffsetBlock1)

		c.eng.Store(dst[:BlockSize], engine.OffsetBlock1)

		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}
	return nil
}
