package aes

import "github.com/p4gefau1t/aescore/engine"

// CFB encrypts or decrypts a whole number of blocks in cipher feedback
// mode. Both directions drive the accelerator in the encrypt direction:
// the mode XORs data with encrypted feedback, so the inverse schedule is
// never needed. The ciphertext block always becomes the next feedback
// value, whichever direction is running — when encrypting that is the
// output block, when decrypting it is the source block.
func (c *Context) CFB(dir Direction, iv, dst, src []byte) error {
	if err := checkBuffers(iv, dst, src); err != nil {
		return err
	}

	encodeOffset := engine.OffsetBlock1
	if dir == Decrypt {
		encodeOffset = engine.OffsetBlock0
	}
	c.eng.Load(encodeOffset, iv)

	for len(src) > 0 {
		c.eng.Transform(Encrypt, engine.OffsetBlock1, encodeOffset)

		c.eng.Load(engine.OffsetBlock0, src[:BlockSize])
		c.eng.Xor16(engine.OffsetBlock1, engine.OffsetBlock0, engine.OffsetBlock1)

		c.eng.Store(dst[:BlockSize], engine.OffsetBlock1)

		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}
	return nil
}
