package aes

import (
	"encoding/binary"

	"github.com/p4gefau1t/aescore/engine"
)

// ctrCounterOffset is where the big-endian counter starts within the
// 128-bit nonce+counter value.
const ctrCounterOffset = 8

// CTR encrypts or decrypts src in counter mode. The operation is its own
// inverse, so there is no direction parameter and the inverse schedule is
// never used.
//
// iv carries the 128-bit nonce+counter. Its low 64 bits are a big-endian
// counter advanced exactly once per keystream block generated and written
// back on return; the high 64 bits are never modified. streamBlock and
// srcOffset carry the partially consumed keystream between calls: pass
// *srcOffset exactly as returned by the previous call to resume
// mid-stream, or 0 to start a fresh stream. Unlike the other modes CTR
// accepts any source size; a trailing partial block is consumed here and
// the leftover byte count is reported through srcOffset.
func (c *Context) CTR(iv, streamBlock []byte, srcOffset *int, dst, src []byte) error {
	if len(iv) != BlockSize || len(streamBlock) != BlockSize {
		panic("aescore/aes: IV and stream block must be one block long")
	}
	if len(dst) < len(src) {
		panic("aescore/aes: output smaller than input")
	}

	offset := *srcOffset % BlockSize

	// Resume from the keystream left over by the previous call.
	if offset > 0 && len(src) > 0 {
		n := xorTail(dst, src, streamBlock[offset:])
		offset = (offset + n) % BlockSize
		src = src[n:]
		dst = dst[n:]
	}

	var nonceCounter [BlockSize]byte
	copy(nonceCounter[:], iv)
	counter := binary.BigEndian.Uint64(nonceCounter[ctrCounterOffset:])

	for len(src) > 0 {
		c.eng.Load(engine.OffsetIV, nonceCounter[:])
		c.eng.Transform(Encrypt, engine.OffsetBlock2, engine.OffsetIV)
		c.eng.Store(streamBlock, engine.OffsetBlock2)

		// The carry stays confined to the low 64 bits; the nonce half is
		// left alone even on wraparound.
		counter++
		binary.BigEndian.PutUint64(nonceCounter[ctrCounterOffset:], counter)

		if len(src) < BlockSize {
			offset = xorTail(dst, src, streamBlock)
			break
		}

		c.eng.Load(engine.OffsetBlock0, src[:BlockSize])
		c.eng.Xor16(engine.OffsetBlock1, engine.OffsetBlock0, engine.OffsetBlock2)
		c.eng.Store(dst[:BlockSize], engine.OffsetBlock1)

		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}

	copy(iv, nonceCounter[:])
	*srcOffset = offset
	return nil
}

// xorTail XORs src against the head of keystream into dst and reports how
// many bytes were consumed.
func xorTail(dst, src, keystream []byte) int {
	n := len(src)
	if n > len(keystream) {
		n = len(keystream)
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] ^ keystream[i]
	}
	return n
}
