package filecrypt

import (
	"github.com/p4gefau1t/aescore/aes"
	"github.com/p4gefau1t/aescore/common"
)

// pad appends PKCS#7 padding. Always at least one byte, so the original
// length is recoverable even when the payload is block aligned.
func pad(p []byte) []byte {
	n := aes.BlockSize - len(p)%aes.BlockSize
	padded := make([]byte, len(p)+n)
	copy(padded, p)
	for i := len(p); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpad(p []byte) ([]byte, error) {
	if len(p) == 0 || len(p)%aes.BlockSize != 0 {
		return nil, common.NewError("invalid padded length")
	}
	n := int(p[len(p)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, common.NewError("invalid padding")
	}
	for _, b := range p[len(p)-n:] {
		if b != byte(n) {
			return nil, common.NewError("invalid padding")
		}
	}
	return p[:len(p)-n], nil
}
