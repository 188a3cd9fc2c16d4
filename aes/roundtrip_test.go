package aes_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/p4gefau1t/aescore/aes"
	"github.com/p4gefau1t/aescore/common"
)

func TestModeRoundTrips(t *testing.T) {
	keys := map[string]int{"aes128": 16, "aes192": 24, "aes256": 32}

	for name, size := range keys {
		name := name
		size := size
		Convey("round trips with "+name, t, func() {
			key := make([]byte, size)
			common.CryptoRandRead(key)
			ctx := newTestContext(t, key)
			defer ctx.Free()

			payload := make([]byte, 4*aes.BlockSize)
			iv := make([]byte, aes.BlockSize)
			common.CryptoRandRead(payload)
			common.CryptoRandRead(iv)

			Convey("ECB", func() {
				ciphertext := make([]byte, aes.BlockSize)
				decrypted := make([]byte, aes.BlockSize)
				So(ctx.ECB(aes.Encrypt, ciphertext, payload[:aes.BlockSize]), ShouldBeNil)
				So(ctx.ECB(aes.Decrypt, decrypted, ciphertext), ShouldBeNil)
				So(decrypted, ShouldResemble, payload[:aes.BlockSize])
			})

			Convey("CBC", func() {
				ciphertext := make([]byte, len(payload))
				decrypted := make([]byte, len(payload))
				So(ctx.CBC(aes.Encrypt, iv, ciphertext, payload), ShouldBeNil)
				So(ctx.CBC(aes.Decrypt, iv, decrypted, ciphertext), ShouldBeNil)
				So(decrypted, ShouldResemble, payload)
			})

			Convey("CBC in place", func() {
				buf := make([]byte, len(payload))
				copy(buf, payload)
				So(ctx.CBC(aes.Encrypt, iv, buf, buf), ShouldBeNil)
				So(buf, ShouldNotResemble, payload)
				So(ctx.CBC(aes.Decrypt, iv, buf, buf), ShouldBeNil)
				So(buf, ShouldResemble, payload)
			})

			Convey("CFB", func() {
				ciphertext := make([]byte, len(payload))
				decrypted := make([]byte, len(payload))
				So(ctx.CFB(aes.Encrypt, iv, ciphertext, payload), ShouldBeNil)
				So(ctx.CFB(aes.Decrypt, iv, decrypted, ciphertext), ShouldBeNil)
				So(decrypted, ShouldResemble, payload)
			})

			Convey("CTR", func() {
				ciphertext := make([]byte, len(payload))
				decrypted := make([]byte, len(payload))
				streamBlock := make([]byte, aes.BlockSize)
				encIV := make([]byte, aes.BlockSize)
				decIV := make([]byte, aes.BlockSize)
				copy(encIV, iv)
				copy(decIV, iv)
				offset := 0
				So(ctx.CTR(encIV, streamBlock, &offset, ciphertext, payload), ShouldBeNil)
				offset = 0
				So(ctx.CTR(decIV, streamBlock, &offset, decrypted, ciphertext), ShouldBeNil)
				So(decrypted, ShouldResemble, payload)
			})
		})
	}
}
