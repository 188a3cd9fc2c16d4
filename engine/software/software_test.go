package software

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p4gefau1t/aescore/common"
	"github.com/p4gefau1t/aescore/engine"
)

func fromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	common.Must(err)
	return b
}

func prepare(t *testing.T, key []byte, keyLength engine.KeyLength) *Engine {
	e := New()
	e.ConfigureKey(keyLength)
	e.Load(engine.OffsetKey, key)
	e.InverseKey(engine.OffsetKey, engine.OffsetInvKey)
	return e
}

func TestTransformKnownBlock(t *testing.T) {
	// First block of the SP 800-38A ECB-AES128 vector.
	e := prepare(t, fromHex("2b7e151628aed2a6abf7158809cf4f3c"), engine.Key128)

	e.Load(engine.OffsetBlock0, fromHex("6bc1bee22e409f96e93d7e117393172a"))
	e.Transform(engine.Encrypt, engine.OffsetBlock1, engine.OffsetBlock0)

	got := make([]byte, engine.BlockSize)
	e.Store(got, engine.OffsetBlock1)
	require.Equal(t, fromHex("3ad77bb40d7a3660a89ecaf32466ef97"), got)

	e.Transform(engine.Decrypt, engine.OffsetBlock2, engine.OffsetBlock1)
	e.Store(got, engine.OffsetBlock2)
	require.Equal(t, fromHex("6bc1bee22e409f96e93d7e117393172a"), got)
}

func TestXor16(t *testing.T) {
	e := New()
	e.Load(engine.OffsetBlock0, bytes.Repeat([]byte{0x0F}, engine.BlockSize))
	e.Load(engine.OffsetBlock1, bytes.Repeat([]byte{0xF0}, engine.BlockSize))
	e.Xor16(engine.OffsetBlock2, engine.OffsetBlock0, engine.OffsetBlock1)

	got := make([]byte, engine.BlockSize)
	e.Store(got, engine.OffsetBlock2)
	require.Equal(t, bytes.Repeat([]byte{0xFF}, engine.BlockSize), got)

	// Destination may alias a source.
	e.Xor16(engine.OffsetBlock0, engine.OffsetBlock0, engine.OffsetBlock2)
	e.Store(got, engine.OffsetBlock0)
	require.Equal(t, bytes.Repeat([]byte{0xF0}, engine.BlockSize), got)
}

func TestCopy(t *testing.T) {
	e := New()
	e.Load(engine.OffsetBlock0, fromHex("000102030405060708090a0b0c0d0e0f"))
	e.Copy(engine.OffsetIV, engine.OffsetBlock0)

	got := make([]byte, engine.BlockSize)
	e.Store(got, engine.OffsetIV)
	require.Equal(t, fromHex("000102030405060708090a0b0c0d0e0f"), got)
}

func TestInverseKeyMirrorsKeySlot(t *testing.T) {
	key := fromHex("8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b")
	e := prepare(t, key, engine.Key192)

	slot := make([]byte, len(key))
	e.Store(slot, engine.OffsetInvKey)
	require.Equal(t, key, slot)
}

func TestWipe(t *testing.T) {
	e := prepare(t, fromHex("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"), engine.Key256)
	e.Load(engine.OffsetBlock0, bytes.Repeat([]byte{0xAB}, engine.BlockSize))
	e.Transform(engine.Encrypt, engine.OffsetBlock1, engine.OffsetBlock0)

	e.Wipe()
	require.Equal(t, [engine.ScratchSize]byte{}, e.scratch)
	require.Nil(t, e.block)

	// Wiping twice is harmless.
	e.Wipe()
	require.Equal(t, [engine.ScratchSize]byte{}, e.scratch)
}

func TestRegisteredCreator(t *testing.T) {
	eng, err := engine.NewEngine(Name)
	require.NoError(t, err)
	require.IsType(t, &Engine{}, eng)

	_, err = engine.NewEngine("no-such-engine")
	require.Error(t, err)
}
