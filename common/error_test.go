package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorBase(t *testing.T) {
	base := NewError("inner")
	err := NewError("outer").Base(base)
	require.Equal(t, "outer | inner", err.Error())

	// A nil base leaves the message alone.
	require.Equal(t, "plain", NewError("plain").Base(nil).Error())
}

func TestMust(t *testing.T) {
	Must(nil)
	require.Panics(t, func() {
		Must(NewError("boom"))
	})
}
