package idutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	a := NextID()
	b := NextID()
	require.NotZero(t, a)
	require.Greater(t, b, a)
}
