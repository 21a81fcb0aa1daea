package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	require.Equal(t, 3, Abs(-3))
	require.Equal(t, 3, Abs(3))
	require.Equal(t, 0.5, Abs(-0.5))
}

func TestSign(t *testing.T) {
	require.Equal(t, -1, Sign(-7))
	require.Equal(t, 0, Sign(0))
	require.Equal(t, 1, Sign(2))
}

func TestClamp(t *testing.T) {
	t.Run("inside range", func(t *testing.T) {
		require.Equal(t, 5, Clamp(5, 0, 10))
	})
	t.Run("below range", func(t *testing.T) {
		require.Equal(t, 0, Clamp(-4, 0, 10))
	})
	t.Run("above range", func(t *testing.T) {
		require.Equal(t, 100.0, Clamp(120.0, 0, 100), "Should clamp to the upper bound")
	})
}
