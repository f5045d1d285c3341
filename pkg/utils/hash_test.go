package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	require.NotEqual(t, "pw", hash)

	require.True(t, CheckPassword("pw", hash))
	require.False(t, CheckPassword("wrongpw", hash))
	require.False(t, CheckPassword("pw", "not-a-hash"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("pw")
	require.NoError(t, err)
	h2, err := HashPassword("pw")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
