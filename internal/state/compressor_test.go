package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor_RoundTrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(c.Close)

	original := bytes.Repeat([]byte(`{"wishlist":{"Camera":{"funded":60}}}`), 100)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original))

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompressor_DecompressGarbageFails(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(c.Close)

	_, err = c.Decompress([]byte("definitely not a zstd frame"))
	assert.Error(t, err)
}
