package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForName(t *testing.T) {
	for _, name := range []string{None, Gzip, LZ4, Brotli, ""} {
		codec, err := ForName(name)
		assert.NoError(t, err)
		assert.NotNil(t, codec)
	}

	_, err := ForName("zstd")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	payload := []byte("line1\nline2\nline3\n")

	for _, name := range []string{None, Gzip, LZ4, Brotli} {
		t.Run(name, func(t *testing.T) {
			codec, err := ForName(name)
			assert.NoError(t, err)

			encoded, err := codec.Encode(payload)
			assert.NoError(t, err)

			decoded, err := codec.Decode(encoded)
			assert.NoError(t, err)
			assert.Equal(t, payload, decoded)
		})
	}

	// the empty snapshot of an initial edit must round trip too
	for _, name := range []string{None, Gzip, LZ4, Brotli} {
		codec, err := ForName(name)
		assert.NoError(t, err)

		encoded, err := codec.Encode([]byte(""))
		assert.NoError(t, err)

		decoded, err := codec.Decode(encoded)
		assert.NoError(t, err)
		assert.Empty(t, decoded)
	}
}
