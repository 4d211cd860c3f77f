package mdct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocosip/go-mdct-codec/codec"
	"github.com/cocosip/go-mdct-codec/mdct"
	"github.com/cocosip/go-mdct-codec/mdct/metrics"
)

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{"mdct.fast", "mdct.matrix", "mdct.approx", "mdct.identity"} {
		c, err := codec.Get(id)
		require.NoErrorf(t, err, "variant %s must self-register", id)
		assert.Equal(t, id, c.ID())
	}

	c, err := codec.Get("mdct-fast")
	require.NoError(t, err)
	assert.Equal(t, "mdct.fast", c.ID())
}

func TestCodecEncodeDecodeRGB(t *testing.T) {
	c, err := codec.Get("mdct.fast")
	require.NoError(t, err)

	img := randomRGB(32, 24, 808)
	data, err := c.Encode(codec.EncodeParams{
		PixelData:  img.Data,
		Width:      32,
		Height:     24,
		Components: 3,
		Options:    &mdct.Options{BaseOptions: codec.BaseOptions{QualityFactor: 2.0}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	result, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 32, result.Width)
	assert.Equal(t, 24, result.Height)
	assert.Equal(t, 3, result.Components)
	assert.Len(t, result.PixelData, 32*24*3)
}

func TestCodecIdentityGrayscale(t *testing.T) {
	c, err := codec.Get("mdct.identity")
	require.NoError(t, err)

	img := randomGray(16, 16, 606)
	data, err := c.Encode(codec.EncodeParams{
		PixelData:  img.Data,
		Width:      16,
		Height:     16,
		Components: 1,
	})
	require.NoError(t, err)

	result, err := c.Decode(data)
	require.NoError(t, err)
	require.Len(t, result.PixelData, 16*16*3)

	// Identity without quantization loss reproduces the gray levels exactly.
	psnr := metrics.PSNRGray(img.Data, result.PixelData)
	assert.Equal(t, 100.0, psnr)
}

func TestCodecRejectsBadComponents(t *testing.T) {
	c, err := codec.Get("mdct.fast")
	require.NoError(t, err)

	_, err = c.Encode(codec.EncodeParams{
		PixelData:  make([]byte, 64),
		Width:      8,
		Height:     8,
		Components: 4,
	})
	assert.ErrorIs(t, err, codec.ErrUnsupportedFormat)
}

func TestCodecRejectsBadQuality(t *testing.T) {
	c, err := codec.Get("mdct.fast")
	require.NoError(t, err)

	_, err = c.Encode(codec.EncodeParams{
		PixelData:  make([]byte, 8*8*3),
		Width:      8,
		Height:     8,
		Components: 3,
		Options:    &mdct.Options{BaseOptions: codec.BaseOptions{QualityFactor: 100}},
	})
	assert.ErrorIs(t, err, codec.ErrInvalidQuality)
}

func TestNewCodecInvalidMethod(t *testing.T) {
	_, err := mdct.NewCodec(99)
	assert.ErrorIs(t, err, mdct.ErrInvalidTransform)
}
