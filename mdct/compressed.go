package mdct

import (
	"github.com/cocosip/go-mdct-codec/mdct/block"
	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// CompressedImage holds quantized frequency-domain coefficients for one
// encoded image, plus the codec parameters needed to reconstruct it.
//
// Each coefficient array stores NumTiles 8x8 tiles contiguously, tiles in
// row-major tile order and samples in row-major order inside a tile
// (natural order, not zig-zag).
type CompressedImage struct {
	Width  int
	Height int

	// QualityFactor and Transform record the encode-time parameters;
	// Decompress needs both to rebuild the quantization tables and pick
	// the inverse transform.
	QualityFactor float64
	Transform     transform.Method

	// NumTiles is ceil(Width/8) * ceil(Height/8).
	NumTiles int

	// Quantized coefficients, NumTiles*64 values per channel.
	YQuant  []int32
	CbQuant []int32
	CrQuant []int32

	// Raw pre-quantization coefficients, retained as a debugging aid.
	// Not needed by Decompress.
	YCoeffs  []int32
	CbCoeffs []int32
	CrCoeffs []int32
}

// Release drops all coefficient storage so it can be reclaimed early. The
// value must not be used afterwards.
func (c *CompressedImage) Release() {
	if c == nil {
		return
	}
	c.YQuant, c.CbQuant, c.CrQuant = nil, nil, nil
	c.YCoeffs, c.CbCoeffs, c.CrCoeffs = nil, nil, nil
}

// validate checks the invariants Decompress relies on.
func (c *CompressedImage) validate() error {
	if c == nil {
		return ErrNullInput
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidDimensions
	}
	if !c.Transform.Valid() {
		return ErrInvalidTransform
	}
	if c.YQuant == nil || c.CbQuant == nil || c.CrQuant == nil {
		return ErrNullInput
	}
	if c.NumTiles != block.Count(c.Width, c.Height) {
		return ErrInvalidDimensions
	}
	n := c.NumTiles * 64
	if len(c.YQuant) != n || len(c.CbQuant) != n || len(c.CrQuant) != n {
		return ErrInvalidDimensions
	}
	return nil
}
