package mdct

import (
	"github.com/cocosip/go-mdct-codec/mdct/block"
	"github.com/cocosip/go-mdct-codec/mdct/colorspace"
	"github.com/cocosip/go-mdct-codec/mdct/quant"
	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// Decompress reconstructs an RGB image from quantized coefficients. The
// output is always RGB regardless of the original colorspace.
func Decompress(comp *CompressedImage, opts ...Option) (*Image, error) {
	if err := comp.validate(); err != nil {
		return nil, err
	}

	h := newHooks(opts)

	// Rebuild the tables exactly as the encoder did. No reciprocal tables:
	// dequantization is a plain multiply.
	quantLuma := quant.ScaleTable(quant.Q50Luma, comp.QualityFactor)
	quantChroma := quant.ScaleTable(quant.Q50Chroma, comp.QualityFactor)
	if comp.Transform == transform.Approx {
		quantLuma = quant.ApplyApproxNormCorrection(quantLuma)
		quantChroma = quant.ApplyApproxNormCorrection(quantChroma)
	}

	tileLen := comp.NumTiles * 64
	yTiles, err := h.allocInt32(tileLen)
	if err != nil {
		return nil, err
	}
	cbTiles, err := h.allocInt32(tileLen)
	if err != nil {
		return nil, err
	}
	crTiles, err := h.allocInt32(tileLen)
	if err != nil {
		return nil, err
	}

	if comp.Transform == transform.Identity {
		copy(yTiles, comp.YQuant)
		copy(cbTiles, comp.CbQuant)
		copy(crTiles, comp.CrQuant)
	} else {
		inverse := transform.Inverse(comp.Transform)
		var yDCT, cbDCT, crDCT [64]int32

		for b := 0; b < comp.NumTiles; b++ {
			o := b * 64
			quant.Dequantize(comp.YQuant[o:o+64], quantLuma, yDCT[:])
			quant.Dequantize(comp.CbQuant[o:o+64], quantChroma, cbDCT[:])
			quant.Dequantize(comp.CrQuant[o:o+64], quantChroma, crDCT[:])

			inverse(yDCT[:], yTiles[o:o+64])
			inverse(cbDCT[:], cbTiles[o:o+64])
			inverse(crDCT[:], crTiles[o:o+64])

			h.tick(b)
		}
	}

	totalPixels := comp.Width * comp.Height
	yPlane, err := h.allocInt32(totalPixels)
	if err != nil {
		return nil, err
	}
	cbPlane, err := h.allocInt32(totalPixels)
	if err != nil {
		return nil, err
	}
	crPlane, err := h.allocInt32(totalPixels)
	if err != nil {
		return nil, err
	}

	block.Reconstruct(yTiles, comp.Width, comp.Height, yPlane)
	block.Reconstruct(cbTiles, comp.Width, comp.Height, cbPlane)
	block.Reconstruct(crTiles, comp.Width, comp.Height, crPlane)

	img := NewRGBImage(comp.Width, comp.Height)
	colorspace.YCbCrToRGBBatch(yPlane, cbPlane, crPlane, img.Data)

	return img, nil
}
