// Package mdct is a portable, lossy still-image codec inspired by the JPEG
// baseline pipeline. It converts RGB or grayscale rasters to quantized 8x8
// frequency-domain coefficients and back, parameterized over four
// interchangeable block transforms so that quality, arithmetic cost and
// multiplier count can be compared on identical inputs. All arithmetic is
// fixed-point; there is no entropy-coding stage.
package mdct

import (
	"github.com/cocosip/go-mdct-codec/mdct/block"
	"github.com/cocosip/go-mdct-codec/mdct/colorspace"
	"github.com/cocosip/go-mdct-codec/mdct/quant"
	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// Compress encodes an image into quantized frequency-domain coefficients.
// The input image stays caller-owned; the returned CompressedImage owns its
// coefficient arrays until Release is called.
func Compress(img *Image, params *Parameters, opts ...Option) (*CompressedImage, error) {
	if img == nil || params == nil || len(img.Data) == 0 {
		return nil, ErrNullInput
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(img.Data) < img.dataLen() {
		return nil, ErrInvalidDimensions
	}
	if !params.Transform.Valid() {
		return nil, ErrInvalidTransform
	}

	h := newHooks(opts)

	// Scaled quantization tables; the approximate transform additionally
	// needs its row norms folded in before the reciprocal tables exist.
	quantLuma := quant.ScaleTable(quant.Q50Luma, params.QualityFactor)
	quantChroma := quant.ScaleTable(quant.Q50Chroma, params.QualityFactor)
	if params.Transform == transform.Approx {
		quantLuma = quant.ApplyApproxNormCorrection(quantLuma)
		quantChroma = quant.ApplyApproxNormCorrection(quantChroma)
	}

	applyQuant := params.Transform != transform.Identity && !params.SkipQuantization
	var recipLuma, recipChroma [64]uint32
	if applyQuant {
		recipLuma = quant.ReciprocalTable(quantLuma)
		recipChroma = quant.ReciprocalTable(quantChroma)
	}

	// Split into signed planes. Grayscale input keeps zero chroma.
	totalPixels := img.Width * img.Height
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

	if img.Colorspace == ColorspaceRGB {
		colorspace.RGBToYCbCrBatch(img.Data, yPlane, cbPlane, crPlane)
	} else {
		for i := 0; i < totalPixels; i++ {
			yPlane[i] = int32(img.Data[i]) - 128
			cbPlane[i] = 0
			crPlane[i] = 0
		}
	}

	numTiles := block.Count(img.Width, img.Height)
	tileLen := numTiles * 64

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

	block.Extract(yPlane, img.Width, img.Height, yTiles)
	block.Extract(cbPlane, img.Width, img.Height, cbTiles)
	block.Extract(crPlane, img.Width, img.Height, crTiles)

	comp := &CompressedImage{
		Width:         img.Width,
		Height:        img.Height,
		QualityFactor: params.QualityFactor,
		Transform:     params.Transform,
		NumTiles:      numTiles,
	}
	for _, dst := range []*[]int32{
		&comp.YCoeffs, &comp.CbCoeffs, &comp.CrCoeffs,
		&comp.YQuant, &comp.CbQuant, &comp.CrQuant,
	} {
		buf, err := h.allocInt32(tileLen)
		if err != nil {
			comp.Release()
			return nil, err
		}
		*dst = buf
	}

	forward := transform.Forward(params.Transform)

	for b := 0; b < numTiles; b++ {
		o := b * 64
		forward(yTiles[o:o+64], comp.YCoeffs[o:o+64])
		forward(cbTiles[o:o+64], comp.CbCoeffs[o:o+64])
		forward(crTiles[o:o+64], comp.CrCoeffs[o:o+64])

		if applyQuant {
			quant.QuantizeFast(comp.YCoeffs[o:o+64], quantLuma, recipLuma, comp.YQuant[o:o+64])
			quant.QuantizeFast(comp.CbCoeffs[o:o+64], quantChroma, recipChroma, comp.CbQuant[o:o+64])
			quant.QuantizeFast(comp.CrCoeffs[o:o+64], quantChroma, recipChroma, comp.CrQuant[o:o+64])
		} else {
			copy(comp.YQuant[o:o+64], comp.YCoeffs[o:o+64])
			copy(comp.CbQuant[o:o+64], comp.CbCoeffs[o:o+64])
			copy(comp.CrQuant[o:o+64], comp.CrCoeffs[o:o+64])
		}

		h.tick(b)
	}

	return comp, nil
}
