// Package metrics provides the two quality figures used to compare codec
// configurations: PSNR over reconstructed rasters, and a per-tile bitrate
// proxy over quantized coefficients.
package metrics

import (
	"math"

	"github.com/cocosip/go-mdct-codec/mdct/quant"
)

// identicalPSNR is returned when the mean squared error is effectively zero.
const identicalPSNR = 100.0

// PSNR computes the peak signal-to-noise ratio in dB between two rasters of
// identical layout, against a peak value of 255. Returns 100 dB when the
// buffers are effectively identical, and 0 when they cannot be compared.
func PSNR(orig, recon []byte) float64 {
	if len(orig) == 0 || len(orig) != len(recon) {
		return 0
	}

	mse := 0.0
	for i := range orig {
		d := float64(orig[i]) - float64(recon[i])
		mse += d * d
	}
	mse /= float64(len(orig))

	if mse < 1e-10 {
		return identicalPSNR
	}
	return 10 * math.Log10(255.0*255.0/mse)
}

// PSNRGray compares a grayscale original against an RGB reconstruction by
// averaging the reconstructed channels into a luma estimate per pixel.
func PSNRGray(orig, reconRGB []byte) float64 {
	if len(orig) == 0 || len(reconRGB) != len(orig)*3 {
		return 0
	}

	mse := 0.0
	for i := range orig {
		r := int(reconRGB[i*3])
		g := int(reconRGB[i*3+1])
		b := int(reconRGB[i*3+2])
		d := float64(orig[i]) - float64((r+g+b)/3)
		mse += d * d
	}
	mse /= float64(len(orig))

	if mse < 1e-10 {
		return identicalPSNR
	}
	return 10 * math.Log10(255.0*255.0/mse)
}

// Bitrate estimates bits per pixel from quantized coefficient channels. Each
// channel is a contiguous array of 8x8 tiles; a tile contributes
// (last_nonzero+1)*8 bits, where last_nonzero is the highest zig-zag position
// holding a non-zero coefficient. All-zero tiles contribute nothing. This is
// a monotone function of post-quantization sparsity, not an entropy-coded
// size.
func Bitrate(channels ...[]int32) float64 {
	totalBits := 0.0
	totalTiles := 0

	for _, ch := range channels {
		numTiles := len(ch) / 64
		for b := 0; b < numTiles; b++ {
			tile := ch[b*64 : b*64+64]
			lastNonzero := -1
			for i := 63; i >= 0; i-- {
				if tile[quant.ZigZag[i]] != 0 {
					lastNonzero = i
					break
				}
			}
			if lastNonzero >= 0 {
				totalBits += float64(lastNonzero+1) * 8
			}
			totalTiles++
		}
	}

	totalPixels := totalTiles * 64
	if totalPixels == 0 {
		return 0
	}
	return totalBits / float64(totalPixels)
}
