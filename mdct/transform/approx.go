package transform

// Cintra-Bayer 2011 multiplierless approximation. The forward matrix T has
// entries in {-1, 0, 1}, so the forward pass is additions and subtractions
// only. Its rows have squared norms (8, 6, 4, 6, 8, 6, 4, 6); that
// non-orthonormality is absorbed by the quantizer's norm correction.

func approxForward1D(src []int32, stride int, dst []int32) {
	x0 := src[0]
	x1 := src[stride]
	x2 := src[2*stride]
	x3 := src[3*stride]
	x4 := src[4*stride]
	x5 := src[5*stride]
	x6 := src[6*stride]
	x7 := src[7*stride]

	dst[0] = x0 + x1 + x2 + x3 + x4 + x5 + x6 + x7
	dst[1] = x0 + x1 + x2 - x5 - x6 - x7
	dst[2] = x0 - x3 - x4 + x7
	dst[3] = x0 - x2 - x3 + x4 + x5 - x7
	dst[4] = x0 - x1 - x2 + x3 + x4 - x5 - x6 + x7
	dst[5] = x0 - x1 + x3 - x4 + x6 - x7
	dst[6] = -x1 + x2 + x5 - x6
	dst[7] = -x1 + x2 - x3 + x4 - x5 + x6
}

// approxInverse1D applies T^T with per-coefficient prescaling.
//
// The exact inverse is T^T * diag(1/||row_k||^2). With the common
// denominator 24 (LCM of 8, 6, 4) the prescale factors become
// 24/8=3, 24/6=4, 24/4=6, so a single division by 24 per output suffices.
func approxInverse1D(src []int32, dst []int32, stride int) {
	a0 := src[0] * 3
	a1 := src[1] * 4
	a2 := src[2] * 6
	a3 := src[3] * 4
	a4 := src[4] * 3
	a5 := src[5] * 4
	a6 := src[6] * 6
	a7 := src[7] * 4

	dst[0] = (a0 + a1 + a2 + a3 + a4 + a5 + 12) / 24
	dst[stride] = (a0 + a1 - a4 - a5 - a6 - a7 + 12) / 24
	dst[2*stride] = (a0 + a1 - a3 - a4 + a6 + a7 + 12) / 24
	dst[3*stride] = (a0 - a2 - a3 + a4 + a5 - a7 + 12) / 24
	dst[4*stride] = (a0 - a2 + a3 + a4 - a5 + a7 + 12) / 24
	dst[5*stride] = (a0 - a1 + a3 - a4 + a6 - a7 + 12) / 24
	dst[6*stride] = (a0 - a1 - a4 + a5 - a6 + a7 + 12) / 24
	dst[7*stride] = (a0 - a1 + a2 - a3 + a4 - a5 + 12) / 24
}

func forwardApprox(in, out []int32) {
	var tmp [64]int32

	for y := 0; y < 8; y++ {
		approxForward1D(in[y*8:], 1, tmp[y*8:])
	}
	for x := 0; x < 8; x++ {
		approxForward1D(tmp[x:], 8, out[x*8:])
	}
	transpose(out)
}

func inverseApprox(in, out []int32) {
	var tmp [64]int32
	var col [8]int32

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			col[y] = in[y*8+x]
		}
		approxInverse1D(col[:], tmp[x:], 8)
	}
	for y := 0; y < 8; y++ {
		approxInverse1D(tmp[y*8:], out[y*8:], 1)
	}
}
