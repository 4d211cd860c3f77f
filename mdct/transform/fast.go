package transform

// Loeffler fast DCT: 11 multiplications per 1-D transform, exact DCT-II with
// orthonormal scaling. The inverse keeps all intermediates at full scale and
// divides once per output sample; dividing at every butterfly stage would
// accumulate truncation visible as single-LSB pixel deviations.

// fastForward1D transforms 8 samples read from src at the given stride into
// 8 contiguous coefficients.
func fastForward1D(src []int32, stride int, dst []int32) {
	s07 := int64(src[0]) + int64(src[7*stride])
	d07 := int64(src[0]) - int64(src[7*stride])
	s16 := int64(src[stride]) + int64(src[6*stride])
	d16 := int64(src[stride]) - int64(src[6*stride])
	s25 := int64(src[2*stride]) + int64(src[5*stride])
	d25 := int64(src[2*stride]) - int64(src[5*stride])
	s34 := int64(src[3*stride]) + int64(src[4*stride])
	d34 := int64(src[3*stride]) - int64(src[4*stride])

	e0 := s07 + s34
	e3 := s07 - s34
	e1 := s16 + s25
	e2 := s16 - s25
	o0 := d07 + d34
	o1 := d16 + d25
	o2 := d16 - d25
	o3 := d07 - d34

	dst[0] = int32(divRound((e0+e1)*Scale, sqrt2*2))
	dst[4] = int32(divRound((e0-e1)*Scale, sqrt2*2))
	dst[2] = int32(divRound(c6*e2+s6*e3, Scale*2))
	dst[6] = int32(divRound(-s6*e2+c6*e3, Scale*2))
	dst[1] = int32(divRound(c3*o0+c1*o1+s1*o2+s3*o3, sqrt2*2))
	dst[3] = int32(divRound(s1*o0-c3*o1+s3*o2+c1*o3, sqrt2*2))
	dst[5] = int32(divRound(c1*o0-s3*o1-c3*o2-s1*o3, sqrt2*2))
	dst[7] = int32(divRound(-s3*o0+s1*o1-c1*o2+c3*o3, sqrt2*2))
}

// fastInverse1D transforms 8 contiguous coefficients into 8 samples written
// to dst at the given stride, using the deferred-division strategy.
//
// Even path: all intermediates stay at scale 2^20 with no division.
// Odd path: one rounded division normalizes it onto the even path's scale.
// Final butterfly: one rounded division by 8*Scale per output sample.
func fastInverse1D(src []int32, dst []int32, stride int) {
	z0 := int64(src[0]) * 2
	z1 := int64(src[1]) * 2
	z2 := int64(src[2]) * 2
	z3 := int64(src[3]) * 2
	z4 := int64(src[4]) * 2
	z5 := int64(src[5]) * 2
	z6 := int64(src[6]) * 2
	z7 := int64(src[7]) * 2

	// Even part, no intermediate divisions.
	t0 := z0 * sqrt2
	t4 := z4 * sqrt2
	e0 := t0 + t4 // 2*e0 at scale 2^20
	e1 := t0 - t4
	e2 := 2 * (c6*z2 - s6*z6)
	e3 := 2 * (s6*z2 + c6*z6)
	s07 := e0 + e3 // 4*s07 at scale 2^20
	s34 := e0 - e3
	s16 := e1 + e2
	s25 := e1 - e2

	// Odd part, one rounding division to match the even-part scale.
	n0 := c3*z1 + s1*z3 + c1*z5 - s3*z7
	n1 := c1*z1 - c3*z3 - s3*z5 + s1*z7
	n2 := s1*z1 + s3*z3 - c3*z5 - c1*z7
	n3 := s3*z1 + c1*z3 - s1*z5 + c3*z7

	d07 := divRound(2*Scale*(n0+n3), sqrt2)
	d34 := divRound(2*Scale*(n0-n3), sqrt2)
	d16 := divRound(2*Scale*(n1+n2), sqrt2)
	d25 := divRound(2*Scale*(n1-n2), sqrt2)

	// Final butterfly, single rounding division per output.
	const finalDiv = 8 * Scale
	dst[0] = int32(divRound(s07+d07, finalDiv))
	dst[7*stride] = int32(divRound(s07-d07, finalDiv))
	dst[stride] = int32(divRound(s16+d16, finalDiv))
	dst[6*stride] = int32(divRound(s16-d16, finalDiv))
	dst[2*stride] = int32(divRound(s25+d25, finalDiv))
	dst[5*stride] = int32(divRound(s25-d25, finalDiv))
	dst[3*stride] = int32(divRound(s34+d34, finalDiv))
	dst[4*stride] = int32(divRound(s34-d34, finalDiv))
}

// forwardFast applies the 2-D Loeffler DCT: rows, then columns, then a
// transpose because the column results are stored row-wise.
func forwardFast(in, out []int32) {
	var tmp [64]int32

	for y := 0; y < 8; y++ {
		fastForward1D(in[y*8:], 1, tmp[y*8:])
	}
	for x := 0; x < 8; x++ {
		fastForward1D(tmp[x:], 8, out[x*8:])
	}
	transpose(out)
}

// inverseFast applies the 2-D inverse: columns first, then rows.
func inverseFast(in, out []int32) {
	var tmp [64]int32
	var col [8]int32

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			col[y] = in[y*8+x]
		}
		fastInverse1D(col[:], tmp[x:], 8)
	}
	for y := 0; y < 8; y++ {
		fastInverse1D(tmp[y*8:], out[y*8:], 1)
	}
}

func transpose(tile []int32) {
	for y := 0; y < 8; y++ {
		for x := y + 1; x < 8; x++ {
			tile[y*8+x], tile[x*8+y] = tile[x*8+y], tile[y*8+x]
		}
	}
}
