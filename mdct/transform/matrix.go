package transform

// Reference DCT-II by direct cosine-matrix summation (64 multiplications per
// 1-D transform). Exists as the correctness reference for the fast path: both
// must produce identical quantized coefficients for every input.

// cosTable[k][n] = cos(pi*k*(2n+1)/16) * 2^20.
var cosTable = [8][8]int64{
	{1048576, 1048576, 1048576, 1048576, 1048576, 1048576, 1048576, 1048576},
	{1028428, 871859, 582558, 204567, -204567, -582558, -871859, -1028428},
	{968758, 401273, -401273, -968758, -968758, -401273, 401273, 968758},
	{871859, -204567, -1028428, -582558, 582558, 1028428, 204567, -871859},
	{741455, -741455, -741455, 741455, 741455, -741455, -741455, 741455},
	{582558, -1028428, 204567, 871859, -871859, -204567, 1028428, -582558},
	{401273, -968758, 968758, -401273, -401273, 968758, -968758, 401273},
	{204567, -582558, 871859, -1028428, 1028428, -871859, 582558, -204567},
}

// Per-row normalization factors: 1/sqrt(8)*2^20 for DC, sqrt(2/8)*2^20 (2^19
// exactly) for the rest.
var norm = [8]int64{370728, 524288, 524288, 524288, 524288, 524288, 524288, 524288}

const scaleSq = int64(Scale) * Scale

func matrixForward1D(src []int32, stride int, dst []int32) {
	for k := 0; k < 8; k++ {
		c := &cosTable[k]
		sum := int64(src[0])*c[0] +
			int64(src[stride])*c[1] +
			int64(src[2*stride])*c[2] +
			int64(src[3*stride])*c[3] +
			int64(src[4*stride])*c[4] +
			int64(src[5*stride])*c[5] +
			int64(src[6*stride])*c[6] +
			int64(src[7*stride])*c[7]
		dst[k] = int32(divRound(sum*norm[k], scaleSq))
	}
}

func matrixInverse1D(src []int32, dst []int32, stride int) {
	for n := 0; n < 8; n++ {
		sum := int64(src[0]) * norm[0] * cosTable[0][n]
		for k := 1; k < 8; k++ {
			sum += int64(src[k]) * norm[k] * cosTable[k][n]
		}
		dst[n*stride] = int32(divRound(sum, scaleSq))
	}
}

func forwardMatrix(in, out []int32) {
	var tmp [64]int32

	for y := 0; y < 8; y++ {
		matrixForward1D(in[y*8:], 1, tmp[y*8:])
	}
	for x := 0; x < 8; x++ {
		matrixForward1D(tmp[x:], 8, out[x*8:])
	}
	transpose(out)
}

func inverseMatrix(in, out []int32) {
	var tmp [64]int32
	var col [8]int32

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			col[y] = in[y*8+x]
		}
		matrixInverse1D(col[:], tmp[x:], 8)
	}
	for y := 0; y < 8; y++ {
		matrixInverse1D(tmp[y*8:], out[y*8:], 1)
	}
}
