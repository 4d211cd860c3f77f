package transform

// Fixed-point arithmetic constants shared by the exact transforms.
// All trigonometric values are scaled by 2^20.
const (
	// Scale is the base fixed-point scale (2^20).
	Scale = 1048576

	c1 = 1028428 // cos(pi/16)   * 2^20
	s1 = 204567  // sin(pi/16)   * 2^20
	c3 = 871859  // cos(3*pi/16) * 2^20
	s3 = 582558  // sin(3*pi/16) * 2^20
	c6 = 401273  // cos(6*pi/16) * 2^20
	s6 = 968758  // sin(6*pi/16) * 2^20

	sqrt2 = 1482910 // sqrt(2) * 2^20
)

// divRound divides num by a positive den, rounding to nearest with ties
// away from zero. Used at every normalization point in the exact transforms;
// callers must keep the numerator in an int64 accumulator.
func divRound(num, den int64) int64 {
	if num >= 0 {
		return (num + den/2) / den
	}
	return (num - den/2) / den
}
