package colorspace

import (
	"testing"
)

// Gray pixels convert exactly: Y = v - 128, zero chroma, and back.
func TestGrayExact(t *testing.T) {
	for v := 0; v < 256; v++ {
		y, cb, cr := RGBToYCbCr(uint8(v), uint8(v), uint8(v))
		if y != int32(v)-128 {
			t.Fatalf("gray %d: Y = %d, want %d", v, y, v-128)
		}
		if cb != 0 || cr != 0 {
			t.Fatalf("gray %d: chroma (%d, %d), want (0, 0)", v, cb, cr)
		}

		r, g, b := YCbCrToRGB(y, cb, cr)
		if int(r) != v || int(g) != v || int(b) != v {
			t.Fatalf("gray %d: round-trip (%d, %d, %d)", v, r, g, b)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		r, g, b    uint8
		y, cb, cr  int32
	}{
		{0, 0, 0, -128, 0, 0},
		{255, 255, 255, 127, 0, 0},
		{255, 0, 0, (299*255 + 500) / 1000 - 128, (-169*255 + 500) / 1000, (500*255 + 500) / 1000},
		{0, 0, 255, (114*255 + 500) / 1000 - 128, (500*255 + 500) / 1000, (-81*255 + 500) / 1000},
	}
	for _, tt := range tests {
		y, cb, cr := RGBToYCbCr(tt.r, tt.g, tt.b)
		if y != tt.y || cb != tt.cb || cr != tt.cr {
			t.Errorf("RGBToYCbCr(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.r, tt.g, tt.b, y, cb, cr, tt.y, tt.cb, tt.cr)
		}
	}
}

// The batched conversions must produce the same outputs as the per-pixel
// forms on every pixel.
func TestBatchMatchesSingle(t *testing.T) {
	var rgb []byte
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 11 {
				rgb = append(rgb, uint8(r), uint8(g), uint8(b))
			}
		}
	}
	n := len(rgb) / 3

	y := make([]int32, n)
	cb := make([]int32, n)
	cr := make([]int32, n)
	RGBToYCbCrBatch(rgb, y, cb, cr)

	for i := 0; i < n; i++ {
		sy, scb, scr := RGBToYCbCr(rgb[i*3], rgb[i*3+1], rgb[i*3+2])
		if y[i] != sy || cb[i] != scb || cr[i] != scr {
			t.Fatalf("pixel %d: batch (%d, %d, %d) vs single (%d, %d, %d)",
				i, y[i], cb[i], cr[i], sy, scb, scr)
		}
	}

	out := make([]byte, len(rgb))
	YCbCrToRGBBatch(y, cb, cr, out)

	for i := 0; i < n; i++ {
		sr, sg, sb := YCbCrToRGB(y[i], cb[i], cr[i])
		if out[i*3] != sr || out[i*3+1] != sg || out[i*3+2] != sb {
			t.Fatalf("pixel %d: batch (%d, %d, %d) vs single (%d, %d, %d)",
				i, out[i*3], out[i*3+1], out[i*3+2], sr, sg, sb)
		}
	}
}

// Color conversion is the only lossy stage in an identity pipeline; the
// round-trip error per channel must stay within a few counts even at the
// saturated corners of the gamut.
func TestRoundTripError(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 11 {
				y, cb, cr := RGBToYCbCr(uint8(r), uint8(g), uint8(b))
				rr, rg, rb := YCbCrToRGB(y, cb, cr)

				for _, d := range []int{int(rr) - r, int(rg) - g, int(rb) - b} {
					if d < -5 || d > 5 {
						t.Fatalf("(%d, %d, %d) -> (%d, %d, %d): error beyond +-5",
							r, g, b, rr, rg, rb)
					}
				}
			}
		}
	}
}

func TestSaturation(t *testing.T) {
	// A large positive Cr drives red far above 255; it must clamp.
	r, _, _ := YCbCrToRGB(100, 0, 200)
	if r != 255 {
		t.Errorf("red should saturate at 255, got %d", r)
	}
	// A large negative Cb drives blue below 0; it must clamp.
	_, _, b := YCbCrToRGB(-100, -200, 0)
	if b != 0 {
		t.Errorf("blue should saturate at 0, got %d", b)
	}
}
