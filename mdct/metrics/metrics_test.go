package metrics

import (
	"math"
	"testing"
)

func TestPSNRIdentical(t *testing.T) {
	a := make([]byte, 1024)
	for i := range a {
		a[i] = byte(i % 256)
	}
	if got := PSNR(a, a); got != 100.0 {
		t.Errorf("PSNR(a, a) = %f, want sentinel 100", got)
	}
}

func TestPSNRKnownMSE(t *testing.T) {
	a := make([]byte, 300)
	b := make([]byte, 300)
	for i := range a {
		a[i] = 100
		b[i] = 101 // every byte off by one: MSE = 1
	}
	want := 10 * math.Log10(255.0*255.0)
	if got := PSNR(a, b); math.Abs(got-want) > 1e-9 {
		t.Errorf("PSNR = %f, want %f", got, want)
	}
}

func TestPSNRCommutative(t *testing.T) {
	a := []byte{0, 50, 100, 150, 200, 250}
	b := []byte{3, 47, 104, 149, 201, 244}
	if PSNR(a, b) != PSNR(b, a) {
		t.Error("PSNR must be commutative")
	}
	if PSNR(a, b) < 0 {
		t.Error("PSNR must be non-negative")
	}
}

func TestPSNRMismatchedLengths(t *testing.T) {
	if got := PSNR([]byte{1, 2}, []byte{1, 2, 3}); got != 0 {
		t.Errorf("mismatched lengths should yield 0, got %f", got)
	}
	if got := PSNR(nil, nil); got != 0 {
		t.Errorf("empty input should yield 0, got %f", got)
	}
}

func TestPSNRGray(t *testing.T) {
	orig := []byte{10, 20, 30}
	recon := []byte{10, 10, 10, 20, 20, 20, 30, 30, 30}
	if got := PSNRGray(orig, recon); got != 100.0 {
		t.Errorf("PSNRGray identical = %f, want 100", got)
	}
}

func TestBitrateDCOnly(t *testing.T) {
	// One tile with only the DC coefficient set: (0+1)*8 bits over 64
	// pixels = 0.125 bpp.
	tile := make([]int32, 64)
	tile[0] = 5
	if got := Bitrate(tile); got != 0.125 {
		t.Errorf("DC-only bitrate = %f, want 0.125", got)
	}
}

func TestBitrateZigZagPosition(t *testing.T) {
	// Natural index 8 sits at zig-zag position 2: (2+1)*8/64 = 0.375 bpp.
	tile := make([]int32, 64)
	tile[8] = -3
	if got := Bitrate(tile); got != 0.375 {
		t.Errorf("bitrate = %f, want 0.375", got)
	}
}

func TestBitrateAllZero(t *testing.T) {
	tile := make([]int32, 64)
	if got := Bitrate(tile); got != 0 {
		t.Errorf("all-zero tile bitrate = %f, want 0", got)
	}
}

func TestBitrateDense(t *testing.T) {
	// Every coefficient non-zero: the ceiling of 8 bits per pixel.
	tiles := make([]int32, 3*64)
	for i := range tiles {
		tiles[i] = int32(i + 1)
	}
	if got := Bitrate(tiles); got != 8.0 {
		t.Errorf("dense bitrate = %f, want 8.0", got)
	}
}

func TestBitrateMultiChannel(t *testing.T) {
	y := make([]int32, 2*64)
	cb := make([]int32, 2*64)
	cr := make([]int32, 2*64)
	y[0] = 1   // tile 0: DC only -> 8 bits
	y[64] = 1  // tile 1: DC only -> 8 bits
	// chroma all zero -> 0 bits, but still counted in total pixels

	got := Bitrate(y, cb, cr)
	want := 16.0 / (6 * 64)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("bitrate = %f, want %f", got, want)
	}
}

func TestBitrateEmpty(t *testing.T) {
	if got := Bitrate(); got != 0 {
		t.Errorf("no channels should yield 0, got %f", got)
	}
}
