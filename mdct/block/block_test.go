package block

import (
	"testing"
)

func sequentialPlane(width, height int) []int32 {
	plane := make([]int32, width*height)
	for i := range plane {
		plane[i] = int32(i%251) - 125
	}
	return plane
}

func TestCount(t *testing.T) {
	tests := []struct {
		w, h, want int
	}{
		{8, 8, 1},
		{16, 8, 2},
		{9, 9, 4},
		{64, 64, 64},
		{320, 240, 40 * 30},
		{1, 1, 1},
	}
	for _, tt := range tests {
		if got := Count(tt.w, tt.h); got != tt.want {
			t.Errorf("Count(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestExtractAligned(t *testing.T) {
	width, height := 16, 8
	plane := sequentialPlane(width, height)
	tiles := make([]int32, Count(width, height)*64)

	Extract(plane, width, height, tiles)

	// First tile, first row must be the first 8 samples of the plane.
	for x := 0; x < 8; x++ {
		if tiles[x] != plane[x] {
			t.Errorf("tile 0 sample %d = %d, want %d", x, tiles[x], plane[x])
		}
	}
	// Second tile covers columns 8-15.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := plane[y*width+8+x]
			got := tiles[64+y*8+x]
			if got != want {
				t.Fatalf("tile 1 (%d,%d) = %d, want %d", y, x, got, want)
			}
		}
	}
}

// A 9x9 plane needs 4 tiles; the three padded columns and rows must be zero.
func TestExtractPadding(t *testing.T) {
	width, height := 9, 9
	plane := make([]int32, width*height)
	for i := range plane {
		plane[i] = 7 // non-zero everywhere, so padding is observable
	}
	tiles := make([]int32, Count(width, height)*64)
	for i := range tiles {
		tiles[i] = -99 // dirty scratch; Extract must overwrite every sample
	}

	Extract(plane, width, height, tiles)

	// Tile layout: [0]=top-left full, [1]=top-right 1 col, [2]=bottom-left
	// 1 row, [3]=bottom-right 1x1.
	checks := []struct {
		tile   int
		inRow  int // in-bounds rows
		inCol  int // in-bounds columns
	}{
		{0, 8, 8},
		{1, 8, 1},
		{2, 1, 8},
		{3, 1, 1},
	}
	for _, c := range checks {
		base := c.tile * 64
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				got := tiles[base+y*8+x]
				if y < c.inRow && x < c.inCol {
					if got != 7 {
						t.Errorf("tile %d (%d,%d) = %d, want 7", c.tile, y, x, got)
					}
				} else if got != 0 {
					t.Errorf("tile %d (%d,%d) = %d, want 0 padding", c.tile, y, x, got)
				}
			}
		}
	}
}

func TestReconstructRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{8, 8}, {16, 16}, {9, 9}, {17, 11}, {320, 240}} {
		width, height := dims[0], dims[1]
		plane := sequentialPlane(width, height)
		tiles := make([]int32, Count(width, height)*64)

		Extract(plane, width, height, tiles)

		out := make([]int32, width*height)
		Reconstruct(tiles, width, height, out)

		for i := range plane {
			if out[i] != plane[i] {
				t.Fatalf("%dx%d: sample %d = %d, want %d", width, height, i, out[i], plane[i])
			}
		}
	}
}

// Reconstruct must only write in-bounds samples; tile padding is discarded.
func TestReconstructDiscardsPadding(t *testing.T) {
	width, height := 9, 9
	tiles := make([]int32, Count(width, height)*64)
	for i := range tiles {
		tiles[i] = 55
	}

	out := make([]int32, width*height)
	Reconstruct(tiles, width, height, out)

	for i := range out {
		if out[i] != 55 {
			t.Fatalf("in-bounds sample %d = %d, want 55", i, out[i])
		}
	}
}
