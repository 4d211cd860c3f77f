// Package block splits signed image planes into 8x8 tiles and reassembles
// them. Tiles past the right or bottom edge are zero-padded; padded samples
// are never read back on reconstruction.
package block

// Size is the tile edge length in samples.
const Size = 8

// Count returns the number of tiles needed to cover a width x height plane.
func Count(width, height int) int {
	bx := (width + Size - 1) / Size
	by := (height + Size - 1) / Size
	return bx * by
}

// Extract copies a width x height plane into tiles, a contiguous array of
// Count(width, height)*64 samples in row-major tile order, row-major inside
// each tile. Samples beyond the plane's right or bottom edge are zero. Every
// position in tiles is written, so the buffer may hold stale data.
func Extract(plane []int32, width, height int, tiles []int32) {
	bx := (width + Size - 1) / Size
	bxFull := width / Size
	byFull := height / Size

	extractCenter(plane, width, bx, bxFull, byFull, tiles)

	by := (height + Size - 1) / Size
	if bx > bxFull || by > byFull {
		extractEdges(plane, width, height, bx, by, bxFull, byFull, tiles)
	}
}

// extractCenter handles tiles fully inside the plane; no bounds checks.
func extractCenter(plane []int32, width, bx, bxFull, byFull int, tiles []int32) {
	for j := 0; j < byFull; j++ {
		for i := 0; i < bxFull; i++ {
			src := plane[j*Size*width+i*Size:]
			dst := tiles[(j*bx+i)*64:]
			for y := 0; y < Size; y++ {
				copy(dst[y*Size:y*Size+Size], src[y*width:y*width+Size])
			}
		}
	}
}

// extractEdges handles the partially covered right column, bottom row, and
// bottom-right corner tiles, zero-filling the out-of-plane samples.
func extractEdges(plane []int32, width, height, bx, by, bxFull, byFull int, tiles []int32) {
	if bx > bxFull {
		i := bxFull
		px := width - i*Size // in-bounds columns
		for j := 0; j < byFull; j++ {
			src := plane[j*Size*width+i*Size:]
			dst := tiles[(j*bx+i)*64:]
			for y := 0; y < Size; y++ {
				copy(dst[y*Size:y*Size+px], src[y*width:y*width+px])
				for k := px; k < Size; k++ {
					dst[y*Size+k] = 0
				}
			}
		}
	}

	if by > byFull {
		j := byFull
		py := height - j*Size // in-bounds rows
		for i := 0; i < bxFull; i++ {
			src := plane[j*Size*width+i*Size:]
			dst := tiles[(j*bx+i)*64:]
			for y := 0; y < py; y++ {
				copy(dst[y*Size:y*Size+Size], src[y*width:y*width+Size])
			}
			for y := py; y < Size; y++ {
				for k := 0; k < Size; k++ {
					dst[y*Size+k] = 0
				}
			}
		}
	}

	if bx > bxFull && by > byFull {
		i, j := bxFull, byFull
		px := width - i*Size
		py := height - j*Size
		src := plane[j*Size*width+i*Size:]
		dst := tiles[(j*bx+i)*64:]
		for y := 0; y < py; y++ {
			copy(dst[y*Size:y*Size+px], src[y*width:y*width+px])
			for k := px; k < Size; k++ {
				dst[y*Size+k] = 0
			}
		}
		for y := py; y < Size; y++ {
			for k := 0; k < Size; k++ {
				dst[y*Size+k] = 0
			}
		}
	}
}

// Reconstruct copies tile samples back into a width x height plane. For tiles
// covering image padding only the in-bounds samples are written.
func Reconstruct(tiles []int32, width, height int, plane []int32) {
	bx := (width + Size - 1) / Size
	by := (height + Size - 1) / Size
	bxFull := width / Size
	byFull := height / Size

	for j := 0; j < byFull; j++ {
		for i := 0; i < bxFull; i++ {
			src := tiles[(j*bx+i)*64:]
			dst := plane[j*Size*width+i*Size:]
			for y := 0; y < Size; y++ {
				copy(dst[y*width:y*width+Size], src[y*Size:y*Size+Size])
			}
		}
	}

	if bx > bxFull {
		i := bxFull
		px := width - i*Size
		for j := 0; j < byFull; j++ {
			src := tiles[(j*bx+i)*64:]
			dst := plane[j*Size*width+i*Size:]
			for y := 0; y < Size; y++ {
				copy(dst[y*width:y*width+px], src[y*Size:y*Size+px])
			}
		}
	}

	if by > byFull {
		j := byFull
		py := height - j*Size
		for i := 0; i < bxFull; i++ {
			src := tiles[(j*bx+i)*64:]
			dst := plane[j*Size*width+i*Size:]
			for y := 0; y < py; y++ {
				copy(dst[y*width:y*width+Size], src[y*Size:y*Size+Size])
			}
		}
	}

	if bx > bxFull && by > byFull {
		i, j := bxFull, byFull
		px := width - i*Size
		py := height - j*Size
		src := tiles[(j*bx+i)*64:]
		dst := plane[j*Size*width+i*Size:]
		for y := 0; y < py; y++ {
			copy(dst[y*width:y*width+px], src[y*Size:y*Size+px])
		}
	}
}
