// Package colorspace converts between RGB and YCbCr (ITU-R BT.601) using
// fixed-point integer arithmetic. Constants are scaled by 1000 with a +500
// rounding bias; division truncates toward zero.
package colorspace

// RGBToYCbCr converts a single pixel. Y is level-shifted by -128; Cb and Cr
// are centered at zero.
func RGBToYCbCr(r, g, b uint8) (y, cb, cr int32) {
	ri, gi, bi := int32(r), int32(g), int32(b)
	y = (299*ri+587*gi+114*bi+500)/1000 - 128
	cb = (-169*ri - 331*gi + 500*bi + 500) / 1000
	cr = (500*ri - 419*gi - 81*bi + 500) / 1000
	return
}

// YCbCrToRGB converts a single pixel, saturating each channel to [0, 255].
func YCbCrToRGB(y, cb, cr int32) (r, g, b uint8) {
	yv := y + 128
	rv := yv + (1402*cr+500)/1000
	gv := yv - (344*cb+714*cr+500)/1000
	bv := yv + (1772*cb+500)/1000
	return clamp(rv), clamp(gv), clamp(bv)
}

// RGBToYCbCrBatch converts a whole interleaved RGB plane in one pass.
// y, cb and cr must each hold len(rgb)/3 samples. Results are identical to
// per-pixel RGBToYCbCr calls.
func RGBToYCbCrBatch(rgb []byte, y, cb, cr []int32) {
	n := len(rgb) / 3
	for i := 0; i < n; i++ {
		ri := int32(rgb[i*3])
		gi := int32(rgb[i*3+1])
		bi := int32(rgb[i*3+2])
		y[i] = (299*ri+587*gi+114*bi+500)/1000 - 128
		cb[i] = (-169*ri - 331*gi + 500*bi + 500) / 1000
		cr[i] = (500*ri - 419*gi - 81*bi + 500) / 1000
	}
}

// YCbCrToRGBBatch converts whole planes into an interleaved RGB buffer of
// 3*len(y) bytes. Results are identical to per-pixel YCbCrToRGB calls.
func YCbCrToRGBBatch(y, cb, cr []int32, rgb []byte) {
	for i := range y {
		yv := y[i] + 128
		cbv := cb[i]
		crv := cr[i]
		rv := yv + (1402*crv+500)/1000
		gv := yv - (344*cbv+714*crv+500)/1000
		bv := yv + (1772*cbv+500)/1000
		rgb[i*3] = clamp(rv)
		rgb[i*3+1] = clamp(gv)
		rgb[i*3+2] = clamp(bv)
	}
}

func clamp(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
