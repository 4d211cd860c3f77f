package mdct

// Colorspace identifies the pixel layout of an Image.
type Colorspace int32

const (
	// ColorspaceRGB is interleaved 8-bit RGB, 3 bytes per pixel.
	ColorspaceRGB Colorspace = iota
	// ColorspaceGrayscale is 8-bit luminance, 1 byte per pixel.
	ColorspaceGrayscale
)

// String returns the colorspace name.
func (c Colorspace) String() string {
	switch c {
	case ColorspaceRGB:
		return "rgb"
	case ColorspaceGrayscale:
		return "grayscale"
	default:
		return "unknown"
	}
}

// Image is a rectangular raster with a top-left origin. Data is row-major:
// Width*Height*3 bytes for RGB, Width*Height for grayscale.
type Image struct {
	Width      int
	Height     int
	Colorspace Colorspace
	Data       []byte
}

// NewRGBImage allocates an empty RGB image.
func NewRGBImage(width, height int) *Image {
	return &Image{
		Width:      width,
		Height:     height,
		Colorspace: ColorspaceRGB,
		Data:       make([]byte, width*height*3),
	}
}

// NewGrayscaleImage allocates an empty grayscale image.
func NewGrayscaleImage(width, height int) *Image {
	return &Image{
		Width:      width,
		Height:     height,
		Colorspace: ColorspaceGrayscale,
		Data:       make([]byte, width*height),
	}
}

// Release drops the pixel buffer so it can be reclaimed early. The image
// must not be used afterwards.
func (img *Image) Release() {
	if img != nil {
		img.Data = nil
	}
}

// dataLen returns the required Data length for the image geometry.
func (img *Image) dataLen() int {
	if img.Colorspace == ColorspaceGrayscale {
		return img.Width * img.Height
	}
	return img.Width * img.Height * 3
}
