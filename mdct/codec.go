package mdct

import (
	"bytes"
	"fmt"

	"github.com/cocosip/go-mdct-codec/codec"
	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// Codec adapts one transform variant of this codec to the codec.Codec
// interface. Encode produces the wire container; Decode reverses it.
type Codec struct {
	method transform.Method
}

// NewCodec creates a codec for the given transform method.
func NewCodec(method transform.Method) (*Codec, error) {
	if !method.Valid() {
		return nil, ErrInvalidTransform
	}
	return &Codec{method: method}, nil
}

// Options contains encoding options for the multi-DCT codec
type Options struct {
	codec.BaseOptions
}

// Validate validates the options
func (o *Options) Validate() error {
	return o.BaseOptions.Validate()
}

// Encode compresses pixel data and serializes it into the wire container
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	p := NewParameters().WithTransform(c.method)
	if params.Options != nil {
		if opts, ok := params.Options.(*Options); ok {
			if err := opts.Validate(); err != nil {
				return nil, err
			}
			if opts.QualityFactor != 0 {
				p.QualityFactor = opts.QualityFactor
			}
			p.SkipQuantization = opts.SkipQuantization
		}
	}

	img := &Image{
		Width:  params.Width,
		Height: params.Height,
		Data:   params.PixelData,
	}
	switch params.Components {
	case 1:
		img.Colorspace = ColorspaceGrayscale
	case 3:
		img.Colorspace = ColorspaceRGB
	default:
		return nil, fmt.Errorf("%w: %d components", codec.ErrUnsupportedFormat, params.Components)
	}

	comp, err := Compress(img, p)
	if err != nil {
		return nil, err
	}
	defer comp.Release()

	var buf bytes.Buffer
	if err := WriteCompressed(&buf, comp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a wire container and reconstructs the RGB raster
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	comp, err := ReadCompressed(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer comp.Release()

	img, err := Decompress(comp)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData:  img.Data,
		Width:      img.Width,
		Height:     img.Height,
		Components: 3, // reconstruction is always RGB
	}, nil
}

// ID returns the stable registry identifier for this variant
func (c *Codec) ID() string {
	return "mdct." + c.method.String()
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "mdct-" + c.method.String()
}

// Register registers all four transform variants with the global registry
func init() {
	for _, m := range []transform.Method{
		transform.Fast, transform.Matrix, transform.Approx, transform.Identity,
	} {
		codec.Register(&Codec{method: m})
	}
}
