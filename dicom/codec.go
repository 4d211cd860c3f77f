// Package dicom adapts the multi-DCT codec to the go-dicom imaging codec
// interfaces so experimental coefficient streams can flow through DICOM
// pixel-data pipelines. The codec is not a standard DICOM transfer syntax;
// it must be registered explicitly under a syntax chosen by the caller.
package dicom

import (
	"bytes"
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/go-mdct-codec/mdct"
	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

var _ codec.Codec = (*Codec)(nil)

// Codec implements the go-dicom codec interface over the multi-DCT pipeline.
type Codec struct {
	transferSyntax *transfer.Syntax
	method         transform.Method
}

// NewCodec creates an adapter using the fast transform and the explicit VR
// little endian container syntax.
func NewCodec() *Codec {
	return NewCodecWithTransferSyntax(transfer.ExplicitVRLittleEndian, transform.Fast)
}

// NewCodecWithTransferSyntax allows constructing the adapter for an alternate
// syntax and transform method.
func NewCodecWithTransferSyntax(ts *transfer.Syntax, method transform.Method) *Codec {
	if !method.Valid() {
		method = transform.Fast
	}
	return &Codec{
		transferSyntax: ts,
		method:         method,
	}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return fmt.Sprintf("Multi-DCT (%s)", c.method)
}

// TransferSyntax returns the transfer syntax this codec handles
func (c *Codec) TransferSyntax() *transfer.Syntax {
	return c.transferSyntax
}

// GetDefaultParameters returns the default codec parameters
func (c *Codec) GetDefaultParameters() codec.Parameters {
	return mdct.NewParameters().WithTransform(c.method)
}

// Encode compresses each source frame into a wire container frame.
func (c *Codec) Encode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	frameInfo := oldPixelData.GetFrameInfo()
	if frameInfo == nil {
		return fmt.Errorf("failed to get frame info from source pixel data")
	}
	if frameInfo.BitsAllocated != 8 {
		return fmt.Errorf("multi-DCT codec supports 8-bit samples, got %d", frameInfo.BitsAllocated)
	}

	params := c.extractParameters(parameters)

	var cs mdct.Colorspace
	switch frameInfo.SamplesPerPixel {
	case 1:
		cs = mdct.ColorspaceGrayscale
	case 3:
		cs = mdct.ColorspaceRGB
	default:
		return fmt.Errorf("unsupported samples per pixel: %d", frameInfo.SamplesPerPixel)
	}

	for frameIndex := 0; frameIndex < oldPixelData.FrameCount(); frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}

		img := &mdct.Image{
			Width:      int(frameInfo.Width),
			Height:     int(frameInfo.Height),
			Colorspace: cs,
			Data:       frameData,
		}

		comp, err := mdct.Compress(img, params)
		if err != nil {
			return fmt.Errorf("failed to encode frame %d: %w", frameIndex, err)
		}

		var buf bytes.Buffer
		err = mdct.WriteCompressed(&buf, comp)
		comp.Release()
		if err != nil {
			return fmt.Errorf("failed to serialize frame %d: %w", frameIndex, err)
		}

		if err := newPixelData.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to add encoded frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

// Decode reconstructs RGB frames from wire container frames.
func (c *Codec) Decode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	for frameIndex := 0; frameIndex < oldPixelData.FrameCount(); frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}

		comp, err := mdct.ReadCompressed(bytes.NewReader(frameData))
		if err != nil {
			return fmt.Errorf("failed to parse frame %d: %w", frameIndex, err)
		}

		img, err := mdct.Decompress(comp)
		comp.Release()
		if err != nil {
			return fmt.Errorf("failed to decode frame %d: %w", frameIndex, err)
		}

		if err := newPixelData.AddFrame(img.Data); err != nil {
			return fmt.Errorf("failed to add decoded frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

// extractParameters bridges generic parameters into typed ones.
func (c *Codec) extractParameters(parameters codec.Parameters) *mdct.Parameters {
	params := mdct.NewParameters().WithTransform(c.method)
	if parameters == nil {
		return params
	}
	if typed, ok := parameters.(*mdct.Parameters); ok {
		return typed
	}
	if k := parameters.GetParameter("qualityFactor"); k != nil {
		if kf, ok := k.(float64); ok && kf >= mdct.MinQualityFactor && kf <= mdct.MaxQualityFactor {
			params.QualityFactor = kf
		}
	}
	if sq := parameters.GetParameter("skipQuantization"); sq != nil {
		if b, ok := sq.(bool); ok {
			params.SkipQuantization = b
		}
	}
	return params
}

// RegisterCodec registers the adapter with the global go-dicom registry under
// the given transfer syntax. There is no init-time registration: this codec
// is experimental and must not shadow standard codecs implicitly.
func RegisterCodec(ts *transfer.Syntax, method transform.Method) {
	registry := codec.GetGlobalRegistry()
	registry.RegisterCodec(ts, NewCodecWithTransferSyntax(ts, method))
}
