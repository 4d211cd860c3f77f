package mdct

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// Wire container for CompressedImage: a fixed little-endian header followed
// by the three quantized channels as signed 16-bit values, zstd-compressed.
// Raw pre-quantization coefficients are a debug aid and are not serialized.

var wireMagic = [4]byte{'M', 'D', 'C', 'T'}

const wireVersion = 1

type wireHeader struct {
	Magic         [4]byte
	Version       uint8
	_             [3]byte
	Width         int32
	Height        int32
	NumTiles      int32
	Transform     int32
	QualityFactor float64
	PayloadSize   int64
}

func newZstdEncoder() (*zstd.Encoder, error) {
	return zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
}

func newZstdDecoder() (*zstd.Decoder, error) {
	return zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
}

// WriteCompressed serializes a CompressedImage to w.
func WriteCompressed(w io.Writer, comp *CompressedImage) error {
	if err := comp.validate(); err != nil {
		return err
	}

	payload := make([]byte, 0, 3*comp.NumTiles*64*2)
	for _, ch := range [][]int32{comp.YQuant, comp.CbQuant, comp.CrQuant} {
		for _, v := range ch {
			if v < math.MinInt16 || v > math.MaxInt16 {
				return fmt.Errorf("mdct: coefficient %d outside int16 range", v)
			}
			payload = binary.LittleEndian.AppendUint16(payload, uint16(int16(v)))
		}
	}

	enc, err := newZstdEncoder()
	if err != nil {
		return err
	}
	compressed := enc.EncodeAll(payload, nil)
	if err := enc.Close(); err != nil {
		return err
	}

	hdr := wireHeader{
		Magic:         wireMagic,
		Version:       wireVersion,
		Width:         int32(comp.Width),
		Height:        int32(comp.Height),
		NumTiles:      int32(comp.NumTiles),
		Transform:     int32(comp.Transform),
		QualityFactor: comp.QualityFactor,
		PayloadSize:   int64(len(compressed)),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	if _, err := w.Write(compressed); err != nil {
		return err
	}
	return nil
}

// ReadCompressed deserializes a CompressedImage from r. The quantized
// channels are restored; raw coefficient arrays stay nil.
func ReadCompressed(r io.Reader) (*CompressedImage, error) {
	var hdr wireHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr.Magic != wireMagic {
		return nil, fmt.Errorf("mdct: bad container magic")
	}
	if hdr.Version != wireVersion {
		return nil, fmt.Errorf("mdct: unsupported container version %d", hdr.Version)
	}
	if hdr.Width <= 0 || hdr.Height <= 0 || hdr.PayloadSize < 0 {
		return nil, ErrInvalidDimensions
	}
	if !transform.Method(hdr.Transform).Valid() {
		return nil, ErrInvalidTransform
	}

	compressed := make([]byte, hdr.PayloadSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}

	dec, err := newZstdDecoder()
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	payload, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("mdct: container payload: %w", err)
	}

	n := int(hdr.NumTiles) * 64
	if len(payload) != 3*n*2 {
		return nil, ErrInvalidDimensions
	}

	comp := &CompressedImage{
		Width:         int(hdr.Width),
		Height:        int(hdr.Height),
		QualityFactor: hdr.QualityFactor,
		Transform:     transform.Method(hdr.Transform),
		NumTiles:      int(hdr.NumTiles),
		YQuant:        make([]int32, n),
		CbQuant:       make([]int32, n),
		CrQuant:       make([]int32, n),
	}
	for ci, ch := range [][]int32{comp.YQuant, comp.CbQuant, comp.CrQuant} {
		base := ci * n * 2
		for i := 0; i < n; i++ {
			ch[i] = int32(int16(binary.LittleEndian.Uint16(payload[base+i*2:])))
		}
	}

	if err := comp.validate(); err != nil {
		return nil, err
	}
	return comp, nil
}
