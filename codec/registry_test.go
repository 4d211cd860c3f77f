package codec_test

import (
	"testing"

	"github.com/cocosip/go-mdct-codec/codec"
)

type stubCodec struct {
	id   string
	name string
}

func (s *stubCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	return append([]byte{}, params.PixelData...), nil
}

func (s *stubCodec) Decode(data []byte) (*codec.DecodeResult, error) {
	return &codec.DecodeResult{PixelData: data}, nil
}

func (s *stubCodec) ID() string   { return s.id }
func (s *stubCodec) Name() string { return s.name }

func TestRegistryGetByNameAndID(t *testing.T) {
	stub := &stubCodec{id: "stub.v1", name: "stub"}
	codec.Register(stub)

	byName, err := codec.Get("stub")
	if err != nil {
		t.Fatalf("Get by name failed: %v", err)
	}
	byID, err := codec.Get("stub.v1")
	if err != nil {
		t.Fatalf("Get by ID failed: %v", err)
	}
	if byName != byID {
		t.Error("name and ID must resolve to the same codec")
	}
}

func TestRegistryNotFound(t *testing.T) {
	_, err := codec.Get("no-such-codec")
	if err != codec.ErrCodecNotFound {
		t.Errorf("expected ErrCodecNotFound, got %v", err)
	}
}

func TestRegistryListDeduplicates(t *testing.T) {
	stub := &stubCodec{id: "dedup.v1", name: "dedup"}
	codec.Register(stub)

	count := 0
	for _, c := range codec.List() {
		if c == stub {
			count++
		}
	}
	if count != 1 {
		t.Errorf("codec listed %d times, want once", count)
	}
}

func TestBaseOptionsValidate(t *testing.T) {
	tests := []struct {
		quality float64
		wantErr bool
	}{
		{0, false}, // zero selects the default
		{1.0, false},
		{8.0, false},
		{4.5, false},
		{0.5, true},
		{9.0, true},
		{-1, true},
	}
	for _, tt := range tests {
		opts := &codec.BaseOptions{QualityFactor: tt.quality}
		err := opts.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("QualityFactor %g: err = %v, wantErr %v", tt.quality, err, tt.wantErr)
		}
	}
}
