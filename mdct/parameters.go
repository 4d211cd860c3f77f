package mdct

import (
	"github.com/cocosip/go-dicom/pkg/imaging/codec"

	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// Ensure Parameters implements codec.Parameters
var _ codec.Parameters = (*Parameters)(nil)

// Quality factor bounds. Smaller factors mean finer quantization and higher
// fidelity.
const (
	MinQualityFactor = 1.0
	MaxQualityFactor = 8.0
)

// Parameters contains the compression knobs for one Compress call.
type Parameters struct {
	// QualityFactor linearly scales the Q50 quantization tables.
	// Valid range is [1.0, 8.0]; 1.0 is the highest fidelity.
	QualityFactor float64

	// Transform selects the block transform.
	Transform transform.Method

	// UseStandardTables selects the standard JPEG Q50 tables. Only true is
	// supported.
	UseStandardTables bool

	// SkipQuantization passes transform coefficients through unquantized.
	// Identity transforms always skip quantization regardless of this flag.
	SkipQuantization bool

	// internal storage for compatibility with the generic parameter interface
	params map[string]interface{}
}

// NewParameters creates Parameters with default values: highest fidelity,
// fast transform, standard tables.
func NewParameters() *Parameters {
	return &Parameters{
		QualityFactor:     MinQualityFactor,
		Transform:         transform.Fast,
		UseStandardTables: true,
		params:            make(map[string]interface{}),
	}
}

// WithQualityFactor sets the quality factor and returns the parameters for
// chaining.
func (p *Parameters) WithQualityFactor(k float64) *Parameters {
	p.QualityFactor = k
	return p
}

// WithTransform sets the block transform and returns the parameters for
// chaining.
func (p *Parameters) WithTransform(m transform.Method) *Parameters {
	p.Transform = m
	return p
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *Parameters) GetParameter(name string) interface{} {
	switch name {
	case "qualityFactor":
		return p.QualityFactor
	case "transform":
		return p.Transform
	case "skipQuantization":
		return p.SkipQuantization
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters)
func (p *Parameters) SetParameter(name string, value interface{}) {
	switch name {
	case "qualityFactor":
		if v, ok := value.(float64); ok {
			p.QualityFactor = v
		}
	case "transform":
		if v, ok := value.(transform.Method); ok {
			p.Transform = v
		}
	case "skipQuantization":
		if v, ok := value.(bool); ok {
			p.SkipQuantization = v
		}
	default:
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate checks the parameters, clamping the quality factor into its valid
// range and rejecting unknown transforms.
func (p *Parameters) Validate() error {
	if p.QualityFactor < MinQualityFactor {
		p.QualityFactor = MinQualityFactor
	}
	if p.QualityFactor > MaxQualityFactor {
		p.QualityFactor = MaxQualityFactor
	}
	if !p.Transform.Valid() {
		return ErrInvalidTransform
	}
	return nil
}
