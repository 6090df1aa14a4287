// Package render is the light-profile surface consumed by catalog objects.
// It mirrors the small part of an optics/rendering library that catalog
// objects touch: a parameter bundle and a point-source profile factory.
package render

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// GSParams bundles the numerical accuracy parameters a profile is drawn with.
type GSParams struct {
	MinimumFFTSize   int     `mapstructure:"minimum_fft_size" json:"minimum_fft_size"`
	MaximumFFTSize   int     `mapstructure:"maximum_fft_size" json:"maximum_fft_size"`
	FoldingThreshold float64 `mapstructure:"folding_threshold" json:"folding_threshold"`
	StepKFactor      float64 `mapstructure:"stepk_minimum_hlr" json:"stepk_minimum_hlr"`
	MaxKThreshold    float64 `mapstructure:"maxk_threshold" json:"maxk_threshold"`
	KValueAccuracy   float64 `mapstructure:"kvalue_accuracy" json:"kvalue_accuracy"`
	XValueAccuracy   float64 `mapstructure:"xvalue_accuracy" json:"xvalue_accuracy"`
	RealSpaceRelErr  float64 `mapstructure:"realspace_relerr" json:"realspace_relerr"`
	RealSpaceAbsErr  float64 `mapstructure:"realspace_abserr" json:"realspace_abserr"`
	ShootAccuracy    float64 `mapstructure:"shoot_accuracy" json:"shoot_accuracy"`
}

// DefaultGSParams returns the stock accuracy settings.
func DefaultGSParams() GSParams {
	return GSParams{
		MinimumFFTSize:   128,
		MaximumFFTSize:   8192,
		FoldingThreshold: 5e-3,
		StepKFactor:      5,
		MaxKThreshold:    1e-3,
		KValueAccuracy:   1e-5,
		XValueAccuracy:   1e-5,
		RealSpaceRelErr:  1e-4,
		RealSpaceAbsErr:  1e-6,
		ShootAccuracy:    1e-5,
	}
}

// NewGSParams overlays keyword values onto the defaults. Unknown keys are
// rejected, as are values of the wrong type.
func NewGSParams(kwargs map[string]any) (GSParams, error) {
	params := DefaultGSParams()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &params,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return GSParams{}, fmt.Errorf("gsparams decoder: %w", err)
	}
	if err := dec.Decode(kwargs); err != nil {
		return GSParams{}, fmt.Errorf("gsparams: %w", err)
	}
	return params, nil
}

// Profile is a surface brightness profile.
type Profile interface {
	// Kind names the profile family, e.g. "DeltaFunction".
	Kind() string
	// Flux is the total flux of the profile.
	Flux() float64
	// Params returns the accuracy settings the profile was built with.
	Params() GSParams
}

type deltaFunction struct {
	flux   float64
	params GSParams
}

// DeltaFunction returns a unit-flux point source. A nil params uses the defaults.
func DeltaFunction(params *GSParams) Profile {
	p := DefaultGSParams()
	if params != nil {
		p = *params
	}
	return deltaFunction{flux: 1, params: p}
}

func (d deltaFunction) Kind() string     { return "DeltaFunction" }
func (d deltaFunction) Flux() float64    { return d.flux }
func (d deltaFunction) Params() GSParams { return d.params }
