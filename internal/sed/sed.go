// Package sed holds tabulated spectral energy distributions.
//
// An SED is sampled on a wavelength grid in nanometres with flux density
// f_nu in erg/s/cm²/Hz. Values are immutable once built: every operation
// returns a new SED.
package sed

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// abZeroPoint is the AB magnitude of a source with f_nu = 1 erg/s/cm²/Hz.
const abZeroPoint = 48.6

// Default wavelength grid in nm.
const (
	DefaultMinWavelength = 300.0
	DefaultMaxWavelength = 1200.0
	DefaultStep          = 10.0
)

var (
	ErrGridMismatch = errors.New("sed: wavelength grids differ")
	ErrEmpty        = errors.New("sed: empty wavelength grid")
)

// SED is a sampled spectral energy distribution.
type SED struct {
	wavelength []float64
	flux       []float64
}

// New builds an SED from a strictly increasing wavelength grid and matching flux samples.
func New(wavelength, flux []float64) (*SED, error) {
	if len(wavelength) == 0 {
		return nil, ErrEmpty
	}
	if len(wavelength) != len(flux) {
		return nil, fmt.Errorf("sed: %d wavelengths but %d flux samples", len(wavelength), len(flux))
	}
	if !sort.Float64sAreSorted(wavelength) {
		return nil, fmt.Errorf("sed: wavelength grid not increasing")
	}
	return &SED{
		wavelength: append([]float64(nil), wavelength...),
		flux:       append([]float64(nil), flux...),
	}, nil
}

// DefaultGrid returns the 300-1200 nm grid used by FlatAB.
func DefaultGrid() []float64 {
	n := int((DefaultMaxWavelength-DefaultMinWavelength)/DefaultStep) + 1
	grid := make([]float64, n)
	floats.Span(grid, DefaultMinWavelength, DefaultMaxWavelength)
	return grid
}

// FlatAB returns a spectrum with constant f_nu whose AB magnitude is mag.
func FlatAB(mag float64) *SED {
	grid := DefaultGrid()
	flux := make([]float64, len(grid))
	fnu := math.Pow(10, -0.4*(mag+abZeroPoint))
	for i := range flux {
		flux[i] = fnu
	}
	return &SED{wavelength: grid, flux: flux}
}

// Len returns the number of samples.
func (s *SED) Len() int { return len(s.wavelength) }

// Wavelength returns a copy of the wavelength grid.
func (s *SED) Wavelength() []float64 { return append([]float64(nil), s.wavelength...) }

// Flux returns a copy of the flux samples.
func (s *SED) Flux() []float64 { return append([]float64(nil), s.flux...) }

// Scale returns a new SED with every flux sample multiplied by factor.
func (s *SED) Scale(factor float64) *SED {
	out := make([]float64, len(s.flux))
	floats.ScaleTo(out, factor, s.flux)
	return &SED{wavelength: s.wavelength, flux: out}
}

// Add returns the sample-wise sum of two SEDs on the same grid.
func (s *SED) Add(other *SED) (*SED, error) {
	if !floats.Equal(s.wavelength, other.wavelength) {
		return nil, ErrGridMismatch
	}
	out := make([]float64, len(s.flux))
	floats.AddTo(out, s.flux, other.flux)
	return &SED{wavelength: s.wavelength, flux: out}, nil
}

// At returns the flux at wl by linear interpolation. Outside the grid it is 0.
func (s *SED) At(wl float64) float64 {
	n := len(s.wavelength)
	if wl < s.wavelength[0] || wl > s.wavelength[n-1] {
		return 0
	}
	i := sort.SearchFloat64s(s.wavelength, wl)
	if s.wavelength[i] == wl {
		return s.flux[i]
	}
	x0, x1 := s.wavelength[i-1], s.wavelength[i]
	y0, y1 := s.flux[i-1], s.flux[i]
	return y0 + (y1-y0)*(wl-x0)/(x1-x0)
}

// MeanFlux returns the wavelength-averaged f_nu over the grid.
func (s *SED) MeanFlux() float64 {
	n := len(s.wavelength)
	if n == 1 {
		return s.flux[0]
	}
	span := s.wavelength[n-1] - s.wavelength[0]
	return integrate.Trapezoidal(s.wavelength, s.flux) / span
}

// ABMagnitude returns the AB magnitude of the mean flux. A non-positive
// mean flux yields +Inf.
func (s *SED) ABMagnitude() float64 {
	mean := s.MeanFlux()
	if mean <= 0 {
		return math.Inf(1)
	}
	return -2.5*math.Log10(mean) - abZeroPoint
}
