package sed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New([]float64{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = New([]float64{2, 1}, []float64{1, 1})
	assert.Error(t, err)

	s, err := New([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestNew_CopiesInput(t *testing.T) {
	wl := []float64{1, 2}
	flux := []float64{3, 4}
	s, err := New(wl, flux)
	require.NoError(t, err)

	flux[0] = 100
	assert.Equal(t, 3.0, s.Flux()[0])
}

func TestDefaultGrid(t *testing.T) {
	grid := DefaultGrid()
	require.Len(t, grid, 91)
	assert.InDelta(t, 300.0, grid[0], 1e-9)
	assert.InDelta(t, 1200.0, grid[len(grid)-1], 1e-9)
	assert.InDelta(t, 310.0, grid[1], 1e-9)
}

func TestFlatAB_MagnitudeRoundTrip(t *testing.T) {
	for _, mag := range []float64{-1.46, 0, 3.5, 20} {
		assert.InDelta(t, mag, FlatAB(mag).ABMagnitude(), 1e-9, "mag %v", mag)
	}
}

func TestScale_DoesNotMutate(t *testing.T) {
	s := FlatAB(5)
	before := s.Flux()

	scaled := s.Scale(2)

	assert.Equal(t, before, s.Flux())
	assert.InDelta(t, 2*before[0], scaled.Flux()[0], 1e-30)
	assert.Equal(t, s.Wavelength(), scaled.Wavelength())
}

func TestScale_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mag := rapid.Float64Range(-5, 25).Draw(t, "mag")
		factor := rapid.Float64Range(0, 1e3).Draw(t, "factor")

		s := FlatAB(mag)
		scaled := s.Scale(factor)
		orig := s.Flux()
		got := scaled.Flux()
		for i := range orig {
			want := orig[i] * factor
			if math.Abs(got[i]-want) > 1e-12*math.Abs(want) {
				t.Fatalf("sample %d: got %g, want %g", i, got[i], want)
			}
		}
	})
}

func TestScale_ShiftsMagnitude(t *testing.T) {
	s := FlatAB(10)
	brighter := s.Scale(math.Pow(10, -(-1.0)/2.5))
	assert.InDelta(t, 9.0, brighter.ABMagnitude(), 1e-9)
}

func TestAdd(t *testing.T) {
	a := FlatAB(10)
	sum, err := a.Add(a)
	require.NoError(t, err)
	assert.InDelta(t, 2*a.Flux()[0], sum.Flux()[0], 1e-30)

	other, err := New([]float64{1, 2}, []float64{1, 1})
	require.NoError(t, err)
	_, err = a.Add(other)
	assert.ErrorIs(t, err, ErrGridMismatch)
}

func TestAt_Interpolates(t *testing.T) {
	s, err := New([]float64{100, 200, 300}, []float64{0, 10, 30})
	require.NoError(t, err)

	tests := []struct {
		wl, want float64
	}{
		{100, 0},
		{150, 5},
		{200, 10},
		{250, 20},
		{300, 30},
		{50, 0},
		{400, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, s.At(tt.wl), 1e-12, "At(%v)", tt.wl)
	}
}

func TestABMagnitude_ZeroFlux(t *testing.T) {
	s := FlatAB(0).Scale(0)
	assert.True(t, math.IsInf(s.ABMagnitude(), 1))
}
