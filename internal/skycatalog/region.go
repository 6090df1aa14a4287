package skycatalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/litescript/brighter-stars/internal/astro"
)

// Region scopes a catalog query to part of the sky.
type Region interface {
	Contains(ra, dec float64) bool
	// Center is a representative position used for display.
	Center() astro.SkyCoord
	// RadiusDeg bounds the angular distance from Center to any contained point.
	RadiusDeg() float64
	String() string
}

// Disk is a cone of Radius degrees around (RA, Dec).
type Disk struct {
	RA     float64
	Dec    float64
	Radius float64
}

func (d Disk) Contains(ra, dec float64) bool {
	return astro.AngularSeparation(d.RA, d.Dec, ra, dec) <= d.Radius
}

func (d Disk) Center() astro.SkyCoord { return astro.SkyCoord{RAdeg: d.RA, DecDeg: d.Dec} }
func (d Disk) RadiusDeg() float64     { return d.Radius }

func (d Disk) String() string {
	return fmt.Sprintf("disk(ra=%g, dec=%g, r=%g)", d.RA, d.Dec, d.Radius)
}

// Box is an RA/Dec rectangle. When RAMin > RAMax the box wraps through RA 0;
// a span of 360 degrees or more covers every RA.
type Box struct {
	RAMin, RAMax   float64
	DecMin, DecMax float64
}

func (b Box) Contains(ra, dec float64) bool {
	if dec < b.DecMin || dec > b.DecMax {
		return false
	}
	if b.RAMax-b.RAMin >= 360 {
		return true
	}
	ra = astro.NormalizeRA(ra)
	lo, hi := astro.NormalizeRA(b.RAMin), astro.NormalizeRA(b.RAMax)
	if lo <= hi {
		return ra >= lo && ra <= hi
	}
	return ra >= lo || ra <= hi
}

func (b Box) raWidth() float64 {
	if b.RAMax-b.RAMin >= 360 {
		return 360
	}
	return astro.NormalizeRA(b.RAMax - b.RAMin)
}

func (b Box) Center() astro.SkyCoord {
	return astro.SkyCoord{
		RAdeg:  astro.NormalizeRA(b.RAMin + b.raWidth()/2),
		DecDeg: (b.DecMin + b.DecMax) / 2,
	}
}

func (b Box) RadiusDeg() float64 {
	c := b.Center()
	r := 0.0
	for _, ra := range []float64{b.RAMin, b.RAMax} {
		for _, dec := range []float64{b.DecMin, b.DecMax} {
			r = max(r, astro.AngularSeparation(c.RAdeg, c.DecDeg, ra, dec))
		}
	}
	return r
}

func (b Box) String() string {
	return fmt.Sprintf("box(ra=[%g,%g], dec=[%g,%g])", b.RAMin, b.RAMax, b.DecMin, b.DecMax)
}

// AllSky matches every position.
type AllSky struct{}

func (AllSky) Contains(float64, float64) bool { return true }
func (AllSky) Center() astro.SkyCoord         { return astro.SkyCoord{} }
func (AllSky) RadiusDeg() float64             { return 180 }
func (AllSky) String() string                 { return "all" }

// ParseRegion parses "all", "disk:ra,dec,radius" or
// "box:ramin,ramax,decmin,decmax" with all values in degrees.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return AllSky{}, nil
	}
	kind, args, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("region %q: expected kind:values", s)
	}
	vals, err := parseFloats(args)
	if err != nil {
		return nil, fmt.Errorf("region %q: %w", s, err)
	}

	switch kind {
	case "disk":
		if len(vals) != 3 {
			return nil, fmt.Errorf("region %q: disk takes ra,dec,radius", s)
		}
		if vals[2] < 0 {
			return nil, fmt.Errorf("region %q: negative radius", s)
		}
		return Disk{RA: vals[0], Dec: vals[1], Radius: vals[2]}, nil
	case "box":
		if len(vals) != 4 {
			return nil, fmt.Errorf("region %q: box takes ramin,ramax,decmin,decmax", s)
		}
		if vals[2] > vals[3] {
			return nil, fmt.Errorf("region %q: decmin > decmax", s)
		}
		return Box{RAMin: vals[0], RAMax: vals[1], DecMin: vals[2], DecMax: vals[3]}, nil
	default:
		return nil, fmt.Errorf("region %q: unknown kind %q", s, kind)
	}
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
