// Package astro provides celestial coordinate helpers and the built-in bright star table.
package astro

import (
	"math"
	"time"
)

// mjdOffset is the Julian Date of the MJD epoch (1858-11-17 00:00 UTC).
const mjdOffset = 2400000.5

// SkyCoord is an equatorial position (J2000).
type SkyCoord struct {
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// ModifiedJulianDate returns the MJD for t.
func ModifiedJulianDate(t time.Time) float64 {
	return julianDate(t) - mjdOffset
}

// TimeFromMJD converts an MJD back to a UTC time.
func TimeFromMJD(mjd float64) time.Time {
	// Unix epoch is MJD 40587.
	secs := (mjd - 40587.0) * 86400.0
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC()
}

// AngularSeparation calculates the angular separation between two points on the celestial sphere.
// All coordinates in degrees. Returns separation in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	ra1Rad := degToRad(ra1)
	dec1Rad := degToRad(dec1)
	ra2Rad := degToRad(ra2)
	dec2Rad := degToRad(dec2)

	// Haversine
	dRA := ra2Rad - ra1Rad
	dDec := dec2Rad - dec1Rad

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Sin(dRA/2)*math.Sin(dRA/2)

	// Clamp to avoid numerical errors with asin
	if a > 1 {
		a = 1
	}

	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}

// NormalizeRA wraps an angle into 0-360 degrees.
func NormalizeRA(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Treat January/February as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
