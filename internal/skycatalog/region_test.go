package skycatalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisk_Contains(t *testing.T) {
	d := Disk{RA: 10, Dec: 0, Radius: 5}

	assert.True(t, d.Contains(10, 0))
	assert.True(t, d.Contains(14.9, 0))
	assert.False(t, d.Contains(15.1, 0))
	assert.False(t, d.Contains(10, 6))
}

func TestDisk_ContainsAcrossRAZero(t *testing.T) {
	d := Disk{RA: 359, Dec: 0, Radius: 3}
	assert.True(t, d.Contains(1, 0))
	assert.False(t, d.Contains(5, 0))
}

func TestBox_Contains(t *testing.T) {
	tests := []struct {
		name    string
		box     Box
		ra, dec float64
		want    bool
	}{
		{"inside", Box{10, 20, -5, 5}, 15, 0, true},
		{"edge", Box{10, 20, -5, 5}, 20, 5, true},
		{"dec outside", Box{10, 20, -5, 5}, 15, 6, false},
		{"ra outside", Box{10, 20, -5, 5}, 25, 0, false},
		{"wrap high side", Box{350, 10, -5, 5}, 355, 0, true},
		{"wrap low side", Box{350, 10, -5, 5}, 5, 0, true},
		{"wrap outside", Box{350, 10, -5, 5}, 180, 0, false},
		{"full circle", Box{0, 360, -90, 90}, 123, 45, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Contains(tt.ra, tt.dec))
		})
	}
}

func TestBox_Center(t *testing.T) {
	c := Box{350, 10, -10, 20}.Center()
	assert.InDelta(t, 0.0, c.RAdeg, 1e-9)
	assert.InDelta(t, 5.0, c.DecDeg, 1e-9)

	assert.Greater(t, Box{10, 20, -5, 5}.RadiusDeg(), 5.0)
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in      string
		want    Region
		wantErr bool
	}{
		{"", AllSky{}, false},
		{"all", AllSky{}, false},
		{"disk:10,20,1.5", Disk{10, 20, 1.5}, false},
		{"disk: 10 , -20 , 3", Disk{10, -20, 3}, false},
		{"box:350,10,-5,5", Box{350, 10, -5, 5}, false},
		{"disk:1,2", nil, true},
		{"disk:1,2,-1", nil, true},
		{"box:1,2,5,-5", nil, true},
		{"cone:1,2,3", nil, true},
		{"disk:a,b,c", nil, true},
		{"10,20,1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRegion(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
