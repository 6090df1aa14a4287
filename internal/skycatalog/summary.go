package skycatalog

import "math"

// Summary is one row of a collection listing.
type Summary struct {
	Index      int     `json:"index"`
	ID         string  `json:"id"`
	ObjectType string  `json:"object_type"`
	RA         float64 `json:"ra"`
	Dec        float64 `json:"dec"`
	// Mag is the AB magnitude of the object's observer SED.
	Mag float64 `json:"mag"`
	// BaseMag is the magnitude of the underlying star for wrapping types,
	// otherwise equal to Mag.
	BaseMag   float64 `json:"base_mag"`
	FluxScale float64 `json:"flux_scale"`
}

// starWrapper is implemented by object types that decorate a native star.
type starWrapper interface {
	Star() *StarObject
}

// Summarize evaluates every object of coll at mjd.
func Summarize(coll ObjectList, mjd *float64) ([]Summary, error) {
	out := make([]Summary, 0, coll.Len())
	for i := 0; i < coll.Len(); i++ {
		obj, err := coll.At(i)
		if err != nil {
			return nil, err
		}
		s, err := ObserverSED(obj, mjd)
		if err != nil {
			return nil, err
		}
		row := Summary{
			Index:      i,
			ID:         obj.ID(),
			ObjectType: obj.ObjectType(),
			RA:         obj.RA(),
			Dec:        obj.Dec(),
			Mag:        s.ABMagnitude(),
			FluxScale:  1,
		}
		row.BaseMag = row.Mag
		if w, ok := obj.(starWrapper); ok {
			base, err := ObserverSED(w.Star(), mjd)
			if err != nil {
				return nil, err
			}
			row.BaseMag = base.ABMagnitude()
			row.FluxScale = s.MeanFlux() / base.MeanFlux()
		}
		if math.IsNaN(row.FluxScale) {
			row.FluxScale = 0
		}
		out = append(out, row)
	}
	return out, nil
}
