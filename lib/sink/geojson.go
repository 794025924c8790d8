package sink

import (
	"github.com/kpawlik/geojson"

	"github.com/xoolive/rs1090/lib/tracker/realtime"
)

// GeoJSONSnapshot renders a realtime store snapshot as a FeatureCollection,
// one Point feature per aircraft with a resolved position.
func GeoJSONSnapshot(states []realtime.AircraftState) *geojson.FeatureCollection {
	features := make([]*geojson.Feature, 0, len(states))
	for _, st := range states {
		if st.Position == nil {
			continue
		}
		coord := geojson.Coordinate{st.Position.Lon(), st.Position.Lat()}
		point := geojson.NewPoint(coord)
		props := map[string]interface{}{
			"icao24":   st.ICAO,
			"callsign": st.Callsign,
			"squawk":   st.Squawk,
			"altitude": st.Altitude,
		}
		features = append(features, geojson.NewFeature(point, props, nil))
	}
	return geojson.NewFeatureCollection(features)
}
