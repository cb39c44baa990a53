package mm2019

import (
	"fmt"

	"github.com/im7mortal/UTM"
)

// Station is a monitoring point georeferenced in the model's UTM
// coordinates.
type Station struct {
	Nam     string  `yaml:"name"`
	E       float64 `yaml:"easting"`
	N       float64 `yaml:"northing"`
	Zone    int     `yaml:"utm_zone"`
	Segment int     `yaml:"segment"` // SFR segment the station sits on
}

// LatLon converts the station's easting/northing to geographic coordinates
// (northern hemisphere assumed).
func (s *Station) LatLon() (float64, float64, error) {
	lat, lng, err := UTM.ToLatLon(s.E, s.N, s.Zone, "", true)
	if err != nil {
		return 0., 0., fmt.Errorf("Station.LatLon: %v -- (x,y)=(%f, %f)", err, s.E, s.N)
	}
	return lat, lng, nil
}
