package branch

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Branch is a physical work location. Coordinate is nil when the branch has
// not been surveyed; check-ins there are always outside the area.
type Branch struct {
	Name       string
	Coordinate *Coordinate
}
