package models

// Position is a single geolocation sample.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Region is the map viewport centered on the user: a position plus an
// optional accuracy radius in meters (nil when the provider does not
// report one).
type Region struct {
	Position
	Accuracy *float64
}
