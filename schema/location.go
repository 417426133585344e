package schema

import (
	"fmt"
	"math"
)

// Location is the public coordinate pair of a ticket or a volunteer profile.
// It is serialized as a two element array: [latitude, longitude].
type Location [2]float64

func (l Location) Latitude() float64 {
	return l[0]
}

func (l Location) Longitude() float64 {
	return l[1]
}

// Point splits a location into the stored (x, y) columns.
func (l Location) Point() (float64, float64) {
	return l[0], l[1]
}

// LocationFromPoint composes the public location from stored (x, y) columns.
// It is the inverse of Point.
func LocationFromPoint(x, y float64) Location {
	return Location{x, y}
}

// Validate makes sure both coordinates are finite numbers
func (l Location) Validate() error {
	for _, v := range l {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid location %v", [2]float64(l))
		}
	}
	return nil
}
