package enums

import "fmt"

// Destination names the stream a routed row lands in. Every row reaches the
// raw stream unconditionally; DestinationRaw marks rows that reach only it
// (silently dropped exact duplicates).
type Destination string

const (
	DestinationRaw   Destination = "raw"
	DestinationClean Destination = "clean"
	DestinationBad   Destination = "bad"
)

var validDestinations = []Destination{
	DestinationRaw,
	DestinationClean,
	DestinationBad,
}

// String implements fmt.Stringer.
func (d Destination) String() string {
	return string(d)
}

// IsValid reports whether the destination is recognized.
func (d Destination) IsValid() bool {
	for _, candidate := range validDestinations {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDestination converts a raw string into a Destination.
func ParseDestination(value string) (Destination, error) {
	for _, candidate := range validDestinations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid destination %q", value)
}
