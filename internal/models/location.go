// Package models defines the record types persisted by the storage layer.
package models

// Coordinates is a geographic point in floating-point degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Location is a bookmarked painting spot. Name is the uniqueness key
// (compared case-insensitively on insert and removal). Locations are never
// mutated in place; they are created once and removed by name.
type Location struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Coords returns the location's coordinates as a value.
func (l Location) Coords() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Validate reports whether the location is well-formed: a non-empty name and
// coordinates within valid degree ranges.
func (l Location) Validate() error {
	return validateStruct(l)
}
