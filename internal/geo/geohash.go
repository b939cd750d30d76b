// Package geo adapts geohash encoding to the engine's GeoHasher
// interface.
package geo

import (
	geohash "github.com/TomiHiltunen/geohash-golang"
)

// Hasher implements geohash cell encoding with the standard 8-cell
// neighborhood. It is stateless and safe for concurrent use.
type Hasher struct{}

// NewHasher returns a geohash-backed hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Encode returns the geohash cell id for a coordinate at the given
// precision (cell id length in characters).
func (h *Hasher) Encode(lat, lon float64, precision int) string {
	return geohash.EncodeWithPrecision(lat, lon, precision)
}

// Neighbors returns the 8 cells adjacent to the given cell at the same
// precision.
func (h *Hasher) Neighbors(cell string) []string {
	return geohash.CalculateAllAdjacent(cell)
}
