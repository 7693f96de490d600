// Package formatter assembles and serializes the output document.
//
// It is organized into:
// - builder.go: FeatureCollection assembly (one LineString feature per trip)
// - colors.go: per-trip stroke color assignment
// - json.go: JSON serialization
//
// All display rounding (coordinates, distances, durations, speeds)
// happens here, never in the trips package.
package formatter
