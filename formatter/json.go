package formatter

import (
	"encoding/json"

	"github.com/paulmach/orb/geojson"
)

type documentBuilder struct{}

func newDocumentBuilder() *documentBuilder { return &documentBuilder{} }

// NewDocumentBuilder creates a new builder for serializing the output
// document.
func NewDocumentBuilder() *documentBuilder {
	return newDocumentBuilder()
}

// BuildJSON serializes a FeatureCollection as indented JSON. Key order
// is stable: struct fields are fixed and property maps marshal sorted.
func (db *documentBuilder) BuildJSON(fc *geojson.FeatureCollection) ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}
