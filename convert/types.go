// Package convert emits ConvertedElement records — the pipeline's
// abstract, host-agnostic output — from processed geometry, recognized
// blocks, extracted text, and extracted dimensions (§4.6).
package convert

import (
	"encoding/json"

	"github.com/cadbridge/bimimport/geomproc"
)

// ConvertedElement is one emitted BIM element. Parameters is an ordered
// string-to-string map (represented here as a key slice beside a value
// map so iteration order matches insertion order, since Go maps have none).
type ConvertedElement struct {
	ID              string
	Category        string
	TypeName        string
	SourceLayer     string
	SourceBlockName string
	HostElementID   string // empty means unhosted
	Geometry        geomproc.Geometry
	Parameters      *ParameterMap
}

// Clone produces a deep copy of Parameters but shares the Geometry handle
// — geometry is immutable once an element is converted (§3 Lifecycle).
func (e ConvertedElement) Clone() ConvertedElement {
	clone := e
	clone.Parameters = e.Parameters.Clone()
	return clone
}

// ParameterMap is an insertion-ordered string-to-string map.
type ParameterMap struct {
	keys   []string
	values map[string]string
}

// NewParameterMap returns an empty ordered map.
func NewParameterMap() *ParameterMap {
	return &ParameterMap{values: make(map[string]string)}
}

// Set inserts or overwrites key=value, preserving first-insertion order.
func (m *ParameterMap) Set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *ParameterMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// MarshalJSON encodes the map as a plain string-to-string object. Field
// insertion order is not preserved in JSON output since encoding/json
// always sorts object keys for map values — callers that need order
// should use Keys instead.
func (m *ParameterMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.values)
}

// Keys returns parameter keys in insertion order.
func (m *ParameterMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Clone returns a deep copy.
func (m *ParameterMap) Clone() *ParameterMap {
	clone := NewParameterMap()
	for _, k := range m.keys {
		clone.Set(k, m.values[k])
	}
	return clone
}
