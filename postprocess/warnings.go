package postprocess

import (
	"fmt"

	"github.com/cadbridge/bimimport/classify"
	"github.com/cadbridge/bimimport/convert"
)

// GenerateWarnings reports every layer that fell through to the Default
// mapping source and was nonetheless imported, plus a count of elements
// whose bounding-box volume is below minVolume (§4.7).
func GenerateWarnings(elements []convert.ConvertedElement, mappings map[string]classify.LayerMapping, minVolume float64) []string {
	var warnings []string

	for _, m := range mappings {
		if m.MappingSource == classify.SourceDefault && m.ShouldImport {
			warnings = append(warnings, fmt.Sprintf("layer %q defaulted to GenericModel", m.CADLayerName))
		}
	}

	lowVolumeCount := 0
	for _, e := range elements {
		if e.Geometry == nil {
			continue
		}
		if e.Geometry.BoundingBox().Volume() < minVolume {
			lowVolumeCount++
		}
	}
	if lowVolumeCount > 0 {
		warnings = append(warnings, fmt.Sprintf("%d elements have bounding-box volume below the minimum threshold", lowVolumeCount))
	}

	return warnings
}
