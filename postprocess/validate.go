package postprocess

import (
	"fmt"

	"github.com/cadbridge/bimimport/convert"
)

// ValidateGeometry runs each element's Geometry.Validate and returns one
// warning string per issue found. It never removes elements — issues are
// purely informational (§4.7).
func ValidateGeometry(elements []convert.ConvertedElement) []string {
	var warnings []string
	for _, e := range elements {
		if e.Geometry == nil {
			continue
		}
		for _, issue := range e.Geometry.Validate() {
			warnings = append(warnings, fmt.Sprintf("%s: %s", e.ID, issue))
		}
	}
	return warnings
}
