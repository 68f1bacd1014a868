package postprocess

import (
	"github.com/cadbridge/bimimport/classify"
	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/convert"
)

// Result is the post-processing pass's output: the final element slice,
// accumulated warnings, and the WallsJoined statistic (§6 Statistics,
// §8 wall-join monotonicity).
type Result struct {
	Elements    []convert.ConvertedElement
	Warnings    []string
	WallsJoined int
}

// Run applies the enabled post-processing stages in the fixed order
// named in §4.7: dedup, wall-join, opening-hosting, validate, warn. Each
// stage only runs if its corresponding option is set.
func Run(elements []convert.ConvertedElement, mappings map[string]classify.LayerMapping, opts config.ImportOptions, settings config.ImportSettings) Result {
	result := Result{Elements: elements}

	if opts.RemoveDuplicates {
		result.Elements = RemoveDuplicates(result.Elements)
	}

	if opts.JoinWalls {
		joined, count := JoinWalls(result.Elements, settings.JoinTolerance)
		result.Elements = joined
		result.WallsJoined = count
	}

	if opts.InsertOpeningsIntoWalls {
		result.Elements = InsertOpeningsIntoWalls(result.Elements, settings.OpeningHostTolerance)
	}

	if opts.ValidateGeometry {
		result.Warnings = append(result.Warnings, ValidateGeometry(result.Elements)...)
	}

	result.Warnings = append(result.Warnings, GenerateWarnings(result.Elements, mappings, settings.MinElementVolume)...)

	return result
}
