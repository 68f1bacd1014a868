// Package textextract classifies TEXT/MTEXT entity content and carries
// DIMENSION entities through to the element converter (§4.5).
package textextract

import (
	"regexp"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/geometry"
)

// TextKind tags which of the five categories a text string was
// classified as.
type TextKind string

const (
	KindRoomLabel      TextKind = "RoomLabel"
	KindGridLabel      TextKind = "GridLabel"
	KindLevelLabel     TextKind = "LevelLabel"
	KindDimensionText  TextKind = "DimensionText"
	KindAnnotation     TextKind = "Annotation"
)

var (
	roomPattern  = regexp.MustCompile(`(?i)room|space|area|zone|bedroom|bathroom|kitchen|living|office|storage`)
	gridPattern  = regexp.MustCompile(`^[A-Za-z]$|^[0-9]{1,2}$`)
	levelPattern = regexp.MustCompile(`(?i)level|floor|storey|story|ground|basement|roof`)
	// dimensionPattern matches an optional leading digit run with optional
	// decimal fraction, followed by an optional unit suffix.
	dimensionPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]+(mm|m|cm|ft|in|'|")?$`)
)

// Classify tags a single text content string per §4.5's fixed priority
// order: RoomLabel, GridLabel, LevelLabel, DimensionText, else
// Annotation.
func Classify(content string) TextKind {
	switch {
	case roomPattern.MatchString(content):
		return KindRoomLabel
	case gridPattern.MatchString(content):
		return KindGridLabel
	case levelPattern.MatchString(content):
		return KindLevelLabel
	case dimensionPattern.MatchString(content):
		return KindDimensionText
	default:
		return KindAnnotation
	}
}

// ExtractedText is a classified TEXT/MTEXT entity.
type ExtractedText struct {
	Kind     TextKind
	Content  string
	Position geometry.Point3D
	Height   float64
	Rotation float64
	Layer    string
}

// ExtractedDimension passes a DIMENSION entity's fields through
// unclassified, preserving measurement, text override, and extension
// points (§4.5).
type ExtractedDimension struct {
	Text            string
	DefinitionPoint geometry.Point3D
	ExtLine1Start   geometry.Point3D
	ExtLine2Start   geometry.Point3D
	Measurement     float64
	DimensionType   int
	Layer           string
}

// ExtractTexts classifies every Text entity with non-empty content.
func ExtractTexts(texts []cadmodel.Text) []ExtractedText {
	var out []ExtractedText
	for _, t := range texts {
		if t.Content == "" {
			continue
		}
		out = append(out, ExtractedText{
			Kind:     Classify(t.Content),
			Content:  t.Content,
			Position: t.Position,
			Height:   t.Height,
			Rotation: t.Rotation,
			Layer:    t.Layer,
		})
	}
	return out
}

// ExtractDimensions carries every Dimension entity through untouched
// aside from the struct conversion.
func ExtractDimensions(dims []cadmodel.Dimension) []ExtractedDimension {
	out := make([]ExtractedDimension, 0, len(dims))
	for _, d := range dims {
		out = append(out, ExtractedDimension{
			Text:            d.Text,
			DefinitionPoint: d.DefinitionPoint,
			ExtLine1Start:   d.ExtLine1Start,
			ExtLine2Start:   d.ExtLine2Start,
			Measurement:     d.Measurement,
			DimensionType:   d.DimensionType,
			Layer:           d.Layer,
		})
	}
	return out
}
