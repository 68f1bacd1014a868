package convert

import (
	"fmt"

	"github.com/cadbridge/bimimport/blocks"
	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/geomproc"
	"github.com/cadbridge/bimimport/textextract"
)

// ElementConverter allocates monotonically increasing element IDs and
// emits ConvertedElement records. One instance's counter is local to a
// single import (§5 shared-resources note); it is never shared across
// concurrent imports.
type ElementConverter struct {
	nextID int
	opts   config.ImportOptions
}

// NewElementConverter returns a converter whose ID counter starts at 1.
func NewElementConverter(opts config.ImportOptions) *ElementConverter {
	return &ElementConverter{nextID: 1, opts: opts}
}

func (c *ElementConverter) allocateID() string {
	id := fmt.Sprintf("CAD_IMPORT_%06d", c.nextID)
	c.nextID++
	return id
}

// ConvertGeometry emits one ConvertedElement per ProcessedGeometry,
// applying the category-specific parameter defaults from §4.6.
func (c *ElementConverter) ConvertGeometry(pg geomproc.ProcessedGeometry) ConvertedElement {
	params := NewParameterMap()
	switch pg.TargetCategory {
	case "Walls":
		params.Set("Base Constraint", "Level 1")
		params.Set("Top Constraint", "Level 2")
		params.Set("Unconnected Height", formatNumber(c.opts.DefaultWallHeight))
	case "Columns":
		params.Set("Base Level", "Level 1")
		params.Set("Top Level", "Level 2")
	case "Floors", "Ceilings":
		params.Set("Level", "Level 1")
	}

	return ConvertedElement{
		ID:          c.allocateID(),
		Category:    pg.TargetCategory,
		TypeName:    pg.TargetCategory,
		SourceLayer: pg.SourceLayer,
		Geometry:    pg.Geometry,
		Parameters:  params,
	}
}

// ConvertBlock emits one ConvertedElement per RecognizedBlock, with a
// TypeName synthesized from the block's element type and measured
// width/height (e.g. "Door - 900x2100mm").
func (c *ElementConverter) ConvertBlock(rb blocks.RecognizedBlock) ConvertedElement {
	category := categoryFor(rb.ElementType)
	typeName := fmt.Sprintf("%s - %dx%dmm", string(rb.ElementType), int(rb.Width), int(rb.Height))

	return ConvertedElement{
		ID:              c.allocateID(),
		Category:        category,
		TypeName:        typeName,
		SourceLayer:     rb.Layer,
		SourceBlockName: rb.BlockName,
		Geometry:        geomproc.PointGeometry{Position: rb.InsertionPoint},
		Parameters:      NewParameterMap(),
	}
}

// ConvertText emits one ConvertedElement per ExtractedText, carrying
// "Text" and "Text Size" parameters, honored only when ImportText is set.
func (c *ElementConverter) ConvertText(et textextract.ExtractedText) ConvertedElement {
	params := NewParameterMap()
	params.Set("Text", et.Content)
	params.Set("Text Size", formatNumber(et.Height))

	return ConvertedElement{
		ID:          c.allocateID(),
		Category:    string(et.Kind),
		TypeName:    string(et.Kind),
		SourceLayer: et.Layer,
		Parameters:  params,
	}
}

// ConvertDimension emits one ConvertedElement per ExtractedDimension,
// carrying "Value" and "Override Text" parameters, honored only when
// ImportDimensions is set.
func (c *ElementConverter) ConvertDimension(ed textextract.ExtractedDimension) ConvertedElement {
	params := NewParameterMap()
	params.Set("Value", formatNumber(ed.Measurement))
	params.Set("Override Text", ed.Text)

	return ConvertedElement{
		ID:          c.allocateID(),
		Category:    "Dimensions",
		TypeName:    "Dimensions",
		SourceLayer: ed.Layer,
		Parameters:  params,
	}
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
