package geomproc

import (
	"context"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/classify"
	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/geometry"
	"github.com/cadbridge/bimimport/importerr"
)

// ProcessedGeometry is one entity promoted to unit-scaled, bulge-expanded
// geometry plus its resolved target category (§3).
type ProcessedGeometry struct {
	// SourceEntityIndex is a weak reference into the originating
	// model.Entities slice — never a strong pointer cycle back into the
	// CADModel (§9 Ownership).
	SourceEntityIndex int
	TargetCategory    string
	Geometry          Geometry
	GeometryType      GeometryType
	SourceLayer       string
}

// Processor converts classified entities into ProcessedGeometry values.
type Processor struct {
	settings config.ImportSettings
}

// NewProcessor builds a Processor bound to one import's tolerance
// settings.
func NewProcessor(settings config.ImportSettings) *Processor {
	return &Processor{settings: settings}
}

// Process walks model.Entities in order, converting every entity whose
// layer mapping has ShouldImport=true into a ProcessedGeometry. Order is
// preserved (§5 ordering guarantees). ctx is checked between entities;
// cancellation aborts with importerr.ErrCancelled and no partial results.
func (p *Processor) Process(ctx context.Context, model *cadmodel.Model, mappings map[string]classify.LayerMapping) ([]ProcessedGeometry, error) {
	var out []ProcessedGeometry
	for i, e := range model.Entities {
		select {
		case <-ctx.Done():
			return nil, importerr.ErrCancelled
		default:
		}

		layerName := e.Base().Layer
		if layerName == "" {
			layerName = "0"
		}
		mapping, ok := mappings[layerName]
		if !ok || !mapping.ShouldImport {
			continue
		}

		if pg, ok := p.convert(e, i, mapping); ok {
			out = append(out, pg)
		}
	}
	return out, nil
}

func (p *Processor) convert(e cadmodel.Entity, index int, mapping classify.LayerMapping) (ProcessedGeometry, bool) {
	factor := p.settings.UnitConversionFactor

	switch v := e.(type) {
	case cadmodel.Line:
		length := v.Start.Distance(v.End)
		if length < p.settings.MinLineLength {
			return ProcessedGeometry{}, false
		}
		geo := LineGeometry{Start: v.Start.Scale(factor), End: v.End.Scale(factor)}
		return p.wrap(index, mapping, geo), true

	case cadmodel.Polyline:
		if len(v.Vertices) < 2 {
			return ProcessedGeometry{}, false
		}
		geo := p.convertPolyline(v, factor)
		return p.wrap(index, mapping, geo), true

	case cadmodel.Circle:
		if v.Radius < p.settings.MinRadius {
			return ProcessedGeometry{}, false
		}
		geo := CircleGeometry{Center: v.Center.Scale(factor), Radius: v.Radius * factor}
		return p.wrap(index, mapping, geo), true

	case cadmodel.Arc:
		if v.Radius < p.settings.MinRadius {
			return ProcessedGeometry{}, false
		}
		geo := ArcGeometry{
			Center:     v.Center.Scale(factor),
			Radius:     v.Radius * factor,
			StartAngle: degToRad(v.StartAngle),
			EndAngle:   degToRad(v.EndAngle),
		}
		return p.wrap(index, mapping, geo), true

	case cadmodel.Ellipse:
		geo := EllipseGeometry{
			Center:         v.Center.Scale(factor),
			MajorAxis:      v.MajorAxis.Scale(factor),
			MinorAxisRatio: v.MinorAxisRatio,
			StartAngle:     v.StartAngle,
			EndAngle:       v.EndAngle,
		}
		return p.wrap(index, mapping, geo), true

	case cadmodel.Solid:
		if len(v.Vertices) < 3 {
			return ProcessedGeometry{}, false
		}
		geo := SolidGeometry{Vertices: scalePoints(v.Vertices, factor)}
		return p.wrap(index, mapping, geo), true

	default:
		return ProcessedGeometry{}, false
	}
}

func (p *Processor) wrap(index int, mapping classify.LayerMapping, geo Geometry) ProcessedGeometry {
	return ProcessedGeometry{
		SourceEntityIndex: index,
		TargetCategory:    mapping.RevitCategory,
		Geometry:          geo,
		GeometryType:      geo.Type(),
		SourceLayer:       mapping.CADLayerName,
	}
}

// convertPolyline expands a Polyline's vertices and bulges into the
// ordered segment list described in §4.3: n-1 segments when open, n
// segments (the closing one included) when closed.
func (p *Processor) convertPolyline(v cadmodel.Polyline, factor float64) PolylineGeometry {
	scaled := scalePoints(v.Vertices, factor)
	n := len(scaled)

	var segs []geometry.Segment
	for i := 0; i < n-1; i++ {
		segs = append(segs, segmentFor(scaled[i], scaled[i+1], v.BulgeAt(i)))
	}
	if v.IsClosed && n >= 2 {
		segs = append(segs, segmentFor(scaled[n-1], scaled[0], v.BulgeAt(n-1)))
	}
	return PolylineGeometry{Segments: segs, Closed: v.IsClosed}
}

func scalePoints(pts []geometry.Point3D, factor float64) []geometry.Point3D {
	out := make([]geometry.Point3D, len(pts))
	for i, p := range pts {
		out[i] = p.Scale(factor)
	}
	return out
}
