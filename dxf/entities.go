package dxf

import (
	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/geometry"
)

// setCommonField applies the group codes shared by every entity variant
// (layer, color, line type) to base, reporting whether it recognized the
// code.
func setCommonField(base *cadmodel.EntityBase, pair Pair, codePage string) bool {
	switch pair.Code {
	case 8:
		base.Layer = decodeText(pair.Value, codePage)
		return true
	case 62:
		base.Color = parseIntOr(pair.Value, 0)
		return true
	case 6:
		base.LineType = pair.Value
		return true
	}
	return false
}

// readUntilNextEntity drains fields via handle until the next group-0
// record, which is pushed back for the caller.
func readUntilNextEntity(r *Reader, handle func(Pair)) error {
	for {
		pair, err := r.Next()
		if err != nil {
			return err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			return nil
		}
		handle(pair)
	}
}

func parseLine(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var start, end coordAccumulator

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			start.setX(p.Value)
		case 20:
			start.setY(p.Value)
		case 30:
			start.setZ(p.Value)
		case 11:
			end.setX(p.Value)
		case 21:
			end.setY(p.Value)
		case 31:
			end.setZ(p.Value)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.Line{EntityBase: base, Start: start.point(), End: end.point()}, nil
}

func parseCircle(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var center coordAccumulator
	var radius float64

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			center.setX(p.Value)
		case 20:
			center.setY(p.Value)
		case 30:
			center.setZ(p.Value)
		case 40:
			radius = parseFloatOr(p.Value, 0)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.Circle{EntityBase: base, Center: center.point(), Radius: radius}, nil
}

func parseArc(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var center coordAccumulator
	var radius, startAngle, endAngle float64

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			center.setX(p.Value)
		case 20:
			center.setY(p.Value)
		case 30:
			center.setZ(p.Value)
		case 40:
			radius = parseFloatOr(p.Value, 0)
		case 50:
			startAngle = parseFloatOr(p.Value, 0)
		case 51:
			endAngle = parseFloatOr(p.Value, 0)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.Arc{EntityBase: base, Center: center.point(), Radius: radius, StartAngle: startAngle, EndAngle: endAngle}, nil
}

func parseEllipse(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var center, majorAxis coordAccumulator
	var ratio, startAngle, endAngle float64

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			center.setX(p.Value)
		case 20:
			center.setY(p.Value)
		case 30:
			center.setZ(p.Value)
		case 11:
			majorAxis.setX(p.Value)
		case 21:
			majorAxis.setY(p.Value)
		case 31:
			majorAxis.setZ(p.Value)
		case 40:
			ratio = parseFloatOr(p.Value, 0)
		case 41:
			startAngle = parseFloatOr(p.Value, 0)
		case 42:
			endAngle = parseFloatOr(p.Value, 0)
		}
	})
	if err != nil {
		return nil, err
	}
	axisPoint := majorAxis.point()
	return cadmodel.Ellipse{
		EntityBase:     base,
		Center:         center.point(),
		MajorAxis:      geometry.Vector3D{X: axisPoint.X, Y: axisPoint.Y, Z: axisPoint.Z},
		MinorAxisRatio: ratio,
		StartAngle:     startAngle,
		EndAngle:       endAngle,
	}, nil
}

// parseText handles both TEXT and MTEXT; for MTEXT only the primary
// content code (1) is honored, per §6. Content is re-decoded through the
// document's code page, for files whose $DWGCODEPAGE is Shift-JIS.
func parseText(r *Reader, typeName, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var position coordAccumulator
	var content string
	var height, rotation float64

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			position.setX(p.Value)
		case 20:
			position.setY(p.Value)
		case 30:
			position.setZ(p.Value)
		case 1:
			content = p.Value
		case 40:
			height = parseFloatOr(p.Value, 0)
		case 50:
			rotation = parseFloatOr(p.Value, 0)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.Text{
		EntityBase: base,
		Content:    decodeText(content, codePage),
		Position:   position.point(),
		Height:     height,
		Rotation:   rotation,
		Style:      "STANDARD",
	}, nil
}

func parseDimension(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var defPoint, ext1, ext2 coordAccumulator
	var text string
	var measurement float64
	var dimType int

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 1:
			text = p.Value
		case 10:
			defPoint.setX(p.Value)
		case 20:
			defPoint.setY(p.Value)
		case 30:
			defPoint.setZ(p.Value)
		case 13:
			ext1.setX(p.Value)
		case 23:
			ext1.setY(p.Value)
		case 33:
			ext1.setZ(p.Value)
		case 14:
			ext2.setX(p.Value)
		case 24:
			ext2.setY(p.Value)
		case 34:
			ext2.setZ(p.Value)
		case 42:
			measurement = parseFloatOr(p.Value, 0)
		case 70:
			dimType = parseIntOr(p.Value, 0)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.Dimension{
		EntityBase:      base,
		Text:            text,
		DefinitionPoint: defPoint.point(),
		ExtLine1Start:   ext1.point(),
		ExtLine2Start:   ext2.point(),
		Measurement:     measurement,
		DimensionType:   dimType,
	}, nil
}

// parseInsert handles INSERT. Block ATTRIB children (group 66 "attributes
// follow") are declared but not parsed (§9 open question) — they are
// skipped like any other unrecognized entity by the outer dispatcher.
func parseInsert(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var insertion coordAccumulator
	var blockName string
	scaleX, scaleY, scaleZ := 1.0, 1.0, 1.0
	var rotation float64

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 2:
			blockName = decodeText(p.Value, codePage)
		case 10:
			insertion.setX(p.Value)
		case 20:
			insertion.setY(p.Value)
		case 30:
			insertion.setZ(p.Value)
		case 41:
			scaleX = parseFloatOr(p.Value, 1.0)
		case 42:
			scaleY = parseFloatOr(p.Value, 1.0)
		case 43:
			scaleZ = parseFloatOr(p.Value, 1.0)
		case 50:
			rotation = parseFloatOr(p.Value, 0)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.BlockReference{
		EntityBase:     base,
		BlockName:      blockName,
		InsertionPoint: insertion.point(),
		ScaleX:         scaleX,
		ScaleY:         scaleY,
		ScaleZ:         scaleZ,
		Rotation:       rotation,
		Attributes:     map[string]string{},
	}, nil
}

func parsePoint(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var position coordAccumulator

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			position.setX(p.Value)
		case 20:
			position.setY(p.Value)
		case 30:
			position.setZ(p.Value)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.Point{EntityBase: base, Position: position.point()}, nil
}

func parseSpline(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var degree int
	var points []coordAccumulator

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 71:
			degree = parseIntOr(p.Value, 0)
		case 10:
			points = append(points, coordAccumulator{})
			points[len(points)-1].setX(p.Value)
		case 20:
			if len(points) > 0 {
				points[len(points)-1].setY(p.Value)
			}
		case 30:
			if len(points) > 0 {
				points[len(points)-1].setZ(p.Value)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	controlPoints := make([]geometry.Point3D, len(points))
	for i, pt := range points {
		controlPoints[i] = pt.point()
	}
	return cadmodel.Spline{EntityBase: base, ControlPoints: controlPoints, Degree: degree}, nil
}

func parseHatch(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var patternName string
	var loop []coordAccumulator

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 2:
			patternName = decodeText(p.Value, codePage)
		case 10:
			loop = append(loop, coordAccumulator{})
			loop[len(loop)-1].setX(p.Value)
		case 20:
			if len(loop) > 0 {
				loop[len(loop)-1].setY(p.Value)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	boundary := make([]geometry.Point3D, len(loop))
	for i, pt := range loop {
		boundary[i] = pt.point()
	}
	return cadmodel.Hatch{EntityBase: base, PatternName: patternName, BoundaryLoop: boundary}, nil
}

func parseSolid(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var v1, v2, v3, v4 coordAccumulator

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			v1.setX(p.Value)
		case 20:
			v1.setY(p.Value)
		case 30:
			v1.setZ(p.Value)
		case 11:
			v2.setX(p.Value)
		case 21:
			v2.setY(p.Value)
		case 31:
			v2.setZ(p.Value)
		case 12:
			v3.setX(p.Value)
		case 22:
			v3.setY(p.Value)
		case 32:
			v3.setZ(p.Value)
		case 13:
			v4.setX(p.Value)
		case 23:
			v4.setY(p.Value)
		case 33:
			v4.setZ(p.Value)
		}
	})
	if err != nil {
		return nil, err
	}
	return cadmodel.Solid{EntityBase: base, Vertices: []geometry.Point3D{v1.point(), v2.point(), v3.point(), v4.point()}}, nil
}

func parseFace3D(r *Reader, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var v [4]coordAccumulator

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 10:
			v[0].setX(p.Value)
		case 20:
			v[0].setY(p.Value)
		case 30:
			v[0].setZ(p.Value)
		case 11:
			v[1].setX(p.Value)
		case 21:
			v[1].setY(p.Value)
		case 31:
			v[1].setZ(p.Value)
		case 12:
			v[2].setX(p.Value)
		case 22:
			v[2].setY(p.Value)
		case 32:
			v[2].setZ(p.Value)
		case 13:
			v[3].setX(p.Value)
		case 23:
			v[3].setY(p.Value)
		case 33:
			v[3].setZ(p.Value)
		}
	})
	if err != nil {
		return nil, err
	}
	var pts [4]geometry.Point3D
	for i := range v {
		pts[i] = v[i].point()
	}
	return cadmodel.Face3D{EntityBase: base, Vertices: pts}, nil
}

// parsePolyline handles both the modern single-entity LWPOLYLINE (where
// every vertex's fields are inline, group code 10 repeating to start each
// new vertex) and the legacy POLYLINE, whose vertices arrive as separate
// VERTEX entities terminated by SEQEND.
func parsePolyline(r *Reader, typeName, codePage string) (cadmodel.Entity, error) {
	var base cadmodel.EntityBase
	var closed bool
	var vertices []coordAccumulator
	var bulges []float64

	err := readUntilNextEntity(r, func(p Pair) {
		if setCommonField(&base, p, codePage) {
			return
		}
		switch p.Code {
		case 70:
			flags := parseIntOr(p.Value, 0)
			closed = flags&1 != 0
		case 10:
			vertices = append(vertices, coordAccumulator{})
			bulges = append(bulges, 0)
			vertices[len(vertices)-1].setX(p.Value)
		case 20:
			if len(vertices) > 0 {
				vertices[len(vertices)-1].setY(p.Value)
			}
		case 30:
			if len(vertices) > 0 {
				vertices[len(vertices)-1].setZ(p.Value)
			}
		case 42:
			if len(bulges) > 0 {
				bulges[len(bulges)-1] = parseFloatOr(p.Value, 0)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	if typeName == "POLYLINE" {
		if err := readLegacyVertices(r, &vertices, &bulges); err != nil {
			return nil, err
		}
	}

	points := make([]geometry.Point3D, len(vertices))
	for i, v := range vertices {
		points[i] = v.point()
	}
	return cadmodel.Polyline{EntityBase: base, Vertices: points, Bulges: bulges, IsClosed: closed}, nil
}

// readLegacyVertices reads VERTEX entities until SEQEND, the nested form
// the old-style POLYLINE entity uses instead of inline vertex fields.
func readLegacyVertices(r *Reader, vertices *[]coordAccumulator, bulges *[]float64) error {
	for {
		pair, err := r.Next()
		if err != nil {
			return err
		}
		if pair.Code != 0 {
			continue
		}
		switch pair.Value {
		case "SEQEND":
			return skipEntityFields(r)
		case "VERTEX":
			v := coordAccumulator{}
			bulge := 0.0
			err := readUntilNextEntity(r, func(p Pair) {
				switch p.Code {
				case 10:
					v.setX(p.Value)
				case 20:
					v.setY(p.Value)
				case 30:
					v.setZ(p.Value)
				case 42:
					bulge = parseFloatOr(p.Value, 0)
				}
			})
			if err != nil {
				return err
			}
			*vertices = append(*vertices, v)
			*bulges = append(*bulges, bulge)
		default:
			if err := skipEntityFields(r); err != nil {
				return err
			}
		}
	}
}
