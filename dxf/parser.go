package dxf

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/geometry"
	"github.com/cadbridge/bimimport/importerr"
	"github.com/cadbridge/bimimport/internal/logx"
)

// Parse reads a DXF ASCII document from r and returns the parsed model.
// It drives a section dispatcher (HEADER/TABLES/BLOCKS/ENTITIES; CLASSES,
// OBJECTS and other sections are skipped) over the tagged-pair stream,
// per §4.1. A malformed entity aborts only that entity — parsing
// continues with the next one — matching §7's Parse error-recovery
// policy. The context is observed between top-level records.
func Parse(ctx context.Context, r io.Reader, settings config.ImportSettings) (*cadmodel.Model, error) {
	reader := NewReader(r)
	state := &parseState{model: cadmodel.NewModel()}

	for {
		if ctx.Err() != nil {
			return nil, importerr.ErrCancelled
		}

		pair, err := reader.Next()
		if err == io.EOF {
			return state.model, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading tagged pair: %w", err)
		}
		if pair.Code != 0 {
			continue
		}

		switch pair.Value {
		case "SECTION":
			if err := parseSection(ctx, reader, state); err != nil {
				return nil, err
			}
		case "EOF":
			return state.model, nil
		}
	}
}

// parseState threads the header-derived code page (for Asian-codepage
// text decoding, §6) through every sub-parser.
type parseState struct {
	model    *cadmodel.Model
	codePage string
}

func parseSection(ctx context.Context, r *Reader, state *parseState) error {
	name, err := expectValue(r, 2)
	if err != nil {
		return fmt.Errorf("reading section name: %w", err)
	}

	switch name {
	case "HEADER":
		return parseHeader(r, state)
	case "TABLES":
		return parseTables(r, state)
	case "BLOCKS":
		return parseBlocksSection(r, state)
	case "ENTITIES":
		return parseEntitiesSection(ctx, r, state)
	default:
		return skipToEndSec(r)
	}
}

func expectValue(r *Reader, code int) (string, error) {
	pair, err := r.Next()
	if err != nil {
		return "", err
	}
	if pair.Code != code {
		return "", fmt.Errorf("line %d: expected group code %d, got %d", r.Line(), code, pair.Code)
	}
	return pair.Value, nil
}

// skipToEndSec discards pairs until ENDSEC, for sections this parser does
// not interpret (CLASSES, OBJECTS, THUMBNAILIMAGE, ACDSDATA).
func skipToEndSec(r *Reader) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 && pair.Value == "ENDSEC" {
			return nil
		}
	}
}

// parseHeader reads $VARNAME/value pairs until ENDSEC, capturing the
// handful of header variables this pipeline cares about: $INSUNITS and
// $DWGCODEPAGE.
func parseHeader(r *Reader, state *parseState) error {
	var currentVar string
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 && pair.Value == "ENDSEC" {
			return nil
		}
		if pair.Code == 9 {
			currentVar = pair.Value
			continue
		}

		switch currentVar {
		case "$INSUNITS":
			if pair.Code == 70 {
				if raw, convErr := strconv.Atoi(strings.TrimSpace(pair.Value)); convErr == nil {
					state.model.Units = cadmodel.ParseInsUnits(raw)
				}
			}
		case "$DWGCODEPAGE":
			if pair.Code == 3 {
				state.codePage = strings.TrimSpace(pair.Value)
			}
		}
	}
}

// parseTables reads TABLE blocks; only the LAYER table is interpreted.
func parseTables(r *Reader, state *parseState) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code != 0 {
			continue
		}
		switch pair.Value {
		case "ENDSEC":
			return nil
		case "TABLE":
			if err := parseOneTable(r, state); err != nil {
				return err
			}
		}
	}
}

func parseOneTable(r *Reader, state *parseState) error {
	tableName, err := expectValue(r, 2)
	if err != nil {
		return fmt.Errorf("reading table name: %w", err)
	}

	for {
		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code != 0 {
			continue
		}
		if pair.Value == "ENDTAB" {
			return nil
		}
		if tableName == "LAYER" && pair.Value == "LAYER" {
			layer, err := parseLayerEntry(r)
			if err != nil {
				logx.Warn("dxf: skipping malformed LAYER entry: %v", err)
				continue
			}
			layer.Name = decodeText(layer.Name, state.codePage)
			state.model.Layers.Add(layer)
		}
	}
}

// parseLayerEntry reads fields up to (but not including) the next
// group-0 record, which it pushes back for the caller's loop to see.
func parseLayerEntry(r *Reader) (cadmodel.Layer, error) {
	layer := cadmodel.Layer{On: true, LineType: "CONTINUOUS"}
	for {
		pair, err := r.Next()
		if err != nil {
			return layer, err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			return layer, nil
		}
		switch pair.Code {
		case 2:
			layer.Name = pair.Value
		case 62:
			if c, convErr := strconv.Atoi(strings.TrimSpace(pair.Value)); convErr == nil {
				layer.Color = c
				if c < 0 {
					layer.Frozen = true
				}
			}
		case 6:
			layer.LineType = pair.Value
		case 70:
			if flags, convErr := strconv.Atoi(strings.TrimSpace(pair.Value)); convErr == nil {
				if flags&1 != 0 {
					layer.Frozen = true
				}
				if flags&4 != 0 {
					layer.Locked = true
				}
			}
		}
	}
}

// parseBlocksSection reads BLOCK...ENDBLK definitions into the model's
// block table. Entities inside a block are parsed with the same entity
// dispatcher as the ENTITIES section, appended to the block instead of
// the model's top-level entity list.
func parseBlocksSection(r *Reader, state *parseState) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code != 0 {
			continue
		}
		switch pair.Value {
		case "ENDSEC":
			return nil
		case "BLOCK":
			if err := parseOneBlock(r, state); err != nil {
				return err
			}
		}
	}
}

func parseOneBlock(r *Reader, state *parseState) error {
	block := cadmodel.Block{}
	var basePoint coordAccumulator

	for {
		pair, err := r.Next()
		if err != nil {
			return err
		}
		if pair.Code == 0 {
			if pair.Value == "ENDBLK" {
				block.BasePoint = basePoint.point()
				if err := skipToEndSec0(r, "ENDBLK"); err != nil {
					return err
				}
				state.model.Blocks.Add(block)
				return nil
			}
			// An entity starts here; parse it into the block.
			r.Unread(pair)
			entity, err := parseOneEntity(r, state)
			if err != nil {
				logx.Warn("dxf: skipping malformed entity in block %q: %v", block.Name, err)
				if err := skipToNextZero(r); err != nil {
					return err
				}
				continue
			}
			if entity != nil {
				block.Entities = append(block.Entities, entity)
			}
			continue
		}
		switch pair.Code {
		case 2:
			block.Name = decodeText(pair.Value, state.codePage)
		case 10:
			basePoint.setX(pair.Value)
		case 20:
			basePoint.setY(pair.Value)
		case 30:
			basePoint.setZ(pair.Value)
		}
	}
}

// skipToEndSec0 discards any trailing fields belonging to the entity
// whose name pair (e.g. "ENDBLK") has already been consumed, up to the
// next group-0 record, which it pushes back.
func skipToEndSec0(r *Reader, _ string) error {
	for {
		pair, err := r.Next()
		if err != nil {
			return err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			return nil
		}
	}
}

// parseEntitiesSection reads entities until ENDSEC, appending each to
// the model.
func parseEntitiesSection(ctx context.Context, r *Reader, state *parseState) error {
	for {
		if ctx.Err() != nil {
			return importerr.ErrCancelled
		}

		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code != 0 {
			continue
		}
		if pair.Value == "ENDSEC" {
			return nil
		}

		r.Unread(pair)
		entity, err := parseOneEntity(r, state)
		if err != nil {
			logx.Warn("dxf: skipping malformed entity: %v", err)
			if skipErr := skipToNextZero(r); skipErr != nil {
				return skipErr
			}
			continue
		}
		if entity != nil {
			state.model.AddEntity(entity)
		}
	}
}

// skipToNextZero discards pairs until the next group-0 record, which it
// pushes back, used to resynchronize after a malformed entity.
func skipToNextZero(r *Reader) error {
	for {
		pair, err := r.Next()
		if err != nil {
			return err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			return nil
		}
	}
}

// parseOneEntity expects the next pair to be the group-0 entity-type
// name and dispatches to the matching field reader.
func parseOneEntity(r *Reader, state *parseState) (cadmodel.Entity, error) {
	pair, err := r.Next()
	if err != nil {
		return nil, err
	}
	if pair.Code != 0 {
		return nil, fmt.Errorf("line %d: expected entity name, got group code %d", r.Line(), pair.Code)
	}

	switch pair.Value {
	case "LINE":
		return parseLine(r, state.codePage)
	case "LWPOLYLINE", "POLYLINE":
		return parsePolyline(r, pair.Value, state.codePage)
	case "CIRCLE":
		return parseCircle(r, state.codePage)
	case "ARC":
		return parseArc(r, state.codePage)
	case "ELLIPSE":
		return parseEllipse(r, state.codePage)
	case "TEXT", "MTEXT":
		return parseText(r, pair.Value, state.codePage)
	case "DIMENSION":
		return parseDimension(r, state.codePage)
	case "INSERT":
		return parseInsert(r, state.codePage)
	case "POINT":
		return parsePoint(r, state.codePage)
	case "SPLINE":
		return parseSpline(r, state.codePage)
	case "HATCH":
		return parseHatch(r, state.codePage)
	case "SOLID":
		return parseSolid(r, state.codePage)
	case "3DFACE":
		return parseFace3D(r, state.codePage)
	case "VERTEX", "SEQEND", "ATTRIB", "ATTDEF":
		// VERTEX/SEQEND belong to the old-style POLYLINE, handled inline
		// by parsePolyline; ATTRIB/ATTDEF (INSERT attributes) are
		// declared but not parsed (§9 open question).
		if err := skipEntityFields(r); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		if err := skipEntityFields(r); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// skipEntityFields discards every field of an entity this parser does
// not interpret, stopping before the next group-0 record.
func skipEntityFields(r *Reader) error {
	return skipToNextZero(r)
}

// coordAccumulator collects the (10,20,30) / (11,21,31) / ... coordinate
// triple for one point across out-of-band field arrivals, per §9's note
// on strict-type coordinate accumulation; it materializes to Point3D only
// on demand.
type coordAccumulator struct {
	x, y, z float64
}

func (c *coordAccumulator) setX(v string) { c.x = parseFloatOr(v, 0) }
func (c *coordAccumulator) setY(v string) { c.y = parseFloatOr(v, 0) }
func (c *coordAccumulator) setZ(v string) { c.z = parseFloatOr(v, 0) }

func (c *coordAccumulator) point() geometry.Point3D {
	return geometry.Point3D{X: c.x, Y: c.y, Z: c.z}
}

func parseFloatOr(v string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseIntOr(v string, fallback int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return i
}
