package cadmodel

import (
	"strings"

	"github.com/cadbridge/bimimport/geometry"
)

// Block is a named definition: a base point and the entities drawn
// relative to it. Block names are unique and looked up case-insensitively,
// matching the block recognizer's lookup rule (§4.4).
type Block struct {
	Name      string
	BasePoint geometry.Point3D
	Entities  []Entity
}

// BlockTable indexes blocks by case-folded name.
type BlockTable struct {
	byFold map[string]*Block
	order  []*Block
}

func NewBlockTable() *BlockTable {
	return &BlockTable{byFold: make(map[string]*Block)}
}

func (t *BlockTable) Add(b Block) {
	key := strings.ToLower(b.Name)
	stored := b
	t.byFold[key] = &stored
	t.order = append(t.order, &stored)
}

func (t *BlockTable) Lookup(name string) (Block, bool) {
	b, ok := t.byFold[strings.ToLower(name)]
	if !ok {
		return Block{}, false
	}
	return *b, true
}

func (t *BlockTable) All() []Block {
	out := make([]Block, 0, len(t.order))
	for _, b := range t.order {
		out = append(out, *b)
	}
	return out
}

// BoundingBox computes the XY-plane bounding box of the block's
// entities, used by the block recognizer to derive width/height/depth
// under a reference's scale (§4.4). Entity kinds that contribute no
// point geometry (Text, Dimension) are ignored.
func (b Block) BoundingBox() geometry.BoundingBox {
	box := geometry.EmptyBoundingBox()
	for _, e := range b.Entities {
		switch v := e.(type) {
		case Line:
			box = box.Expand(v.Start).Expand(v.End)
		case Polyline:
			for _, vert := range v.Vertices {
				box = box.Expand(vert)
			}
		case Circle:
			box = expandByRadius(box, v.Center, v.Radius)
		case Arc:
			box = expandByRadius(box, v.Center, v.Radius)
		case Ellipse:
			r := v.MajorAxis.Length()
			box = expandByRadius(box, v.Center, r)
		case Solid:
			for _, vert := range v.Vertices {
				box = box.Expand(vert)
			}
		case Point:
			box = box.Expand(v.Position)
		}
	}
	return box
}

func expandByRadius(box geometry.BoundingBox, center geometry.Point3D, radius float64) geometry.BoundingBox {
	box = box.Expand(geometry.Point3D{X: center.X - radius, Y: center.Y - radius, Z: center.Z})
	box = box.Expand(geometry.Point3D{X: center.X + radius, Y: center.Y + radius, Z: center.Z})
	return box
}

// HasArc reports whether the block's entities include at least one ARC.
func (b Block) HasArc() bool {
	for _, e := range b.Entities {
		if _, ok := e.(Arc); ok {
			return true
		}
	}
	return false
}

// HasCircle reports whether the block's entities include at least one
// CIRCLE.
func (b Block) HasCircle() bool {
	for _, e := range b.Entities {
		if _, ok := e.(Circle); ok {
			return true
		}
	}
	return false
}

// LineCount returns the number of LINE entities directly in the block.
func (b Block) LineCount() int {
	n := 0
	for _, e := range b.Entities {
		if _, ok := e.(Line); ok {
			n++
		}
	}
	return n
}
