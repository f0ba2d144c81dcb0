package geometry

import "github.com/pkg/errors"

// Box2D is an axis-aligned rectangle described by two opposite corners.
//
// A Box2D is always either a proper rectangle with xmin < xmax and
// ymin < ymax, or exactly the degenerate zero box (0, 0, 0, 0). Constructors
// silently collapse inverted or zero-extent bounds to the zero box, so a
// malformed box with crossed corners can never be observed.
type Box2D struct {
	xmin, ymin, xmax, ymax float64
}

// Box2DRecord is the serialized form of a Box2D.
type Box2DRecord struct {
	XMin float64 `json:"xmin"`
	YMin float64 `json:"ymin"`
	XMax float64 `json:"xmax"`
	YMax float64 `json:"ymax"`
}

// NewBox2D builds a Box2D from its corner coordinates. Inverted or
// zero-extent bounds collapse to the zero box; this is policy, not an error.
func NewBox2D(xmin, ymin, xmax, ymax float64) Box2D {
	if xmin >= xmax || ymin >= ymax {
		return Box2D{}
	}
	return Box2D{xmin: xmin, ymin: ymin, xmax: xmax, ymax: ymax}
}

// NewBox2DFromXYWH builds a Box2D from its top left vertex and its extents
// along the x and y axes. The same collapsing rule as NewBox2D applies.
func NewBox2DFromXYWH(x, y, width, height float64) Box2D {
	return NewBox2D(x, y, x+width, y+height)
}

// Box2DFromSlice builds a Box2D from an ordered (xmin, ymin, xmax, ymax)
// slice.
//
// Arguments:
// - values: Exactly 4 coordinates in xmin, ymin, xmax, ymax order.
//
// Returns:
// - The constructed Box2D, collapsed to the zero box if the bounds are
//   inverted.
// - An error if the slice does not hold exactly 4 coordinates.
func Box2DFromSlice(values []float64) (Box2D, error) {
	if len(values) != 4 {
		return Box2D{}, errors.Errorf(
			"require 4 dimensional data to construct Box2D, got %d", len(values))
	}
	return NewBox2D(values[0], values[1], values[2], values[3]), nil
}

// LoadBox2D rebuilds a Box2D from its serialized record.
//
// The record passes through the same validity rule as the constructors: a
// stored record with inverted bounds loads as the zero box rather than as a
// malformed rectangle.
func LoadBox2D(record Box2DRecord) Box2D {
	return NewBox2D(record.XMin, record.YMin, record.XMax, record.YMax)
}

// Dumps serializes the box into its record form. Well-formed boxes round-trip
// losslessly; the zero box dumps as all zeros.
func (b Box2D) Dumps() Box2DRecord {
	return Box2DRecord{XMin: b.xmin, YMin: b.ymin, XMax: b.xmax, YMax: b.ymax}
}

// XMin returns the minimum x coordinate.
func (b Box2D) XMin() float64 { return b.xmin }

// YMin returns the minimum y coordinate.
func (b Box2D) YMin() float64 { return b.ymin }

// XMax returns the maximum x coordinate.
func (b Box2D) XMax() float64 { return b.xmax }

// YMax returns the maximum y coordinate.
func (b Box2D) YMax() float64 { return b.ymax }

// TL returns the top left vertex.
func (b Box2D) TL() Vector2D { return Vector2D{X: b.xmin, Y: b.ymin} }

// BR returns the bottom right vertex.
func (b Box2D) BR() Vector2D { return Vector2D{X: b.xmax, Y: b.ymax} }

// Width returns the extent along the x axis.
func (b Box2D) Width() float64 { return b.xmax - b.xmin }

// Height returns the extent along the y axis.
func (b Box2D) Height() float64 { return b.ymax - b.ymin }

// Area returns the area of the box. It is 0 exactly when the box is the zero
// box.
func (b Box2D) Area() float64 { return b.Width() * b.Height() }

// Intersect returns the overlapping rectangle of two boxes.
//
// The corners of the overlap are the maximum of the two minimum corners and
// the minimum of the two maximum corners. When the boxes are disjoint those
// bounds come out inverted and the constructor collapses the result to the
// zero box, so a zero-area intersection means no overlap.
func (b Box2D) Intersect(o Box2D) Box2D {
	return NewBox2D(
		max(b.xmin, o.xmin),
		max(b.ymin, o.ymin),
		min(b.xmax, o.xmax),
		min(b.ymax, o.ymax),
	)
}

// IoU (Intersection over Union) measures the extent of overlap between two
// boxes: 0 means disjoint, 1 means identical.
//
// Union is computed by inclusion-exclusion, Area(b) + Area(o) minus the
// overlap counted twice. The caller must ensure at least one input has
// positive area: two degenerate boxes give a 0/0 division, which is a
// documented precondition violation rather than a guarded case.
func (b Box2D) IoU(o Box2D) float64 {
	intersect := b.Intersect(o).Area()
	union := b.Area() + o.Area() - intersect
	return intersect / union
}
