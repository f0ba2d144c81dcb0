package geometry

// DefaultIoUAngleThreshold is the relative rotation angle, in degrees, above
// which Box3D.IoU reports 0 instead of approximating the overlap.
const DefaultIoUAngleThreshold = 5.0

// Box3D is an oriented cuboid: a pose carrying orientation and center
// location, plus per-axis extents measured along the box's own local axes
// before the pose is applied. Extents are assumed non-negative; this is not
// actively validated.
type Box3D struct {
	transform Transform3D
	size      Vector3D
}

// Box3DRecord is the serialized form of a Box3D.
type Box3DRecord struct {
	Size        Vector3D   `json:"size"`
	Translation Vector3D   `json:"translation"`
	Rotation    Quaternion `json:"rotation"`
}

// NewBox3D builds a Box3D from a pose and per-axis extents.
func NewBox3D(transform Transform3D, size Vector3D) Box3D {
	return Box3D{transform: transform, size: size}
}

// NewBox3DFromPose builds a Box3D from separate rotation and translation
// components plus per-axis extents.
func NewBox3DFromPose(rotation Quaternion, translation Vector3D, size Vector3D) Box3D {
	return Box3D{transform: NewTransform3D(rotation, translation), size: size}
}

// LoadBox3D rebuilds a Box3D from its serialized record.
func LoadBox3D(record Box3DRecord) Box3D {
	return Box3D{
		transform: Transform3D{
			Translation: record.Translation,
			Rotation:    record.Rotation,
		},
		size: record.Size,
	}
}

// Dumps serializes the box into its record form.
func (b Box3D) Dumps() Box3DRecord {
	return Box3DRecord{
		Size:        b.size,
		Translation: b.transform.Translation,
		Rotation:    b.transform.Rotation,
	}
}

// Transform returns the pose of the box.
func (b Box3D) Transform() Transform3D { return b.transform }

// Translation returns the center location of the box.
func (b Box3D) Translation() Vector3D { return b.transform.Translation }

// Rotation returns the orientation of the box.
func (b Box3D) Rotation() Quaternion { return b.transform.Rotation }

// Size returns the extents along the box's local axes.
func (b Box3D) Size() Vector3D { return b.size }

// Volume returns the volume of the box.
func (b Box3D) Volume() float64 { return b.size.X * b.size.Y * b.size.Z }

// ApplyTransform re-expresses a box in another reference frame, for example
// sensor frame to world frame. The returned box's pose is outer composed with
// the box's pose; the size is unchanged and the original box is untouched.
func ApplyTransform(outer Transform3D, box Box3D) Box3D {
	return Box3D{transform: outer.Mul(box.transform), size: box.size}
}

// lineIntersect returns the overlap length of two parallel 1-D segments:
// one of length1 centered at the origin, one of length2 centered
// midpointDistance away. Disjoint segments report 0.
func lineIntersect(length1, length2, midpointDistance float64) float64 {
	line1Min := -length1 / 2
	line1Max := length1 / 2
	line2Min := -length2/2 + midpointDistance
	line2Max := length2/2 + midpointDistance
	intersect := min(line1Max, line2Max) - max(line1Min, line2Min)
	if intersect > 0 {
		return intersect
	}
	return 0
}

// IoU approximates the intersection over union of two oriented boxes using
// the default angle threshold. See IoUWithinAngle.
func (b Box3D) IoU(other Box3D) float64 {
	return b.IoUWithinAngle(other, DefaultIoUAngleThreshold)
}

// IoUWithinAngle approximates the intersection over union of two oriented
// boxes.
//
// The other box is first re-expressed in b's local frame. If the relative
// rotation angle exceeds angleThreshold degrees the boxes are considered too
// differently oriented for an axis-aligned approximation and the result is 0.
// This is a deliberate approximation, not a true zero overlap.
//
// Within the gate, the overlap volume is the product of three independent
// 1-D interval intersections, one per local axis, each offset by the
// corresponding component of the relative translation. The approximation is
// exact only when the two boxes share near-identical orientation, which is
// precisely what the angle gate enforces. Replacing it with an exact
// polyhedral intersection would change results and break comparability with
// previously computed scores.
//
// The caller must ensure at least one input has positive volume; two
// degenerate boxes give a 0/0 division.
func (b Box3D) IoUWithinAngle(other Box3D, angleThreshold float64) float64 {
	local := ApplyTransform(b.transform.Inverse(), other)
	if local.Rotation().Degrees() > angleThreshold {
		return 0
	}

	offset := local.Translation()
	intersect := lineIntersect(b.size.X, local.size.X, offset.X) *
		lineIntersect(b.size.Y, local.size.Y, offset.Y) *
		lineIntersect(b.size.Z, local.size.Z, offset.Z)
	union := b.Volume() + local.Volume() - intersect
	return intersect / union
}
