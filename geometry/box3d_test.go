package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIntersect(t *testing.T) {
	tests := []struct {
		name             string
		length1, length2 float64
		midpointDistance float64
		expected         float64
	}{
		{"Same segment", 4, 4, 0, 4},
		{"Far apart", 4, 4, 10, 0},
		{"Partial overlap", 4, 4, 2, 2},
		{"Touching endpoints", 4, 4, 4, 0},
		{"Contained", 10, 2, 1, 2},
		{"Negative offset", 4, 4, -2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lineIntersect(tt.length1, tt.length2, tt.midpointDistance)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestBox3DAccessors(t *testing.T) {
	rotation := quaternionFromAxisAngle(NewVector3D(0, 0, 1), 0.1)
	box := NewBox3DFromPose(rotation, NewVector3D(1, 2, 3), NewVector3D(4, 5, 6))

	assert.Equal(t, NewVector3D(1, 2, 3), box.Translation())
	assert.Equal(t, rotation, box.Rotation())
	assert.Equal(t, NewVector3D(4, 5, 6), box.Size())
	assert.Equal(t, 120.0, box.Volume())
}

func TestBox3DIoUWithItself(t *testing.T) {
	box := NewBox3DFromPose(
		quaternionFromAxisAngle(NewVector3D(0, 1, 0), 0.3),
		NewVector3D(5, -2, 1),
		NewVector3D(2, 3, 4),
	)
	assert.InDelta(t, 1.0, box.IoU(box), 1e-9)
}

func TestBox3DIoUTranslatedOverlap(t *testing.T) {
	// Two unit-pose 2x2x2 cubes offset by 1 along x: intersect 1*2*2 = 4,
	// union 8 + 8 - 4 = 12, iou = 1/3.
	size := NewVector3D(2, 2, 2)
	b1 := NewBox3D(IdentityTransform3D(), size)
	b2 := NewBox3DFromPose(IdentityQuaternion(), NewVector3D(1, 0, 0), size)
	assert.InDelta(t, 1.0/3, b1.IoU(b2), 1e-9)
	assert.InDelta(t, 1.0/3, b2.IoU(b1), 1e-9)
}

func TestBox3DIoUDisjoint(t *testing.T) {
	size := NewVector3D(2, 2, 2)
	b1 := NewBox3D(IdentityTransform3D(), size)
	b2 := NewBox3DFromPose(IdentityQuaternion(), NewVector3D(10, 0, 0), size)
	assert.Equal(t, 0.0, b1.IoU(b2))
}

func TestBox3DIoUAngleGate(t *testing.T) {
	// Overlapping in space but rotated 90 degrees apart: gated to 0 by the
	// default 5 degree threshold regardless of the spatial overlap.
	size := NewVector3D(2, 2, 2)
	b1 := NewBox3D(IdentityTransform3D(), size)
	b2 := NewBox3DFromPose(
		quaternionFromAxisAngle(NewVector3D(0, 0, 1), math.Pi/2),
		Vector3D{},
		size,
	)
	assert.Equal(t, 0.0, b1.IoU(b2))

	// A wider threshold lets the same pair through.
	assert.Greater(t, b1.IoUWithinAngle(b2, 95), 0.0)
}

func TestBox3DIoUSmallRelativeRotation(t *testing.T) {
	// A 3 degree relative rotation stays inside the default gate.
	size := NewVector3D(4, 4, 4)
	b1 := NewBox3D(IdentityTransform3D(), size)
	b2 := NewBox3DFromPose(
		quaternionFromAxisAngle(NewVector3D(0, 0, 1), math.Pi/60),
		Vector3D{},
		size,
	)
	assert.Greater(t, b1.IoU(b2), 0.9)
}

func TestBox3DIoUEvaluatedInFirstBoxFrame(t *testing.T) {
	// Both boxes share the same non-trivial pose, so in box1's local frame
	// they coincide exactly.
	pose := NewTransform3D(
		quaternionFromAxisAngle(NewVector3D(1, 0, 0), 1.0),
		NewVector3D(7, 8, 9),
	)
	b1 := NewBox3D(pose, NewVector3D(1, 2, 3))
	b2 := NewBox3D(pose, NewVector3D(1, 2, 3))
	assert.InDelta(t, 1.0, b1.IoU(b2), 1e-9)
}

func TestApplyTransformIdentity(t *testing.T) {
	box := NewBox3DFromPose(
		quaternionFromAxisAngle(NewVector3D(0, 0, 1), 0.5),
		NewVector3D(1, 2, 3),
		NewVector3D(4, 5, 6),
	)
	moved := ApplyTransform(IdentityTransform3D(), box)
	assert.Equal(t, box.Dumps(), moved.Dumps())
}

func TestApplyTransformLeavesSizeAndOriginal(t *testing.T) {
	box := NewBox3DFromPose(IdentityQuaternion(), NewVector3D(1, 0, 0), NewVector3D(2, 2, 2))
	outer := NewTransform3D(
		quaternionFromAxisAngle(NewVector3D(0, 0, 1), math.Pi/2),
		NewVector3D(0, 0, 5),
	)

	moved := ApplyTransform(outer, box)
	assert.Equal(t, box.Size(), moved.Size())
	assertVectorInDelta(t, NewVector3D(0, 1, 5), moved.Translation(), 1e-9)

	// The original box is untouched.
	assert.Equal(t, NewVector3D(1, 0, 0), box.Translation())
}

func TestBox3DRoundTrip(t *testing.T) {
	box := NewBox3DFromPose(
		quaternionFromAxisAngle(NewVector3D(0, 1, 0), 0.25),
		NewVector3D(1.5, -2.5, 3.5),
		NewVector3D(4, 5, 6),
	)

	loaded := LoadBox3D(box.Dumps())
	assert.Equal(t, box, loaded)
	assertVectorInDelta(t, box.Translation(), loaded.Translation(), 0)
	assert.Equal(t, box.Rotation(), loaded.Rotation())
	assert.Equal(t, box.Size(), loaded.Size())
}
