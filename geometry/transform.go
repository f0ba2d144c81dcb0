package geometry

import "github.com/pkg/errors"

// Transform3D is a rigid-body motion: a rotation followed by a translation.
// It carries the pose of an oriented box, and more generally maps points from
// one reference frame into another.
type Transform3D struct {
	Translation Vector3D   `json:"translation"`
	Rotation    Quaternion `json:"rotation"`
}

// NewTransform3D returns a Transform3D with the given rotation and
// translation.
func NewTransform3D(rotation Quaternion, translation Vector3D) Transform3D {
	return Transform3D{Translation: translation, Rotation: rotation}
}

// IdentityTransform3D returns the identity motion: zero translation and the
// identity rotation.
func IdentityTransform3D() Transform3D {
	return Transform3D{Rotation: IdentityQuaternion()}
}

// Transform3DFromMatrix builds a Transform3D from a 3x4 or 4x4 pose matrix
// whose upper-left 3x3 block is the rotation and whose last column is the
// translation.
//
// Arguments:
// - matrix: 3 or 4 rows of exactly 4 values each. A fourth row is ignored.
//
// Returns:
// - The constructed Transform3D.
// - An error if the matrix shape is not 3x4 or 4x4.
func Transform3DFromMatrix(matrix [][]float64) (Transform3D, error) {
	if len(matrix) != 3 && len(matrix) != 4 {
		return Transform3D{}, errors.Errorf(
			"require a 3x4 or 4x4 matrix to construct Transform3D, got %d rows", len(matrix))
	}
	var rotation [3][3]float64
	var translation Vector3D
	for i := 0; i < 3; i++ {
		if len(matrix[i]) != 4 {
			return Transform3D{}, errors.Errorf(
				"require a 3x4 or 4x4 matrix to construct Transform3D, row %d has %d columns",
				i, len(matrix[i]))
		}
		copy(rotation[i][:], matrix[i][:3])
	}
	translation = Vector3D{X: matrix[0][3], Y: matrix[1][3], Z: matrix[2][3]}
	return Transform3D{
		Translation: translation,
		Rotation:    QuaternionFromRotationMatrix(rotation),
	}, nil
}

// Mul composes two motions: the returned transform applies o first and t
// second, so t.Mul(o).Apply(p) == t.Apply(o.Apply(p)). Composition is
// associative but not commutative.
func (t Transform3D) Mul(o Transform3D) Transform3D {
	return Transform3D{
		Translation: t.Apply(o.Translation),
		Rotation:    t.Rotation.Mul(o.Rotation),
	}
}

// Inverse returns the motion that undoes t, so that t.Inverse().Mul(t) is the
// identity transform up to floating tolerance.
func (t Transform3D) Inverse() Transform3D {
	rotation := t.Rotation.Inverse()
	return Transform3D{
		Translation: rotation.Rotate(t.Translation).Neg(),
		Rotation:    rotation,
	}
}

// Apply maps a point through the rigid motion: rotate, then translate.
func (t Transform3D) Apply(point Vector3D) Vector3D {
	return t.Rotation.Rotate(point).Add(t.Translation)
}
