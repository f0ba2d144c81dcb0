package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Quaternion represents a 3D rotation as a unit quaternion in (w, x, y, z)
// order. Unit length is assumed in the mathematical sense but is not
// re-enforced after every operation; Degrees normalizes internally so the
// reported angle stays meaningful for near-unit values.
type Quaternion struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternion returns a Quaternion with the given components.
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// QuaternionFromSlice builds a Quaternion from an ordered (w, x, y, z) slice.
func QuaternionFromSlice(values []float64) (Quaternion, error) {
	if len(values) != 4 {
		return Quaternion{}, errors.Errorf(
			"require 4 dimensional data to construct Quaternion, got %d", len(values))
	}
	return Quaternion{W: values[0], X: values[1], Y: values[2], Z: values[3]}, nil
}

// QuaternionFromRotationMatrix converts a 3x3 rotation matrix into a
// Quaternion using the trace method. The matrix is assumed to be a proper
// rotation (orthonormal, determinant +1).
func QuaternionFromRotationMatrix(m [3][3]float64) Quaternion {
	trace := m[0][0] + m[1][1] + m[2][2]
	var q Quaternion
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(trace+1)
		q = Quaternion{
			W: s / 4,
			X: (m[2][1] - m[1][2]) / s,
			Y: (m[0][2] - m[2][0]) / s,
			Z: (m[1][0] - m[0][1]) / s,
		}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := 2 * math.Sqrt(1+m[0][0]-m[1][1]-m[2][2])
		q = Quaternion{
			W: (m[2][1] - m[1][2]) / s,
			X: s / 4,
			Y: (m[0][1] + m[1][0]) / s,
			Z: (m[0][2] + m[2][0]) / s,
		}
	case m[1][1] > m[2][2]:
		s := 2 * math.Sqrt(1+m[1][1]-m[0][0]-m[2][2])
		q = Quaternion{
			W: (m[0][2] - m[2][0]) / s,
			X: (m[0][1] + m[1][0]) / s,
			Y: s / 4,
			Z: (m[1][2] + m[2][1]) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m[2][2]-m[0][0]-m[1][1])
		q = Quaternion{
			W: (m[1][0] - m[0][1]) / s,
			X: (m[0][2] + m[2][0]) / s,
			Y: (m[1][2] + m[2][1]) / s,
			Z: s / 4,
		}
	}
	return q
}

// Mul returns the Hamilton product q * o, the rotation that applies o first
// and q second. Composition is associative but not commutative.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Inverse returns the rotation that undoes q, so that q.Mul(q.Inverse()) is
// the identity rotation up to floating tolerance. For a unit quaternion this
// is the conjugate; the squared norm is divided out to stay correct for
// near-unit values.
func (q Quaternion) Inverse() Quaternion {
	n := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
	return Quaternion{W: q.W / n, X: -q.X / n, Y: -q.Y / n, Z: -q.Z / n}
}

// Rotate applies the rotation to a point, computed as q * (0, v) * q^-1.
func (q Quaternion) Rotate(v Vector3D) Vector3D {
	p := q.Mul(Quaternion{X: v.X, Y: v.Y, Z: v.Z}).Mul(q.Inverse())
	return Vector3D{X: p.X, Y: p.Y, Z: p.Z}
}

// Degrees returns the magnitude of the rotation angle in degrees, in the
// range [0, 180]. The identity rotation reports 0.
func (q Quaternion) Degrees() float64 {
	// Wrap 2*atan2(|v|, w) into (-pi, pi] so a rotation just past a full
	// turn reads as a small angle rather than one close to 360 degrees.
	angle := 2 * math.Atan2(math.Sqrt(q.X*q.X+q.Y*q.Y+q.Z*q.Z), q.W)
	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	angle -= math.Pi
	return math.Abs(angle * 180 / math.Pi)
}
