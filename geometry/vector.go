// Package geometry - Geometric primitives for object-detection annotations.
//
// The package provides axis-aligned 2D boxes (Box2D) and oriented 3D boxes
// (Box3D) together with the intersection-over-union routines used to compare
// them, plus the vector, quaternion and rigid-transform values they are built
// from. Every type is an immutable value object: operations return fresh
// values and never mutate their inputs, so concurrent use needs no locking.
package geometry

import "github.com/pkg/errors"

// Vector2D is a point or directed displacement in 2D space.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector2D returns a Vector2D with the given components.
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Vector2DFromSlice builds a Vector2D from an ordered (x, y) slice.
//
// Arguments:
// - values: Exactly 2 components in x, y order.
//
// Returns:
// - The constructed Vector2D.
// - An error if the slice does not hold exactly 2 components.
func Vector2DFromSlice(values []float64) (Vector2D, error) {
	if len(values) != 2 {
		return Vector2D{}, errors.Errorf(
			"require 2 dimensional data to construct Vector2D, got %d", len(values))
	}
	return Vector2D{X: values[0], Y: values[1]}, nil
}

// Vector3D is a point or directed displacement in 3D space.
type Vector3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewVector3D returns a Vector3D with the given components.
func NewVector3D(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Vector3DFromSlice builds a Vector3D from an ordered (x, y, z) slice.
//
// Arguments:
// - values: Exactly 3 components in x, y, z order.
//
// Returns:
// - The constructed Vector3D.
// - An error if the slice does not hold exactly 3 components.
func Vector3DFromSlice(values []float64) (Vector3D, error) {
	if len(values) != 3 {
		return Vector3D{}, errors.Errorf(
			"require 3 dimensional data to construct Vector3D, got %d", len(values))
	}
	return Vector3D{X: values[0], Y: values[1], Z: values[2]}, nil
}

// Add returns the component-wise sum v + o.
func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Neg returns the component-wise negation of v.
func (v Vector3D) Neg() Vector3D {
	return Vector3D{X: -v.X, Y: -v.Y, Z: -v.Z}
}
