package geometry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector2DFromSlice(t *testing.T) {
	v, err := Vector2DFromSlice([]float64{1.5, -2})
	require.NoError(t, err)
	assert.Equal(t, NewVector2D(1.5, -2), v)

	_, err = Vector2DFromSlice([]float64{1})
	require.Error(t, err)
	_, err = Vector2DFromSlice([]float64{1, 2, 3})
	require.Error(t, err)
}

func TestVector3DFromSlice(t *testing.T) {
	v, err := Vector3DFromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, NewVector3D(1, 2, 3), v)

	_, err = Vector3DFromSlice([]float64{1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 dimensional")
}

func TestVectorEquality(t *testing.T) {
	assert.Equal(t, NewVector3D(1, 2, 3), NewVector3D(1, 2, 3))
	assert.NotEqual(t, NewVector3D(1, 2, 3), NewVector3D(1, 2, 4))
}

func TestVector3DArithmetic(t *testing.T) {
	v := NewVector3D(1, -2, 3)
	assert.Equal(t, NewVector3D(3, 1, 3), v.Add(NewVector3D(2, 3, 0)))
	assert.Equal(t, NewVector3D(-1, 2, -3), v.Neg())
}

func TestVectorJSONRecord(t *testing.T) {
	raw, err := json.Marshal(NewVector3D(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2,"z":3}`, string(raw))

	var v Vector3D
	require.NoError(t, json.Unmarshal(raw, &v))
	assert.Equal(t, NewVector3D(1, 2, 3), v)
}
