package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-annotations/geometry"
)

func TestClassificationRoundTrip(t *testing.T) {
	classification := &Classification{
		Category:   "day",
		Attributes: map[string]any{"weather": "sunny"},
	}

	loaded, err := LoadClassification(classification.Dumps())
	require.NoError(t, err)
	assert.Equal(t, classification, loaded)
}

func TestClassificationDumpsOmitsEmptyAttributes(t *testing.T) {
	classification := &Classification{Category: "night"}
	assert.Equal(t, map[string]any{"category": "night"}, classification.Dumps())
}

func TestLabeledBox2DRoundTrip(t *testing.T) {
	box := NewBox2D(10, 20, 30, 40, "BOX.stop")
	box.Instance = "track-7"
	box.Attributes = map[string]any{"occluded": false}

	loaded, err := LoadBox2D(box.Dumps())
	require.NoError(t, err)
	assert.Equal(t, &box, loaded)
	assert.Equal(t, 400.0, loaded.Area())
}

func TestLabeledBox2DDumpsNestsGeometry(t *testing.T) {
	box := NewBox2D(1, 2, 3, 4, "car")
	contents := box.Dumps()
	assert.Equal(t, map[string]any{
		"xmin": 1.0, "ymin": 2.0, "xmax": 3.0, "ymax": 4.0,
	}, contents["box2d"])
	assert.Equal(t, "car", contents["category"])
	assert.NotContains(t, contents, "attributes")
	assert.NotContains(t, contents, "instance")
}

func TestLoadBox2DRequiresRecord(t *testing.T) {
	_, err := LoadBox2D(map[string]any{"category": "car"})
	require.Error(t, err)

	_, err = LoadBox2D(map[string]any{
		"box2d": map[string]any{"xmin": 1.0, "ymin": 2.0, "xmax": 3.0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ymax")
}

func TestLabeledBox3DRoundTrip(t *testing.T) {
	transform := geometry.NewTransform3D(
		geometry.NewQuaternion(0.92387953251, 0, 0, 0.38268343236),
		geometry.NewVector3D(1, 2, 3),
	)
	box := NewBox3D(transform, geometry.NewVector3D(4, 5, 6), "truck")
	box.Instance = "track-1"

	loaded, err := LoadBox3D(box.Dumps())
	require.NoError(t, err)
	assert.Equal(t, &box, loaded)
	assert.Equal(t, 120.0, loaded.Volume())
}

func TestLabelDumpsOnlyPresentMembers(t *testing.T) {
	label := &Label{}
	assert.True(t, label.IsEmpty())
	assert.Empty(t, label.Dumps())

	// An empty but non-nil box list dumps as an empty list; loaders rely on
	// this to mark a datum as labeled with no boxes.
	label.Box2D = []Box2D{}
	contents := label.Dumps()
	assert.Equal(t, []any{}, contents["box2d"])
	assert.NotContains(t, contents, "classification")
	assert.NotContains(t, contents, "box3d")
}

func TestLabelRoundTrip(t *testing.T) {
	label := &Label{
		Classification: &Classification{Category: "day"},
		Box2D: []Box2D{
			NewBox2D(0, 0, 10, 10, "BOX.go"),
			NewBox2D(5, 5, 25, 25, "BOX.stop"),
		},
	}

	loaded, err := LoadLabel(label.Dumps())
	require.NoError(t, err)
	assert.Equal(t, label, loaded)
}
