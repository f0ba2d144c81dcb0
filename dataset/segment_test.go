package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-annotations/label"
)

func TestDataDefaultsRemotePath(t *testing.T) {
	data := NewData("/datasets/train/cat.0.jpg")
	assert.Equal(t, "cat.0.jpg", data.TargetRemotePath)
}

func TestDataDumpsOmitsEmptyLabel(t *testing.T) {
	data := NewData("frame-0.jpg")
	assert.Equal(t, map[string]any{"localPath": "frame-0.jpg"}, data.Dumps())

	data.Label.Classification = &label.Classification{Category: "cat"}
	contents := data.Dumps()
	require.Contains(t, contents, "label")
}

func TestSegmentRoundTrip(t *testing.T) {
	segment := NewSegment("train")
	segment.Description = "labeled split"

	labeled := NewData("cat.0.jpg")
	labeled.Label.Classification = &label.Classification{Category: "cat"}
	segment.Append(labeled)

	boxed := NewData("frame-00001.jpg")
	boxed.Label.Box2D = []label.Box2D{label.NewBox2D(0, 0, 10, 10, "BOX.go")}
	segment.Append(boxed)

	loaded, err := LoadSegment(segment.Dumps())
	require.NoError(t, err)
	assert.Equal(t, segment.Name, loaded.Name)
	assert.Equal(t, segment.Description, loaded.Description)
	require.Equal(t, 2, loaded.Len())
	assert.Equal(t, "cat", loaded.Data[0].Label.Classification.Category)
	assert.Equal(t, "BOX.go", loaded.Data[1].Label.Box2D[0].Category)
}

func TestLoadSegmentErrors(t *testing.T) {
	_, err := LoadSegment(map[string]any{"data": []any{}})
	require.Error(t, err)

	_, err = LoadSegment(map[string]any{"name": "train"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data list")
}

func TestDatasetSegments(t *testing.T) {
	ds := NewDataset("LISATrafficLight")
	ds.IsContinuous = true
	created := ds.CreateSegment("dayClip01")
	created.Append(NewData("dayClip1--00000.jpg"))

	found, ok := ds.GetSegment("dayClip01")
	require.True(t, ok)
	assert.Same(t, created, found)

	_, ok = ds.GetSegment("nightClip01")
	assert.False(t, ok)

	contents := ds.Dumps()
	assert.Equal(t, "LISATrafficLight", contents["name"])
	assert.Equal(t, true, contents["isContinuous"])
	assert.Len(t, contents["segments"], 1)
}
