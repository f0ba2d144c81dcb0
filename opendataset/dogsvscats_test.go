package opendataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("fake image"), 0o644))
	}
}

func TestDogsVsCats(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "train"), "cat.0.jpg", "cat.1.jpg", "dog.0.jpg")
	writeFiles(t, filepath.Join(root, "test"), "1000.jpg", "1001.jpg")

	ds, err := DogsVsCats(root)
	require.NoError(t, err)
	assert.Equal(t, NameDogsVsCats, ds.Name)

	require.NotNil(t, ds.Catalog.Classification)
	require.Len(t, ds.Catalog.Classification.Categories, 2)

	train, ok := ds.GetSegment("train")
	require.True(t, ok)
	require.Equal(t, 3, train.Len())
	assert.Equal(t, "cat", train.Data[0].Label.Classification.Category)
	assert.Equal(t, "dog", train.Data[2].Label.Classification.Category)

	test, ok := ds.GetSegment("test")
	require.True(t, ok)
	require.Equal(t, 2, test.Len())
	assert.True(t, test.Data[0].Label.IsEmpty())
	assert.Equal(t, "1000.jpg", test.Data[0].TargetRemotePath)
}

func TestDogsVsCatsMissingSplit(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "train"), "cat.0.jpg")

	_, err := DogsVsCats(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file matches")
}

func TestLoaderRegistry(t *testing.T) {
	assert.Equal(t, []string{NameDogsVsCats, NameDownsampledImagenet, NameLISATrafficLight}, Names())

	loader, err := Get(NameDogsVsCats)
	require.NoError(t, err)
	require.NotNil(t, loader)

	_, err = Get("Imagenet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loader registered")
}
