package opendataset

import (
	_ "embed"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nvr-ai/go-annotations/dataset"
	"github.com/nvr-ai/go-annotations/label"
)

// NameDogsVsCats is the registered name of the Dogs vs. Cats dataset.
const NameDogsVsCats = "Dogs vs. Cats"

//go:embed catalogs/dogsvscats.json
var dogsVsCatsCatalog []byte

// The train split carries classification labels, the test split does not.
var dogsVsCatsSegments = []struct {
	name    string
	labeled bool
}{
	{"train", true},
	{"test", false},
}

// DogsVsCats loads the Dogs vs. Cats dataset.
//
// The root directory should be laid out as::
//
//	<path>/
//	    train/
//	        cat.0.jpg
//	        dog.0.jpg
//	        ...
//	    test/
//	        1000.jpg
//	        ...
//
// The category of a labeled image is the first three characters of its file
// name ("cat" or "dog").
func DogsVsCats(path string) (*dataset.Dataset, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %q", path)
	}

	ds := dataset.NewDataset(NameDogsVsCats)
	if err := ds.LoadCatalogBytes(dogsVsCatsCatalog); err != nil {
		return nil, err
	}

	for _, split := range dogsVsCatsSegments {
		segment := ds.CreateSegment(split.name)
		imagePaths, err := glob(filepath.Join(root, split.name, "*.jpg"))
		if err != nil {
			return nil, err
		}
		for _, imagePath := range imagePaths {
			data := dataset.NewData(imagePath)
			if split.labeled {
				base := filepath.Base(imagePath)
				if len(base) < 3 {
					return nil, errors.Errorf("cannot read category from file name %q", base)
				}
				data.Label.Classification = &label.Classification{Category: base[:3]}
			}
			segment.Append(data)
		}
		log.Info("loaded segment",
			zap.String("dataset", NameDogsVsCats),
			zap.String("segment", split.name),
			zap.Int("data", segment.Len()),
		)
	}
	return ds, nil
}
