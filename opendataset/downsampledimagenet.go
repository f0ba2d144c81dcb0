package opendataset

import (
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nvr-ai/go-annotations/dataset"
)

// NameDownsampledImagenet is the registered name of the Downsampled Imagenet
// dataset.
const NameDownsampledImagenet = "DownsampledImagenet"

var downsampledImagenetSegments = []string{
	"train_32x32",
	"train_64x64",
	"valid_32x32",
	"valid_64x64",
}

// DownsampledImagenet loads the Downsampled Imagenet dataset.
//
// The root directory should hold the four fixed split directories
// (train_32x32, train_64x64, valid_32x32, valid_64x64), each containing the
// split's png images. The dataset carries no labels.
func DownsampledImagenet(path string) (*dataset.Dataset, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %q", path)
	}

	ds := dataset.NewDataset(NameDownsampledImagenet)
	for _, name := range downsampledImagenetSegments {
		segment, err := downsampledImagenetSegment(root, name)
		if err != nil {
			return nil, err
		}
		ds.AddSegment(segment)
		log.Info("loaded segment",
			zap.String("dataset", NameDownsampledImagenet),
			zap.String("segment", name),
			zap.Int("data", segment.Len()),
		)
	}
	return ds, nil
}

func downsampledImagenetSegment(root, name string) (*dataset.Segment, error) {
	segment := dataset.NewSegment(name)
	imagePaths, err := glob(filepath.Join(root, name, "*.png"))
	if err != nil {
		return nil, err
	}
	for _, imagePath := range imagePaths {
		segment.Append(dataset.NewData(imagePath))
	}
	return segment, nil
}
