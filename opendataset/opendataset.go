// Package opendataset - Loaders turning public datasets on disk into
// annotated Dataset objects.
//
// Each loader takes the root directory of one published dataset, walks its
// files, parses whatever annotation format the dataset ships with and
// returns a fully populated dataset.Dataset. Loaders are registered by
// dataset name so tools can look them up dynamically.
package opendataset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nvr-ai/go-annotations/dataset"
)

// Loader loads one published dataset from its root directory.
type Loader func(path string) (*dataset.Dataset, error)

var loaders = map[string]Loader{
	NameDogsVsCats:          DogsVsCats,
	NameDownsampledImagenet: DownsampledImagenet,
	NameLISATrafficLight:    LISATrafficLight,
}

// Get returns the loader registered under the given dataset name.
func Get(name string) (Loader, error) {
	loader, ok := loaders[name]
	if !ok {
		return nil, errors.Errorf("no loader registered for dataset %q, known datasets: %s",
			name, strings.Join(Names(), ", "))
	}
	return loader, nil
}

// Names returns the registered dataset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(loaders))
	for name := range loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var log = zap.NewNop()

// SetLogger routes loader progress logging to the given logger. Loaders are
// silent by default.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log = logger
}

// glob returns the sorted matches of a filename pattern. Zero matches is an
// error: every published dataset layout guarantees the files exist, so an
// empty match means the root directory is wrong.
func glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "glob %q", pattern)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no file matches %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// globRecursive returns the sorted paths of all files under root whose name
// ends with suffix, searching every subdirectory.
func globRecursive(root, suffix string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %q", root)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no %q file found under %q", suffix, root)
	}
	sort.Strings(matches)
	return matches, nil
}
