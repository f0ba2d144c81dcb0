// Package dataset - Local dataset containers for annotated data.
//
// A Dataset is a named collection of Segments; a Segment is an ordered list
// of Data, each pointing at a local file and carrying its annotations. The
// catalog describes the label schema shared by every segment. All containers
// serialize to the same record shapes the annotation layer consumes.
package dataset

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-annotations/label"
)

// Data is a single datum: a local file plus its annotations.
type Data struct {
	// LocalPath locates the file on disk.
	LocalPath string
	// TargetRemotePath is the path the datum keeps inside the dataset. It
	// defaults to the base name of LocalPath.
	TargetRemotePath string
	// Timestamp orders data inside a time-continuous segment. Absent unless
	// set.
	Timestamp *float64
	// Label holds the annotations attached to the datum.
	Label label.Label
}

// NewData returns a Data for the given local file, with the remote path
// defaulted to the file's base name.
func NewData(localPath string) *Data {
	return &Data{
		LocalPath:        localPath,
		TargetRemotePath: filepath.Base(localPath),
	}
}

// Dumps serializes the datum. The label member is held only when the datum
// carries annotations.
func (d *Data) Dumps() map[string]any {
	contents := map[string]any{"localPath": d.TargetRemotePath}
	if d.Timestamp != nil {
		contents["timestamp"] = *d.Timestamp
	}
	if !d.Label.IsEmpty() {
		contents["label"] = d.Label.Dumps()
	}
	return contents
}

// LoadData rebuilds a Data from its record form.
func LoadData(contents map[string]any) (*Data, error) {
	localPath, ok := contents["localPath"].(string)
	if !ok {
		return nil, errors.New("data record requires a localPath")
	}
	data := NewData(localPath)
	if timestamp, ok := contents["timestamp"].(float64); ok {
		data.Timestamp = &timestamp
	}
	if raw, ok := contents["label"].(map[string]any); ok {
		loaded, err := label.LoadLabel(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "data %q", localPath)
		}
		data.Label = *loaded
	}
	return data, nil
}
