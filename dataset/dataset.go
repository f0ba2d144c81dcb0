package dataset

import "github.com/pkg/errors"

// Dataset is a named collection of segments sharing one label catalog.
type Dataset struct {
	Name string
	// IsContinuous marks datasets whose segments are time-continuous frame
	// sequences.
	IsContinuous bool
	Catalog      Catalog
	Segments     []*Segment
}

// NewDataset returns an empty dataset with the given name.
func NewDataset(name string) *Dataset {
	return &Dataset{Name: name}
}

// CreateSegment creates a new empty segment, appends it to the dataset and
// returns it.
func (d *Dataset) CreateSegment(name string) *Segment {
	segment := NewSegment(name)
	d.Segments = append(d.Segments, segment)
	return segment
}

// AddSegment appends an existing segment to the dataset.
func (d *Dataset) AddSegment(segment *Segment) {
	d.Segments = append(d.Segments, segment)
}

// GetSegment returns the segment with the given name.
func (d *Dataset) GetSegment(name string) (*Segment, bool) {
	for _, segment := range d.Segments {
		if segment.Name == name {
			return segment, true
		}
	}
	return nil, false
}

// LoadCatalogBytes parses raw catalog JSON into the dataset's catalog.
func (d *Dataset) LoadCatalogBytes(raw []byte) error {
	catalog, err := LoadCatalogBytes(raw)
	if err != nil {
		return errors.Wrapf(err, "dataset %q", d.Name)
	}
	d.Catalog = *catalog
	return nil
}

// LoadCatalogFile parses a catalog JSON file into the dataset's catalog.
func (d *Dataset) LoadCatalogFile(path string) error {
	catalog, err := LoadCatalogFile(path)
	if err != nil {
		return errors.Wrapf(err, "dataset %q", d.Name)
	}
	d.Catalog = *catalog
	return nil
}

// Dumps serializes the dataset with its catalog and every segment.
func (d *Dataset) Dumps() map[string]any {
	segments := make([]any, 0, len(d.Segments))
	for _, segment := range d.Segments {
		segments = append(segments, segment.Dumps())
	}
	contents := map[string]any{
		"name":     d.Name,
		"segments": segments,
	}
	if d.IsContinuous {
		contents["isContinuous"] = true
	}
	if !d.Catalog.IsEmpty() {
		contents["catalog"] = d.Catalog.Dumps()
	}
	return contents
}
