package dataset

import "github.com/pkg/errors"

// Segment is an ordered list of Data inside a dataset. In a time-continuous
// dataset the order of the data carries the time continuity.
type Segment struct {
	Name        string
	Description string
	Data        []*Data
}

// NewSegment returns an empty segment with the given name.
func NewSegment(name string) *Segment {
	return &Segment{Name: name}
}

// Append adds a datum to the end of the segment.
func (s *Segment) Append(data *Data) {
	s.Data = append(s.Data, data)
}

// Len returns the number of data in the segment.
func (s *Segment) Len() int {
	return len(s.Data)
}

// Dumps serializes the segment and all of its data.
func (s *Segment) Dumps() map[string]any {
	data := make([]any, 0, len(s.Data))
	for _, d := range s.Data {
		data = append(data, d.Dumps())
	}
	contents := map[string]any{
		"name": s.Name,
		"data": data,
	}
	if s.Description != "" {
		contents["description"] = s.Description
	}
	return contents
}

// LoadSegment rebuilds a segment from its record form.
func LoadSegment(contents map[string]any) (*Segment, error) {
	name, ok := contents["name"].(string)
	if !ok {
		return nil, errors.New("segment record requires a name")
	}
	segment := NewSegment(name)
	if description, ok := contents["description"].(string); ok {
		segment.Description = description
	}
	raw, ok := contents["data"].([]any)
	if !ok {
		return nil, errors.Errorf("segment %q requires a data list", name)
	}
	for _, entry := range raw {
		record, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.Errorf("segment %q has invalid data entry %v", name, entry)
		}
		data, err := LoadData(record)
		if err != nil {
			return nil, errors.Wrapf(err, "segment %q", name)
		}
		segment.Append(data)
	}
	return segment, nil
}
