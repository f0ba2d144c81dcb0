package label

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-annotations/geometry"
)

// Classification is a whole-datum label: one category plus optional
// free-form attributes.
type Classification struct {
	Category   string
	Attributes map[string]any
}

// Dumps serializes the classification, holding only the fields that are
// present.
func (c *Classification) Dumps() map[string]any {
	contents := map[string]any{"category": c.Category}
	if len(c.Attributes) > 0 {
		contents["attributes"] = c.Attributes
	}
	return contents
}

// LoadClassification rebuilds a Classification from its record form.
func LoadClassification(contents map[string]any) (*Classification, error) {
	category, ok := contents["category"].(string)
	if !ok {
		return nil, errors.New("classification requires a category")
	}
	classification := &Classification{Category: category}
	if attributes, ok := contents["attributes"].(map[string]any); ok {
		classification.Attributes = attributes
	}
	return classification, nil
}

// Box2D is a 2D bounding box annotation: the geometric box plus its
// category, optional attributes and an optional tracked-instance id.
type Box2D struct {
	geometry.Box2D
	Category   string
	Attributes map[string]any
	Instance   string
}

// NewBox2D builds a labeled box over the given corner coordinates.
func NewBox2D(xmin, ymin, xmax, ymax float64, category string) Box2D {
	return Box2D{
		Box2D:    geometry.NewBox2D(xmin, ymin, xmax, ymax),
		Category: category,
	}
}

// Dumps serializes the labeled box. The geometric record nests under
// "box2d"; optional fields are held only when present.
func (b *Box2D) Dumps() map[string]any {
	record := b.Box2D.Dumps()
	contents := map[string]any{
		"box2d": map[string]any{
			"xmin": record.XMin,
			"ymin": record.YMin,
			"xmax": record.XMax,
			"ymax": record.YMax,
		},
	}
	dumpLabelFields(contents, b.Category, b.Attributes, b.Instance)
	return contents
}

// LoadBox2D rebuilds a labeled 2D box from its record form.
func LoadBox2D(contents map[string]any) (*Box2D, error) {
	raw, ok := contents["box2d"].(map[string]any)
	if !ok {
		return nil, errors.New("labeled box requires a box2d record")
	}
	record := geometry.Box2DRecord{}
	for key, target := range map[string]*float64{
		"xmin": &record.XMin,
		"ymin": &record.YMin,
		"xmax": &record.XMax,
		"ymax": &record.YMax,
	} {
		value, ok := toFloat(raw[key])
		if !ok {
			return nil, errors.Errorf("box2d record misses coordinate %q", key)
		}
		*target = value
	}

	box := &Box2D{Box2D: geometry.LoadBox2D(record)}
	box.Category, box.Attributes, box.Instance = loadLabelFields(contents)
	return box, nil
}

// Box3D is an oriented 3D box annotation: the geometric box plus its
// category, optional attributes and an optional tracked-instance id.
type Box3D struct {
	geometry.Box3D
	Category   string
	Attributes map[string]any
	Instance   string
}

// NewBox3D builds a labeled box over the given pose and size.
func NewBox3D(transform geometry.Transform3D, size geometry.Vector3D, category string) Box3D {
	return Box3D{
		Box3D:    geometry.NewBox3D(transform, size),
		Category: category,
	}
}

// Dumps serializes the labeled box. The geometric record nests under
// "box3d"; optional fields are held only when present.
func (b *Box3D) Dumps() map[string]any {
	record := b.Box3D.Dumps()
	contents := map[string]any{
		"box3d": map[string]any{
			"size":        vectorRecord(record.Size),
			"translation": vectorRecord(record.Translation),
			"rotation": map[string]any{
				"w": record.Rotation.W,
				"x": record.Rotation.X,
				"y": record.Rotation.Y,
				"z": record.Rotation.Z,
			},
		},
	}
	dumpLabelFields(contents, b.Category, b.Attributes, b.Instance)
	return contents
}

// LoadBox3D rebuilds a labeled 3D box from its record form.
func LoadBox3D(contents map[string]any) (*Box3D, error) {
	raw, ok := contents["box3d"].(map[string]any)
	if !ok {
		return nil, errors.New("labeled box requires a box3d record")
	}

	size, err := loadVector(raw, "size")
	if err != nil {
		return nil, err
	}
	translation, err := loadVector(raw, "translation")
	if err != nil {
		return nil, err
	}
	rotationRaw, ok := raw["rotation"].(map[string]any)
	if !ok {
		return nil, errors.New("box3d record misses rotation")
	}
	rotation := geometry.Quaternion{}
	for key, target := range map[string]*float64{
		"w": &rotation.W,
		"x": &rotation.X,
		"y": &rotation.Y,
		"z": &rotation.Z,
	} {
		value, ok := toFloat(rotationRaw[key])
		if !ok {
			return nil, errors.Errorf("box3d rotation misses component %q", key)
		}
		*target = value
	}

	box := &Box3D{
		Box3D: geometry.LoadBox3D(geometry.Box3DRecord{
			Size:        size,
			Translation: translation,
			Rotation:    rotation,
		}),
	}
	box.Category, box.Attributes, box.Instance = loadLabelFields(contents)
	return box, nil
}

// Label is the per-datum annotation container. Absent members are omitted
// from the serialized record.
type Label struct {
	Classification *Classification
	Box2D          []Box2D
	Box3D          []Box3D
}

// IsEmpty reports whether the label carries no annotations at all.
func (l *Label) IsEmpty() bool {
	return l.Classification == nil && l.Box2D == nil && l.Box3D == nil
}

// Dumps serializes the label container, holding only the members that are
// present. An empty but non-nil box list dumps as an empty list.
func (l *Label) Dumps() map[string]any {
	contents := map[string]any{}
	if l.Classification != nil {
		contents["classification"] = l.Classification.Dumps()
	}
	if l.Box2D != nil {
		boxes := make([]any, 0, len(l.Box2D))
		for i := range l.Box2D {
			boxes = append(boxes, l.Box2D[i].Dumps())
		}
		contents["box2d"] = boxes
	}
	if l.Box3D != nil {
		boxes := make([]any, 0, len(l.Box3D))
		for i := range l.Box3D {
			boxes = append(boxes, l.Box3D[i].Dumps())
		}
		contents["box3d"] = boxes
	}
	return contents
}

// LoadLabel rebuilds a label container from its record form.
func LoadLabel(contents map[string]any) (*Label, error) {
	label := &Label{}
	if raw, ok := contents["classification"].(map[string]any); ok {
		classification, err := LoadClassification(raw)
		if err != nil {
			return nil, err
		}
		label.Classification = classification
	}
	if raw, ok := contents["box2d"].([]any); ok {
		label.Box2D = make([]Box2D, 0, len(raw))
		for _, entry := range raw {
			record, ok := entry.(map[string]any)
			if !ok {
				return nil, errors.Errorf("invalid box2d label entry %v", entry)
			}
			box, err := LoadBox2D(record)
			if err != nil {
				return nil, err
			}
			label.Box2D = append(label.Box2D, *box)
		}
	}
	if raw, ok := contents["box3d"].([]any); ok {
		label.Box3D = make([]Box3D, 0, len(raw))
		for _, entry := range raw {
			record, ok := entry.(map[string]any)
			if !ok {
				return nil, errors.Errorf("invalid box3d label entry %v", entry)
			}
			box, err := LoadBox3D(record)
			if err != nil {
				return nil, err
			}
			label.Box3D = append(label.Box3D, *box)
		}
	}
	return label, nil
}

func dumpLabelFields(contents map[string]any, category string, attributes map[string]any, instance string) {
	if category != "" {
		contents["category"] = category
	}
	if len(attributes) > 0 {
		contents["attributes"] = attributes
	}
	if instance != "" {
		contents["instance"] = instance
	}
}

func loadLabelFields(contents map[string]any) (category string, attributes map[string]any, instance string) {
	category, _ = contents["category"].(string)
	attributes, _ = contents["attributes"].(map[string]any)
	instance, _ = contents["instance"].(string)
	return category, attributes, instance
}

func vectorRecord(v geometry.Vector3D) map[string]any {
	return map[string]any{"x": v.X, "y": v.Y, "z": v.Z}
}

func loadVector(contents map[string]any, key string) (geometry.Vector3D, error) {
	raw, ok := contents[key].(map[string]any)
	if !ok {
		return geometry.Vector3D{}, errors.Errorf("box3d record misses %q", key)
	}
	vector := geometry.Vector3D{}
	for component, target := range map[string]*float64{
		"x": &vector.X,
		"y": &vector.Y,
		"z": &vector.Z,
	} {
		value, ok := toFloat(raw[component])
		if !ok {
			return geometry.Vector3D{}, errors.Errorf("%s record misses component %q", key, component)
		}
		*target = value
	}
	return vector, nil
}
