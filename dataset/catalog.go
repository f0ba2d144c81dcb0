package dataset

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-annotations/label"
)

// CategoryInfo names one category a label may take.
type CategoryInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Subcatalog is the schema of one label kind: the categories a label may
// take and the attributes it may carry.
type Subcatalog struct {
	Description string
	Categories  []CategoryInfo
	Attributes  []*label.AttributeInfo
}

// Dumps serializes the subcatalog, holding only the fields that are present.
func (s *Subcatalog) Dumps() map[string]any {
	contents := map[string]any{}
	if s.Description != "" {
		contents["description"] = s.Description
	}
	if len(s.Categories) > 0 {
		categories := make([]any, 0, len(s.Categories))
		for _, category := range s.Categories {
			record := map[string]any{"name": category.Name}
			if category.Description != "" {
				record["description"] = category.Description
			}
			categories = append(categories, record)
		}
		contents["categories"] = categories
	}
	if len(s.Attributes) > 0 {
		attributes := make([]any, 0, len(s.Attributes))
		for _, attribute := range s.Attributes {
			attributes = append(attributes, attribute.Dumps())
		}
		contents["attributes"] = attributes
	}
	return contents
}

func loadSubcatalog(contents map[string]any) (*Subcatalog, error) {
	subcatalog := &Subcatalog{}
	if description, ok := contents["description"].(string); ok {
		subcatalog.Description = description
	}
	if raw, ok := contents["categories"].([]any); ok {
		for _, entry := range raw {
			record, ok := entry.(map[string]any)
			if !ok {
				return nil, errors.Errorf("invalid category entry %v", entry)
			}
			name, ok := record["name"].(string)
			if !ok {
				return nil, errors.New("category entry requires a name")
			}
			category := CategoryInfo{Name: name}
			if description, ok := record["description"].(string); ok {
				category.Description = description
			}
			subcatalog.Categories = append(subcatalog.Categories, category)
		}
	}
	if raw, ok := contents["attributes"].([]any); ok {
		for _, entry := range raw {
			record, ok := entry.(map[string]any)
			if !ok {
				return nil, errors.Errorf("invalid attribute entry %v", entry)
			}
			attribute, err := label.LoadAttributeInfo(record)
			if err != nil {
				return nil, err
			}
			subcatalog.Attributes = append(subcatalog.Attributes, attribute)
		}
	}
	return subcatalog, nil
}

// Catalog is the label schema of a dataset: one optional subcatalog per
// label kind.
type Catalog struct {
	Classification *Subcatalog
	Box2D          *Subcatalog
	Box3D          *Subcatalog
}

// IsEmpty reports whether no subcatalog is present.
func (c *Catalog) IsEmpty() bool {
	return c.Classification == nil && c.Box2D == nil && c.Box3D == nil
}

// Dumps serializes the catalog, holding only the subcatalogs that are
// present.
func (c *Catalog) Dumps() map[string]any {
	contents := map[string]any{}
	if c.Classification != nil {
		contents["classification"] = c.Classification.Dumps()
	}
	if c.Box2D != nil {
		contents["box2d"] = c.Box2D.Dumps()
	}
	if c.Box3D != nil {
		contents["box3d"] = c.Box3D.Dumps()
	}
	return contents
}

// LoadCatalog rebuilds a catalog from its record form. Validation does not
// go beyond what is needed to parse the schema.
func LoadCatalog(contents map[string]any) (*Catalog, error) {
	catalog := &Catalog{}
	for key, target := range map[string]**Subcatalog{
		"classification": &catalog.Classification,
		"box2d":          &catalog.Box2D,
		"box3d":          &catalog.Box3D,
	} {
		raw, ok := contents[key].(map[string]any)
		if !ok {
			continue
		}
		subcatalog, err := loadSubcatalog(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "subcatalog %q", key)
		}
		*target = subcatalog
	}
	return catalog, nil
}

// LoadCatalogBytes parses a catalog from raw JSON.
func LoadCatalogBytes(raw []byte) (*Catalog, error) {
	var contents map[string]any
	if err := json.Unmarshal(raw, &contents); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}
	return LoadCatalog(contents)
}

// LoadCatalogFile parses a catalog from a JSON file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %q", path)
	}
	return LoadCatalogBytes(raw)
}
