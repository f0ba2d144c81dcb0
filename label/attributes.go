// Package label - Annotation values and the attribute schema describing them.
//
// Annotations attach to a datum through a Label, which holds an optional
// classification plus lists of labeled 2D and 3D boxes. The attribute schema
// side (Items, AttributeInfo) follows the JSON-schema way of describing an
// attribute: every field is optional and only the fields present on an object
// appear in its serialized form.
package label

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// AttributeType is one of the possible value types of an attribute.
type AttributeType string

const (
	// AttributeTypeArray is an attribute holding a list of values.
	AttributeTypeArray AttributeType = "array"
	// AttributeTypeBoolean is a true/false attribute.
	AttributeTypeBoolean AttributeType = "boolean"
	// AttributeTypeInteger is a whole-number attribute.
	AttributeTypeInteger AttributeType = "integer"
	// AttributeTypeNumber is a floating-point attribute.
	AttributeTypeNumber AttributeType = "number"
	// AttributeTypeString is a free-text attribute.
	AttributeTypeString AttributeType = "string"
	// AttributeTypeNull is an attribute that carries no value.
	AttributeTypeNull AttributeType = "null"
	// AttributeTypeInstance is an attribute referencing a tracked instance.
	AttributeTypeInstance AttributeType = "instance"
)

var attributeTypes = map[AttributeType]struct{}{
	AttributeTypeArray:    {},
	AttributeTypeBoolean:  {},
	AttributeTypeInteger:  {},
	AttributeTypeNumber:   {},
	AttributeTypeString:   {},
	AttributeTypeNull:     {},
	AttributeTypeInstance: {},
}

// ParseAttributeType validates a wire-format type name.
//
// Arguments:
// - name: The type name read from a schema record.
//
// Returns:
// - The corresponding AttributeType.
// - An error naming the supported types if the name is unknown.
func ParseAttributeType(name string) (AttributeType, error) {
	t := AttributeType(name)
	if _, ok := attributeTypes[t]; !ok {
		supported := make([]string, 0, len(attributeTypes))
		for known := range attributeTypes {
			supported = append(supported, string(known))
		}
		sort.Strings(supported)
		return "", errors.Errorf(
			"invalid attribute type %q, only support (%s)", name, strings.Join(supported, ", "))
	}
	return t, nil
}

// Items describes the schema of an attribute value. Every field is optional;
// absent fields are omitted from the serialized record.
type Items struct {
	// Type holds the allowed value types. Empty means the type is
	// unconstrained.
	Type []AttributeType
	// MultiType records that the wire form of Type was a list, so a
	// single-element list round-trips as a list instead of a bare string.
	MultiType bool
	// Enum lists all possible values of an enumeration attribute.
	Enum []any
	// Minimum is the lower bound of a number attribute.
	Minimum *float64
	// Maximum is the upper bound of a number attribute.
	Maximum *float64
	// Items describes the elements of an array attribute. It is only
	// meaningful when Type contains "array".
	Items *Items
}

func (i *Items) hasArray() bool {
	for _, t := range i.Type {
		if t == AttributeTypeArray {
			return true
		}
	}
	return false
}

// Dumps serializes the schema node into a record holding only the fields
// that are present.
func (i *Items) Dumps() map[string]any {
	contents := map[string]any{}
	if len(i.Type) > 0 {
		if i.MultiType || len(i.Type) > 1 {
			names := make([]any, len(i.Type))
			for k, t := range i.Type {
				names[k] = string(t)
			}
			contents["type"] = names
		} else {
			contents["type"] = string(i.Type[0])
		}
	}
	if i.Items != nil {
		contents["items"] = i.Items.Dumps()
	}
	if i.Enum != nil {
		contents["enum"] = i.Enum
	}
	if i.Minimum != nil {
		contents["minimum"] = *i.Minimum
	}
	if i.Maximum != nil {
		contents["maximum"] = *i.Maximum
	}
	return contents
}

// LoadItems rebuilds a schema node from its record form.
//
// A nested "items" record is only read when the type set contains "array",
// matching the dumped shape.
func LoadItems(contents map[string]any) (*Items, error) {
	items := &Items{}
	if err := items.load(contents); err != nil {
		return nil, err
	}
	return items, nil
}

func (i *Items) load(contents map[string]any) error {
	if rawType, ok := contents["type"]; ok {
		types, multi, err := parseTypeField(rawType)
		if err != nil {
			return err
		}
		i.Type = types
		i.MultiType = multi
		if i.hasArray() {
			nested, ok := contents["items"].(map[string]any)
			if ok {
				loaded, err := LoadItems(nested)
				if err != nil {
					return err
				}
				i.Items = loaded
			}
		}
	}
	if enum, ok := contents["enum"].([]any); ok {
		i.Enum = enum
	}
	if minimum, ok := toFloat(contents["minimum"]); ok {
		i.Minimum = &minimum
	}
	if maximum, ok := toFloat(contents["maximum"]); ok {
		i.Maximum = &maximum
	}
	return nil
}

func parseTypeField(raw any) ([]AttributeType, bool, error) {
	switch value := raw.(type) {
	case string:
		t, err := ParseAttributeType(value)
		if err != nil {
			return nil, false, err
		}
		return []AttributeType{t}, false, nil
	case []any:
		types := make([]AttributeType, 0, len(value))
		for _, single := range value {
			name, ok := single.(string)
			if !ok {
				return nil, false, errors.Errorf("invalid attribute type element %v", single)
			}
			t, err := ParseAttributeType(name)
			if err != nil {
				return nil, false, err
			}
			types = append(types, t)
		}
		return types, true, nil
	default:
		return nil, false, errors.Errorf("invalid attribute type field %v", raw)
	}
}

func toFloat(raw any) (float64, bool) {
	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	default:
		return 0, false
	}
}

// AttributeInfo is a named attribute schema with optional description and
// parent categories.
type AttributeInfo struct {
	Name        string
	Description string
	Items
	// ParentCategories limits the attribute to labels of the named
	// categories. Empty means the attribute applies to every category.
	ParentCategories []string
}

// Dumps serializes the attribute information, holding only the fields that
// are present.
func (a *AttributeInfo) Dumps() map[string]any {
	contents := a.Items.Dumps()
	contents["name"] = a.Name
	if a.Description != "" {
		contents["description"] = a.Description
	}
	if len(a.ParentCategories) > 0 {
		parents := make([]any, len(a.ParentCategories))
		for i, category := range a.ParentCategories {
			parents[i] = category
		}
		contents["parentCategories"] = parents
	}
	return contents
}

// LoadAttributeInfo rebuilds an AttributeInfo from its record form.
func LoadAttributeInfo(contents map[string]any) (*AttributeInfo, error) {
	info := &AttributeInfo{}
	name, ok := contents["name"].(string)
	if !ok {
		return nil, errors.New("attribute info requires a name")
	}
	info.Name = name
	if description, ok := contents["description"].(string); ok {
		info.Description = description
	}
	if err := info.Items.load(contents); err != nil {
		return nil, errors.Wrapf(err, "attribute %q", name)
	}
	if parents, ok := contents["parentCategories"].([]any); ok {
		for _, parent := range parents {
			category, ok := parent.(string)
			if !ok {
				return nil, errors.Errorf("attribute %q has invalid parent category %v", name, parent)
			}
			info.ParentCategories = append(info.ParentCategories, category)
		}
	}
	return info, nil
}
