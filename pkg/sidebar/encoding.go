// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type rawItem struct {
	Type     string `yaml:"type" json:"type"`
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Category `yaml:",inline"`
}

// UnmarshalYAML decodes either a document id scalar or a typed mapping
func (i *Item) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var id string
		if err := value.Decode(&id); err != nil {
			return err
		}
		*i = DocItem(id)
		return nil
	case yaml.MappingNode:
		var raw rawItem
		if err := value.Decode(&raw); err != nil {
			return err
		}
		switch raw.Type {
		case TypeCategory:
			c := raw.Category
			*i = CategoryItem(&c)
		case TypeDoc:
			*i = DocItem(raw.ID)
		default:
			return fmt.Errorf("line %d: unsupported sidebar item type %q", value.Line, raw.Type)
		}
		return nil
	}
	return fmt.Errorf("line %d: sidebar item must be a document id or a mapping", value.Line)
}

// MarshalYAML encodes documents as scalars and categories as typed mappings
func (i Item) MarshalYAML() (interface{}, error) {
	if i.Category == nil {
		return i.Doc, nil
	}
	return rawItem{Type: TypeCategory, Category: *i.Category}, nil
}

// MarshalJSON encodes the item in the shape the documentation generator reads
func (i Item) MarshalJSON() ([]byte, error) {
	if i.Category == nil {
		return json.Marshal(i.Doc)
	}
	return json.Marshal(rawItem{Type: TypeCategory, Category: *i.Category})
}
