// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar

const (
	// TypeCategory marks a category entry
	TypeCategory = "category"
	// TypeDoc marks a document entry or a category link to a document
	TypeDoc = "doc"
	// TypeGeneratedIndex marks a category link to a generated index page
	TypeGeneratedIndex = "generated-index"
)

// Item is a sidebar entry. It is either a document id or a category.
type Item struct {
	Doc      string
	Category *Category
}

// Category groups sidebar entries under a label
type Category struct {
	Label string `yaml:"label" json:"label"`
	// Link makes the category clickable, nil keeps it a plain group
	Link *Link `yaml:"link,omitempty" json:"link,omitempty"`
	// Collapsed nil uses the generator default
	Collapsed *bool  `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []Item `yaml:"items" json:"items"`
}

// Link is the page a category points to
type Link struct {
	Type string `yaml:"type" json:"type"`
	ID   string `yaml:"id,omitempty" json:"id,omitempty"`
}

// Sidebar is an ordered tree of entries
type Sidebar []Item

// Sidebars are the named sidebars of one docs mount
type Sidebars map[string]Sidebar

// DocItem creates a document entry
func DocItem(id string) Item {
	return Item{Doc: id}
}

// CategoryItem creates a category entry
func CategoryItem(c *Category) Item {
	return Item{Category: c}
}

// IsCategory reports whether the item is a category
func (i Item) IsCategory() bool {
	return i.Category != nil
}

func (i Item) String() string {
	if i.Category != nil {
		return "category " + i.Category.Label
	}
	return "doc " + i.Doc
}
