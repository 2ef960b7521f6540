// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fluent-wallet/fluent-docs/pkg/internal/link"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const indexDoc = "index"

// WalkFunc is called for every entry with the chain of enclosing categories
type WalkFunc func(item Item, parents []*Category) error

// Walk visits the entries depth first in authored order
func (s Sidebar) Walk(fn WalkFunc) error {
	return walk(s, nil, fn)
}

func walk(items []Item, parents []*Category, fn WalkFunc) error {
	for _, item := range items {
		if err := fn(item, parents); err != nil {
			return err
		}
		if item.Category != nil {
			if err := walk(item.Category.Items, append(parents[:len(parents):len(parents)], item.Category), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// DocIDs lists the documents referenced by the sidebar, category links included
func (s Sidebar) DocIDs() []string {
	var ids []string
	_ = s.Walk(func(item Item, _ []*Category) error {
		if item.Category == nil {
			ids = append(ids, item.Doc)
		} else if l := item.Category.Link; l != nil && l.Type == TypeDoc {
			ids = append(ids, l.ID)
		}
		return nil
	})
	return ids
}

// Routes lists the pages the sidebar produces under the given route base path
func (s Sidebar) Routes(base string) ([]string, error) {
	var routes []string
	err := s.Walk(func(item Item, _ []*Category) error {
		var (
			route string
			err   error
		)
		switch {
		case item.Category == nil:
			route, err = DocRoute(base, item.Doc)
		case item.Category.Link == nil:
			return nil
		case item.Category.Link.Type == TypeDoc:
			route, err = DocRoute(base, item.Category.Link.ID)
		case item.Category.Link.Type == TypeGeneratedIndex:
			route, err = link.Build(base, "category", Slug(item.Category.Label))
		default:
			return nil
		}
		if err != nil {
			return err
		}
		routes = append(routes, route)
		return nil
	})
	return routes, err
}

// DocRoute is the page path of a document. Index documents are served as
// their directory.
func DocRoute(base, id string) (string, error) {
	if id == indexDoc {
		return link.Build(base, "/")
	}
	if dir, ok := strings.CutSuffix(id, "/"+indexDoc); ok {
		return link.Build(base, dir, "/")
	}
	return link.Build(base, id)
}

// Slug converts a category label to its URL segment
func Slug(label string) string {
	return strings.Join(strings.Fields(cases.Lower(language.Und).String(label)), "-")
}

// Validate reports malformed entries
func (s Sidebar) Validate() error {
	var errs *multierror.Error
	_ = s.Walk(func(item Item, parents []*Category) error {
		where := location(parents)
		if item.Category == nil {
			if strings.TrimSpace(item.Doc) == "" {
				errs = multierror.Append(errs, fmt.Errorf("%s: empty document id", where))
			}
			return nil
		}
		c := item.Category
		if strings.TrimSpace(c.Label) == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s: category without label", where))
		}
		if c.Link != nil {
			switch c.Link.Type {
			case TypeGeneratedIndex:
			case TypeDoc:
				if c.Link.ID == "" {
					errs = multierror.Append(errs, fmt.Errorf("%s: category %q links to an empty document id", where, c.Label))
				}
			default:
				errs = multierror.Append(errs, fmt.Errorf("%s: category %q has unsupported link type %q", where, c.Label, c.Link.Type))
			}
		}
		if len(c.Items) == 0 && c.Link == nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: category %q has no items and no link", where, c.Label))
		}
		return nil
	})
	return errs.ErrorOrNil()
}

func location(parents []*Category) string {
	if len(parents) == 0 {
		return "/"
	}
	labels := make([]string, 0, len(parents))
	for _, p := range parents {
		labels = append(labels, p.Label)
	}
	return strings.Join(labels, " > ")
}

// Names returns the sidebar names in sorted order
func (s Sidebars) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DocIDs lists the documents referenced by all sidebars
func (s Sidebars) DocIDs() []string {
	var ids []string
	for _, name := range s.Names() {
		ids = append(ids, s[name].DocIDs()...)
	}
	return ids
}

// Routes lists the pages all sidebars produce under the given route base path
func (s Sidebars) Routes(base string) ([]string, error) {
	var routes []string
	for _, name := range s.Names() {
		r, err := s[name].Routes(base)
		if err != nil {
			return nil, fmt.Errorf("sidebar %s: %w", name, err)
		}
		routes = append(routes, r...)
	}
	return routes, nil
}

// Validate reports malformed entries and documents listed more than once
func (s Sidebars) Validate() error {
	var errs *multierror.Error
	if len(s) == 0 {
		return fmt.Errorf("no sidebars defined")
	}
	seen := map[string]string{}
	for _, name := range s.Names() {
		if err := s[name].Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("sidebar %s: %w", name, err))
		}
		for _, id := range s[name].DocIDs() {
			if id == "" {
				continue
			}
			if first, ok := seen[id]; ok {
				errs = multierror.Append(errs, fmt.Errorf("sidebar %s: document %s is already listed in sidebar %s", name, id, first))
				continue
			}
			seen[id] = name
		}
	}
	return errs.ErrorOrNil()
}
