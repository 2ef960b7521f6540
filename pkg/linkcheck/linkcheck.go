// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package linkcheck

import (
	"fmt"
	"sort"

	"github.com/fluent-wallet/fluent-docs/pkg/internal/link"
	"github.com/fluent-wallet/fluent-docs/pkg/redirects"
	"github.com/fluent-wallet/fluent-docs/pkg/sidebar"
	"github.com/fluent-wallet/fluent-docs/pkg/site"
	"k8s.io/klog/v2"
)

// Routes is the set of pages the site serves, keyed by link.Key
type Routes map[string]string

// Has reports whether the site path is a known page
func (r Routes) Has(p string) bool {
	_, ok := r[link.Key(p)]
	return ok
}

// Paths returns the known pages in sorted order
func (r Routes) Paths() []string {
	paths := make([]string, 0, len(r))
	for _, p := range r {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Checker validates the links of a site configuration against the pages
// its docs mounts produce
type Checker struct {
	Config *site.Config
	// Sidebars of every docs mount, keyed by docs plugin id
	Sidebars map[string]sidebar.Sidebars

	routes Routes
	docs   map[string]map[string]bool
}

// NewChecker collects the pages of every docs mount
func NewChecker(cfg *site.Config, sidebars map[string]sidebar.Sidebars) (*Checker, error) {
	c := &Checker{
		Config:   cfg,
		Sidebars: sidebars,
		routes:   Routes{},
		docs:     map[string]map[string]bool{},
	}
	for _, d := range cfg.Docs {
		s, ok := sidebars[d.PluginID()]
		if !ok {
			return nil, fmt.Errorf("no sidebars loaded for docs %s", d.PluginID())
		}
		paths, err := s.Routes(d.RouteBase())
		if err != nil {
			return nil, fmt.Errorf("docs %s: %w", d.PluginID(), err)
		}
		for _, p := range paths {
			c.routes[link.Key(p)] = p
		}
		ids := map[string]bool{}
		for _, id := range s.DocIDs() {
			ids[id] = true
		}
		c.docs[d.PluginID()] = ids
	}
	if a := cfg.ThemeConfig.Algolia; a != nil && a.SearchPagePath != "" {
		p := "/" + a.SearchPagePath
		c.routes[link.Key(p)] = p
	}
	klog.V(2).Infof("collected %d routes", len(c.routes))
	return c, nil
}

// Routes returns the pages known to the checker
func (c *Checker) Routes() Routes {
	return c.routes
}

// Findings lists the broken links of the configuration and the redirect
// table
func (c *Checker) Findings(rules []redirects.Rule) []error {
	var findings []error
	nav := c.Config.ThemeConfig.Navbar
	if nav.Logo != nil {
		findings = append(findings, c.checkLink("navbar logo", nav.Logo.Href)...)
	}
	for _, item := range nav.Items {
		where := fmt.Sprintf("navbar item %s", item.Label)
		if item.Type == "doc" {
			pluginID := item.DocsPluginID
			if pluginID == "" {
				pluginID = site.DefaultPluginID
			}
			if !c.docs[pluginID][item.DocID] {
				findings = append(findings, fmt.Errorf("%s: document %s not found in docs %s", where, item.DocID, pluginID))
			}
			continue
		}
		findings = append(findings, c.checkLink(where, item.To)...)
	}
	for _, column := range c.Config.ThemeConfig.Footer.Links {
		for _, item := range column.Items {
			findings = append(findings, c.checkLink(fmt.Sprintf("footer %s > %s", column.Title, item.Label), item.To)...)
		}
	}
	for _, r := range rules {
		if c.routes.Has(r.From) {
			findings = append(findings, fmt.Errorf("redirect from %s overwrites an existing page", r.From))
		}
		findings = append(findings, c.checkLink(fmt.Sprintf("redirect from %s", r.From), r.To)...)
	}
	return findings
}

func (c *Checker) checkLink(where, l string) []error {
	if l == "" || !link.IsInternal(l) {
		return nil
	}
	if c.routes.Has(l) {
		return nil
	}
	return []error{fmt.Errorf("%s: %s does not resolve to a page", where, l)}
}

// Check validates the links and applies the site broken links policy
func Check(cfg *site.Config, sidebars map[string]sidebar.Sidebars, rules []redirects.Rule) error {
	c, err := NewChecker(cfg, sidebars)
	if err != nil {
		return err
	}
	return cfg.OnBrokenLinks.Apply("broken links", c.Findings(rules))
}
