// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/fluent-wallet/fluent-docs/pkg/internal/link"
	"github.com/fluent-wallet/fluent-docs/pkg/internal/must"
	"github.com/fluent-wallet/fluent-docs/pkg/linkcheck"
	"github.com/fluent-wallet/fluent-docs/pkg/redirects"
	"github.com/fluent-wallet/fluent-docs/pkg/sidebar"
	"github.com/fluent-wallet/fluent-docs/pkg/site"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

const (
	// ConfigFile is the bundle file holding the site configuration
	ConfigFile = "docusaurus.config.json"
	// RedirectsFile is the bundle file holding the expanded redirect table
	RedirectsFile = "redirects.json"
	// SidebarsDir holds one sidebars file per docs mount
	SidebarsDir = "sidebars"
	// StaticDir holds the redirect pages
	StaticDir = "static"
)

// Bundle is the forged configuration handed to the documentation generator
type Bundle struct {
	Config *site.Config
	// Sidebars keyed by docs plugin id
	Sidebars map[string]sidebar.Sidebars
	// Redirects is the canonical table expanded once
	Redirects []redirects.Rule
	Pages     []Page
}

// Page is a static page redirecting From to To
type Page struct {
	From string
	To   string
}

// File returns the bundle path of the page
func (p Page) File() string {
	from := strings.TrimPrefix(p.From, "/")
	if link.HasExtension(p.From) {
		return path.Join(StaticDir, from)
	}
	return path.Join(StaticDir, from, "index.html")
}

// Validate checks the configuration, the sidebars of every docs mount and
// the links between them
func Validate(cfg *site.Config, sidebars map[string]sidebar.Sidebars) error {
	var errs *multierror.Error
	if err := cfg.Validate(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid site configuration: %w", err))
	}
	for _, d := range cfg.Docs {
		s, ok := sidebars[d.PluginID()]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("no sidebars loaded for docs %s", d.PluginID()))
			continue
		}
		if err := s.Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid sidebars of docs %s: %w", d.PluginID(), err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	return linkcheck.Check(cfg, sidebars, redirects.Expand(redirects.Canonical()))
}

// Build assembles the bundle. The configuration is copied before it is
// resolved for the given build time.
func Build(cfg *site.Config, sidebars map[string]sidebar.Sidebars, now time.Time) (*Bundle, error) {
	c := *cfg
	c.Docs = make([]*site.Docs, 0, len(cfg.Docs))
	for _, d := range cfg.Docs {
		docs := *d
		docs.SidebarPath = path.Join(SidebarsDir, docs.PluginID()+".json")
		c.Docs = append(c.Docs, &docs)
	}
	if err := c.Resolve(now); err != nil {
		return nil, err
	}

	canonical := redirects.Canonical()
	rules := redirects.Expand(canonical)
	must.BeTrue(len(rules) == 2*len(canonical), "expanded %d rules into %d", len(canonical), len(rules))
	c.Redirects.Rules = rules

	checker, err := linkcheck.NewChecker(&c, sidebars)
	if err != nil {
		return nil, err
	}
	pages := redirectPages(rules, checker.Routes(), c.Redirects.FromExtensions)
	klog.Infof("bundle has %d redirect rules and %d redirect pages", len(rules), len(pages))

	return &Bundle{
		Config:    &c,
		Sidebars:  sidebars,
		Redirects: rules,
		Pages:     pages,
	}, nil
}

// redirectPages creates a page for every rule and, for every page path
// without trailing slash, one page per extension pointing to the
// extensionless page. A page file is created once, the first rule wins.
func redirectPages(rules []redirects.Rule, routes linkcheck.Routes, extensions []string) []Page {
	var pages []Page
	files := map[string]string{}
	add := func(p Page) {
		f := p.File()
		if to, ok := files[f]; ok {
			if to != p.To {
				klog.Warningf("redirect page %s already points to %s, skipping redirect to %s", f, to, p.To)
			}
			return
		}
		files[f] = p.To
		pages = append(pages, p)
	}
	for _, r := range rules {
		add(Page{From: r.From, To: r.To})
	}
	for _, route := range routes.Paths() {
		if strings.HasSuffix(route, "/") {
			continue
		}
		for _, ext := range extensions {
			from := route + "." + strings.TrimPrefix(ext, ".")
			if routes.Has(from) {
				continue
			}
			add(Page{From: from, To: route})
		}
	}
	return pages
}
