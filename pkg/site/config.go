// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"
	"text/template"
	"time"

	"github.com/fluent-wallet/fluent-docs/pkg/internal/must"
	"github.com/fluent-wallet/fluent-docs/pkg/osfakes/osshim"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

//go:embed fluent.yaml
var fluent []byte

// Default returns the Fluent Wallet documentation portal configuration
func Default() *Config {
	return must.Succeed(Parse(fluent))
}

// Parse decodes a YAML site configuration
func Parse(content []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Loader reads site configurations
type Loader struct {
	Os osshim.Os
}

// Load reads the site configuration at path. An empty path returns the
// built-in configuration.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		klog.V(1).Info("using built-in site configuration")
		return Default(), nil
	}
	content, err := osshim.ReadRegularFile(l.Os, path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("can't parse site configuration %s yaml content: %w", path, err)
	}
	return c, nil
}

// Mount returns the docs mount with the given plugin id. Empty id selects
// the default mount.
func (c *Config) Mount(id string) (*Docs, bool) {
	if id == "" {
		id = DefaultPluginID
	}
	for _, d := range c.Docs {
		if d.PluginID() == id {
			return d, true
		}
	}
	return nil, false
}

// WithBaseURL overrides the base URL of the site and of the search result
// pathname replacement. An empty dest keeps the configured values.
func (c *Config) WithBaseURL(dest string) *Config {
	if dest == "" {
		return c
	}
	dest = NormalizeBaseURL(dest)
	c.BaseURL = dest
	if a := c.ThemeConfig.Algolia; a != nil && a.ReplaceSearchResultPathname != nil {
		a.ReplaceSearchResultPathname.To = dest
	}
	return c
}

// NormalizeBaseURL makes sure a base URL starts and ends with a slash
func NormalizeBaseURL(base string) string {
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// WithProduction switches auto deployment of codesandbox examples of the
// default mount
func (c *Config) WithProduction(production bool) *Config {
	d, ok := c.Mount(DefaultPluginID)
	if !ok {
		return c
	}
	for _, p := range d.RemarkPlugins {
		if p.Name != RemarkCodesandbox {
			continue
		}
		if p.Options == nil {
			p.Options = map[string]interface{}{}
		}
		p.Options["autoDeploy"] = production
	}
	return c
}

// Resolve renders the templated values of the configuration
func (c *Config) Resolve(now time.Time) error {
	t, err := template.New("copyright").Option("missingkey=error").Parse(c.ThemeConfig.Footer.Copyright)
	if err != nil {
		return fmt.Errorf("invalid footer copyright template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, struct{ Year int }{now.Year()}); err != nil {
		return fmt.Errorf("failed to render footer copyright: %w", err)
	}
	c.ThemeConfig.Footer.Copyright = b.String()
	return nil
}

// Validate reports structural problems of the configuration
func (c *Config) Validate() error {
	var errs *multierror.Error
	if c.Title == "" {
		errs = multierror.Append(errs, fmt.Errorf("title is not set"))
	}
	if u, err := url.Parse(c.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = multierror.Append(errs, fmt.Errorf("url %q is not an absolute URL", c.URL))
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		errs = multierror.Append(errs, fmt.Errorf("baseUrl %q must start and end with /", c.BaseURL))
	}
	if !c.OnBrokenLinks.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("onBrokenLinks has unknown policy %q", c.OnBrokenLinks))
	}
	if !c.OnBrokenMarkdownLinks.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("onBrokenMarkdownLinks has unknown policy %q", c.OnBrokenMarkdownLinks))
	}
	if !contains(c.I18n.Locales, c.I18n.DefaultLocale) {
		errs = multierror.Append(errs, fmt.Errorf("default locale %q is not in locales %v", c.I18n.DefaultLocale, c.I18n.Locales))
	}
	errs = multierror.Append(errs, c.validateDocs()...)
	for i, item := range c.ThemeConfig.Navbar.Items {
		if item.Type == "doc" && item.DocID == "" {
			errs = multierror.Append(errs, fmt.Errorf("navbar item %d (%s) has no docId", i, item.Label))
		}
		if item.DocsPluginID != "" {
			if _, ok := c.Mount(item.DocsPluginID); !ok {
				errs = multierror.Append(errs, fmt.Errorf("navbar item %d (%s) references unknown docs plugin %s", i, item.Label, item.DocsPluginID))
			}
		}
	}
	if a := c.ThemeConfig.Algolia; a != nil {
		if a.AppID == "" || a.APIKey == "" || a.IndexName == "" {
			errs = multierror.Append(errs, fmt.Errorf("algolia requires appId, apiKey and indexName"))
		}
	}
	if _, err := template.New("copyright").Parse(c.ThemeConfig.Footer.Copyright); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid footer copyright template: %w", err))
	}
	return errs.ErrorOrNil()
}

func (c *Config) validateDocs() []error {
	var errs []error
	if len(c.Docs) == 0 {
		return []error{fmt.Errorf("no docs mounts defined")}
	}
	ids := map[string]bool{}
	bases := map[string]bool{}
	for _, d := range c.Docs {
		id := d.PluginID()
		if ids[id] {
			errs = append(errs, fmt.Errorf("docs plugin id %s is used more than once", id))
		}
		ids[id] = true
		if d.Path == "" {
			errs = append(errs, fmt.Errorf("docs %s: path is not set", id))
		}
		if bases[d.RouteBasePath] {
			errs = append(errs, fmt.Errorf("docs %s: routeBasePath %s is used more than once", id, d.RouteBasePath))
		}
		bases[d.RouteBasePath] = true
		if d.Sidebar == "" {
			errs = append(errs, fmt.Errorf("docs %s: sidebar is not set", id))
		}
	}
	return errs
}

func contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}
