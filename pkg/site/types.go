// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"strings"

	"github.com/fluent-wallet/fluent-docs/pkg/redirects"
)

// DefaultPluginID identifies the docs mount declared without an id
const DefaultPluginID = "default"

// Config is the documentation portal configuration handed to the
// documentation generator
type Config struct {
	Title                 string    `yaml:"title" json:"title"`
	Tagline               string    `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	URL                   string    `yaml:"url" json:"url"`
	BaseURL               string    `yaml:"baseUrl" json:"baseUrl"`
	OnBrokenLinks         Policy    `yaml:"onBrokenLinks" json:"onBrokenLinks"`
	OnBrokenMarkdownLinks Policy    `yaml:"onBrokenMarkdownLinks" json:"onBrokenMarkdownLinks"`
	Favicon               string    `yaml:"favicon,omitempty" json:"favicon,omitempty"`
	OrganizationName      string    `yaml:"organizationName,omitempty" json:"organizationName,omitempty"`
	ProjectName           string    `yaml:"projectName,omitempty" json:"projectName,omitempty"`
	I18n                  I18n      `yaml:"i18n" json:"i18n"`
	Scripts               []Script  `yaml:"scripts,omitempty" json:"scripts,omitempty"`
	CustomCSS             string    `yaml:"customCss,omitempty" json:"customCss,omitempty"`
	Docs                  []*Docs   `yaml:"docs" json:"docs"`
	Redirects             Redirects `yaml:"redirects" json:"redirects"`
	ThemeConfig           Theme     `yaml:"themeConfig" json:"themeConfig"`
}

// I18n lists the site locales
type I18n struct {
	DefaultLocale string   `yaml:"defaultLocale" json:"defaultLocale"`
	Locales       []string `yaml:"locales" json:"locales"`
}

// Script is an external script injected into every page
type Script struct {
	Src        string `yaml:"src" json:"src"`
	Defer      bool   `yaml:"defer,omitempty" json:"defer,omitempty"`
	DataDomain string `yaml:"dataDomain,omitempty" json:"data-domain,omitempty"`
}

// Docs is a documentation tree mounted under a route base path
type Docs struct {
	// ID of the docs plugin instance, empty for the default mount
	ID            string `yaml:"id,omitempty" json:"id,omitempty"`
	Path          string `yaml:"path" json:"path"`
	RouteBasePath string `yaml:"routeBasePath" json:"routeBasePath"`
	// Sidebar names the sidebar definitions of the mount
	Sidebar string `yaml:"sidebar" json:"-"`
	// SidebarPath is the bundle file holding the sidebar definitions
	SidebarPath   string          `yaml:"-" json:"sidebarPath"`
	Breadcrumbs   *bool           `yaml:"breadcrumbs,omitempty" json:"breadcrumbs,omitempty"`
	RemarkPlugins []*RemarkPlugin `yaml:"remarkPlugins,omitempty" json:"remarkPlugins,omitempty"`
}

// PluginID returns the docs plugin id of the mount
func (d *Docs) PluginID() string {
	if d.ID == "" {
		return DefaultPluginID
	}
	return d.ID
}

// RouteBase returns the route base path with a leading slash
func (d *Docs) RouteBase() string {
	return "/" + strings.Trim(d.RouteBasePath, "/")
}

// RemarkPlugin is a markdown plugin with optional options
type RemarkPlugin struct {
	Name    string                 `yaml:"name" json:"-"`
	Options map[string]interface{} `yaml:"options,omitempty" json:"-"`
}

// Redirects configures the client side redirects plugin
type Redirects struct {
	FromExtensions []string `yaml:"fromExtensions,omitempty" json:"fromExtensions,omitempty"`
	// Rules is the expanded redirect table, set when the bundle is forged
	Rules []redirects.Rule `yaml:"-" json:"redirects"`
}

// Theme is the theme configuration
type Theme struct {
	Navbar  Navbar   `yaml:"navbar" json:"navbar"`
	Footer  Footer   `yaml:"footer" json:"footer"`
	Prism   Prism    `yaml:"prism" json:"prism"`
	Algolia *Algolia `yaml:"algolia,omitempty" json:"algolia,omitempty"`
}

// Logo is a navbar or footer logo
type Logo struct {
	Alt     string `yaml:"alt" json:"alt"`
	Src     string `yaml:"src" json:"src"`
	SrcDark string `yaml:"srcDark,omitempty" json:"srcDark,omitempty"`
	Href    string `yaml:"href,omitempty" json:"href,omitempty"`
	Width   int    `yaml:"width,omitempty" json:"width,omitempty"`
}

// Navbar is the top navigation bar
type Navbar struct {
	Title string       `yaml:"title,omitempty" json:"title,omitempty"`
	Logo  *Logo        `yaml:"logo,omitempty" json:"logo,omitempty"`
	Items []NavbarItem `yaml:"items" json:"items"`
}

// NavbarItem is a navbar entry, either a document or a plain link
type NavbarItem struct {
	Type         string `yaml:"type,omitempty" json:"type,omitempty"`
	DocID        string `yaml:"docId,omitempty" json:"docId,omitempty"`
	DocsPluginID string `yaml:"docsPluginId,omitempty" json:"docsPluginId,omitempty"`
	Label        string `yaml:"label" json:"label"`
	To           string `yaml:"to,omitempty" json:"to,omitempty"`
	Href         string `yaml:"href,omitempty" json:"href,omitempty"`
	Position     string `yaml:"position,omitempty" json:"position,omitempty"`
}

// Footer is the page footer
type Footer struct {
	Logo  *Logo          `yaml:"logo,omitempty" json:"logo,omitempty"`
	Links []FooterColumn `yaml:"links" json:"links"`
	// Copyright is a text/template rendered with the build year as .Year
	Copyright string `yaml:"copyright" json:"copyright"`
}

// FooterColumn is a titled group of footer links
type FooterColumn struct {
	Title string       `yaml:"title" json:"title"`
	Items []FooterLink `yaml:"items" json:"items"`
}

// FooterLink points either inside the site (To) or outside (Href)
type FooterLink struct {
	Label string `yaml:"label" json:"label"`
	To    string `yaml:"to,omitempty" json:"to,omitempty"`
	Href  string `yaml:"href,omitempty" json:"href,omitempty"`
}

// Prism is the syntax highlighting configuration
type Prism struct {
	Theme               string   `yaml:"theme" json:"theme"`
	AdditionalLanguages []string `yaml:"additionalLanguages,omitempty" json:"additionalLanguages,omitempty"`
}

// Algolia is the search integration. The keys are public-safe.
type Algolia struct {
	AppID                       string                 `yaml:"appId" json:"appId"`
	APIKey                      string                 `yaml:"apiKey" json:"apiKey"`
	IndexName                   string                 `yaml:"indexName" json:"indexName"`
	ContextualSearch            bool                   `yaml:"contextualSearch" json:"contextualSearch"`
	ExternalURLRegex            string                 `yaml:"externalUrlRegex,omitempty" json:"externalUrlRegex,omitempty"`
	ReplaceSearchResultPathname *Replacement           `yaml:"replaceSearchResultPathname,omitempty" json:"replaceSearchResultPathname,omitempty"`
	SearchParameters            map[string]interface{} `yaml:"searchParameters" json:"searchParameters"`
	SearchPagePath              string                 `yaml:"searchPagePath,omitempty" json:"searchPagePath,omitempty"`
}

// Replacement rewrites a path prefix
type Replacement struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}
