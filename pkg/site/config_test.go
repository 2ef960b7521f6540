// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/fluent-wallet/fluent-docs/pkg/osfakes/osshim/osshimfakes"
	"github.com/fluent-wallet/fluent-docs/pkg/site"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var cfg *site.Config

	BeforeEach(func() {
		cfg = site.Default()
	})

	Describe("Default", func() {
		It("is valid", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("describes the Fluent Wallet portal", func() {
			Expect(cfg.Title).To(Equal("Fluent Wallet docs"))
			Expect(cfg.URL).To(Equal("https://docs.fluent.wallet"))
			Expect(cfg.BaseURL).To(Equal("/"))
			Expect(cfg.OnBrokenLinks).To(Equal(site.PolicyThrow))
			Expect(cfg.OnBrokenMarkdownLinks).To(Equal(site.PolicyWarn))
			Expect(cfg.I18n.Locales).To(Equal([]string{"en"}))
			Expect(cfg.Redirects.FromExtensions).To(Equal([]string{"html", "htm"}))
			Expect(cfg.ThemeConfig.Algolia.AppID).To(Equal("AWX4QVM59R"))
			Expect(cfg.ThemeConfig.Algolia.IndexName).To(Equal("mm--v2-staging"))
			Expect(cfg.ThemeConfig.Prism.AdditionalLanguages).To(ConsistOf("csharp", "swift"))
		})

		It("mounts the conflux and espace trees", func() {
			conflux, ok := cfg.Mount("")
			Expect(ok).To(BeTrue())
			Expect(conflux.RouteBase()).To(Equal("/conflux"))
			Expect(conflux.Sidebar).To(Equal("conflux"))
			espace, ok := cfg.Mount("espace")
			Expect(ok).To(BeTrue())
			Expect(espace.PluginID()).To(Equal("espace"))
			Expect(espace.Sidebar).To(Equal("espace"))
			_, ok = cfg.Mount("unknown")
			Expect(ok).To(BeFalse())
		})

		It("returns independent copies", func() {
			cfg.Title = "changed"
			Expect(site.Default().Title).To(Equal("Fluent Wallet docs"))
		})
	})

	Describe("WithBaseURL", func() {
		DescribeTable("should override the base URL and the search pathname",
			func(dest, expected string) {
				cfg.WithBaseURL(dest)
				Expect(cfg.BaseURL).To(Equal(expected))
				Expect(cfg.ThemeConfig.Algolia.ReplaceSearchResultPathname.To).To(Equal(expected))
				Expect(cfg.ThemeConfig.Algolia.ReplaceSearchResultPathname.From).To(Equal("/"))
			},
			Entry("keeps the configured value when empty", "", "/"),
			Entry("uses a normalized value", "/staging/", "/staging/"),
			Entry("adds missing slashes", "latest", "/latest/"),
		)

		It("tolerates a configuration without search", func() {
			cfg.ThemeConfig.Algolia = nil
			Expect(cfg.WithBaseURL("/staging").BaseURL).To(Equal("/staging/"))
		})
	})

	Describe("WithProduction", func() {
		It("toggles codesandbox auto deployment on the default mount", func() {
			conflux, _ := cfg.Mount("")
			Expect(conflux.RemarkPlugins[1].Options).To(HaveKeyWithValue("autoDeploy", false))
			cfg.WithProduction(true)
			Expect(conflux.RemarkPlugins[1].Options).To(HaveKeyWithValue("autoDeploy", true))
			Expect(conflux.RemarkPlugins[1].Options).To(HaveKeyWithValue("mode", "iframe"))
			Expect(conflux.RemarkPlugins[0].Options).To(BeNil())
		})
	})

	Describe("Resolve", func() {
		It("renders the copyright year", func() {
			Expect(cfg.Resolve(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))).To(Succeed())
			Expect(cfg.ThemeConfig.Footer.Copyright).To(Equal("© 2024 Fluent Wallet • A Conflux Formation"))
		})

		It("fails on broken templates", func() {
			cfg.ThemeConfig.Footer.Copyright = "© {{ .Year"
			Expect(cfg.Resolve(time.Now())).To(MatchError(ContainSubstring("invalid footer copyright template")))
		})

		It("fails on unknown fields", func() {
			cfg.ThemeConfig.Footer.Copyright = "© {{ .Month }}"
			Expect(cfg.Resolve(time.Now())).To(MatchError(ContainSubstring("failed to render footer copyright")))
		})
	})

	Describe("Validate", func() {
		DescribeTable("should report structural problems",
			func(mutate func(c *site.Config), message string) {
				mutate(cfg)
				err := cfg.Validate()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(message))
			},
			Entry("missing title", func(c *site.Config) { c.Title = "" }, "title is not set"),
			Entry("relative url", func(c *site.Config) { c.URL = "docs.fluent.wallet" }, "is not an absolute URL"),
			Entry("base url without trailing slash", func(c *site.Config) { c.BaseURL = "/docs" }, "must start and end with /"),
			Entry("unknown policy", func(c *site.Config) { c.OnBrokenLinks = "explode" }, `onBrokenLinks has unknown policy "explode"`),
			Entry("unknown markdown policy", func(c *site.Config) { c.OnBrokenMarkdownLinks = "" }, "onBrokenMarkdownLinks has unknown policy"),
			Entry("default locale not listed", func(c *site.Config) { c.I18n.DefaultLocale = "zh-Hans" }, `default locale "zh-Hans" is not in locales`),
			Entry("no docs", func(c *site.Config) { c.Docs = nil }, "no docs mounts defined"),
			Entry("duplicated plugin id", func(c *site.Config) { c.Docs[1].ID = "" }, "docs plugin id default is used more than once"),
			Entry("duplicated route base path", func(c *site.Config) { c.Docs[1].RouteBasePath = "conflux" }, "routeBasePath conflux is used more than once"),
			Entry("missing sidebar", func(c *site.Config) { c.Docs[1].Sidebar = "" }, "docs espace: sidebar is not set"),
			Entry("navbar doc without id", func(c *site.Config) { c.ThemeConfig.Navbar.Items[0].DocID = "" }, "navbar item 0 (Conflux) has no docId"),
			Entry("navbar unknown plugin", func(c *site.Config) { c.ThemeConfig.Navbar.Items[1].DocsPluginID = "evm" }, "references unknown docs plugin evm"),
			Entry("incomplete search", func(c *site.Config) { c.ThemeConfig.Algolia.APIKey = "" }, "algolia requires appId, apiKey and indexName"),
			Entry("broken copyright", func(c *site.Config) { c.ThemeConfig.Footer.Copyright = "{{" }, "invalid footer copyright template"),
		)
	})

	Describe("JSON", func() {
		It("encodes remark plugins the way the generator expects", func() {
			conflux, _ := cfg.Mount("")
			b, err := json.Marshal(conflux.RemarkPlugins)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(MatchJSON(`["remark-docusaurus-tabs", ["remark-codesandbox", {"mode":"iframe","autoDeploy":false}]]`))
		})

		It("hides the sidebar name and keys the script domain", func() {
			cfg.Docs[0].SidebarPath = "sidebars/conflux.json"
			b, err := json.Marshal(cfg)
			Expect(err).NotTo(HaveOccurred())
			var decoded map[string]interface{}
			Expect(json.Unmarshal(b, &decoded)).To(Succeed())
			docs := decoded["docs"].([]interface{})
			Expect(docs[0]).To(HaveKeyWithValue("sidebarPath", "sidebars/conflux.json"))
			Expect(docs[0]).NotTo(HaveKey("sidebar"))
			scripts := decoded["scripts"].([]interface{})
			Expect(scripts[0]).To(HaveKeyWithValue("data-domain", "docs.fluent.wallet"))
		})
	})
})

var _ = Describe("Loader", func() {
	var (
		fakeOs *osshimfakes.FakeOs
		loader *site.Loader
	)

	BeforeEach(func() {
		fakeOs = &osshimfakes.FakeOs{}
		loader = &site.Loader{Os: fakeOs}
	})

	It("returns the built-in configuration for an empty path", func() {
		cfg, err := loader.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Title).To(Equal("Fluent Wallet docs"))
		Expect(fakeOs.Invocations()).To(BeEmpty())
	})

	It("reads the configuration file", func() {
		fakeOs.ReadFileReturns([]byte("title: Staging docs\nurl: https://staging.fluent.wallet\n"), nil)
		cfg, err := loader.Load("site.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Title).To(Equal("Staging docs"))
		Expect(cfg.URL).To(Equal("https://staging.fluent.wallet"))
		Expect(fakeOs.IsDirArgsForCall(0)).To(Equal("site.yaml"))
	})

	It("fails when the file can't be read", func() {
		fakeOs.ReadFileReturns(nil, errors.New("permission denied"))
		_, err := loader.Load("site.yaml")
		Expect(err).To(MatchError("permission denied"))
	})

	It("fails on invalid yaml", func() {
		fakeOs.ReadFileReturns([]byte("title: [\n"), nil)
		_, err := loader.Load("site.yaml")
		Expect(err).To(MatchError(ContainSubstring("can't parse site configuration site.yaml yaml content")))
	})
})

var _ = Describe("Policy", func() {
	findings := []error{errors.New("a"), errors.New("b")}

	DescribeTable("should only fail when throwing",
		func(p site.Policy, fails bool) {
			Expect(p.Valid()).To(BeTrue())
			err := p.Apply("broken links", findings)
			if fails {
				Expect(err).To(MatchError("2 broken links found:\n\t* a\n\t* b"))
				var ble *site.BrokenLinksError
				Expect(errors.As(err, &ble)).To(BeTrue())
				Expect(ble.Findings).To(HaveLen(2))
			} else {
				Expect(err).NotTo(HaveOccurred())
			}
		},
		Entry("ignore", site.PolicyIgnore, false),
		Entry("log", site.PolicyLog, false),
		Entry("warn", site.PolicyWarn, false),
		Entry("throw", site.PolicyThrow, true),
	)

	It("passes without findings", func() {
		Expect(site.PolicyThrow.Apply("broken links", nil)).To(Succeed())
	})

	It("rejects unknown policies", func() {
		Expect(site.Policy("fail").Valid()).To(BeFalse())
	})
})
