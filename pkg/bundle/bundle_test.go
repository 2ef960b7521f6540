// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package bundle_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fluent-wallet/fluent-docs/pkg/bundle"
	"github.com/fluent-wallet/fluent-docs/pkg/internal/must"
	"github.com/fluent-wallet/fluent-docs/pkg/redirects"
	"github.com/fluent-wallet/fluent-docs/pkg/sidebar"
	"github.com/fluent-wallet/fluent-docs/pkg/site"
	"github.com/fluent-wallet/fluent-docs/pkg/writers"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var buildTime = time.Date(2023, 5, 17, 10, 0, 0, 0, time.UTC)

func builtInSidebars() map[string]sidebar.Sidebars {
	return map[string]sidebar.Sidebars{
		site.DefaultPluginID: must.Succeed(sidebar.Embedded("conflux")),
		"espace":             must.Succeed(sidebar.Embedded("espace")),
	}
}

type recordingWriter struct {
	mu    sync.Mutex
	files map[string][]byte
	fail  map[string]bool
}

func (r *recordingWriter) Write(name, path string, content []byte) error {
	file := path + name
	if r.fail[file] {
		return errors.New("disk full")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[file] = content
	return nil
}

var _ = Describe("Page", func() {
	DescribeTable("should be placed where the generator serves it",
		func(from, file string) {
			Expect(bundle.Page{From: from, To: "/conflux/"}.File()).To(Equal(file))
		},
		Entry("directory", "/guide/", "static/guide/index.html"),
		Entry("page", "/guide/getting-started", "static/guide/getting-started/index.html"),
		Entry("html page", "/guide/getting-started.html", "static/guide/getting-started.html"),
		Entry("html variant of a directory", "/guide/.html", "static/guide/.html"),
	)
})

var _ = Describe("Bundle", func() {
	var (
		cfg      *site.Config
		sidebars map[string]sidebar.Sidebars
	)

	BeforeEach(func() {
		cfg = site.Default()
		sidebars = builtInSidebars()
	})

	Describe("Validate", func() {
		It("accepts the built-in configuration", func() {
			Expect(bundle.Validate(cfg, sidebars)).To(Succeed())
		})

		It("reports configuration and sidebar problems together", func() {
			cfg.Title = ""
			sidebars["espace"]["walletSidebar"] = append(sidebars["espace"]["walletSidebar"], sidebar.DocItem(""))
			err := bundle.Validate(cfg, sidebars)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("title is not set"))
			Expect(err.Error()).To(ContainSubstring("invalid sidebars of docs espace"))
		})

		It("reports mounts without sidebars", func() {
			delete(sidebars, "espace")
			Expect(bundle.Validate(cfg, sidebars)).To(MatchError(ContainSubstring("no sidebars loaded for docs espace")))
		})

		It("applies the broken links policy", func() {
			cfg.ThemeConfig.Footer.Links[0].Items[0].To = "/conflux/intro"
			var ble *site.BrokenLinksError
			Expect(errors.As(bundle.Validate(cfg, sidebars), &ble)).To(BeTrue())
		})
	})

	Describe("Build", func() {
		var b *bundle.Bundle

		JustBeforeEach(func() {
			var err error
			b, err = bundle.Build(cfg, sidebars, buildTime)
			Expect(err).NotTo(HaveOccurred())
		})

		It("expands the canonical redirect table exactly once", func() {
			Expect(b.Redirects).To(HaveLen(40))
			Expect(b.Redirects).To(Equal(redirects.Expand(redirects.Canonical())))
			Expect(b.Config.Redirects.Rules).To(Equal(b.Redirects))
			for _, r := range b.Redirects {
				Expect(r.From).NotTo(HaveSuffix(".html.html"))
			}
		})

		It("resolves a copy of the configuration", func() {
			Expect(b.Config.ThemeConfig.Footer.Copyright).To(Equal("© 2023 Fluent Wallet • A Conflux Formation"))
			Expect(b.Config.Docs[0].SidebarPath).To(Equal("sidebars/default.json"))
			Expect(b.Config.Docs[1].SidebarPath).To(Equal("sidebars/espace.json"))
			Expect(cfg.ThemeConfig.Footer.Copyright).To(ContainSubstring("{{ .Year }}"))
			Expect(cfg.Docs[0].SidebarPath).To(BeEmpty())
			Expect(cfg.Redirects.Rules).To(BeNil())
		})

		It("creates a page per redirect rule first", func() {
			Expect(len(b.Pages)).To(BeNumerically(">", 40))
			for i, r := range b.Redirects {
				Expect(b.Pages[i]).To(Equal(bundle.Page{From: r.From, To: r.To}))
			}
		})

		It("creates extension pages for existing documents", func() {
			Expect(b.Pages).To(ContainElement(bundle.Page{From: "/conflux/reference/rpc-api.html", To: "/conflux/reference/rpc-api"}))
			Expect(b.Pages).To(ContainElement(bundle.Page{From: "/espace/category/concepts.htm", To: "/espace/category/concepts"}))
			for _, p := range b.Pages {
				Expect(p.From).NotTo(Equal("/conflux/.html"))
			}
		})

		It("does not create a page file twice", func() {
			seen := map[string]bool{}
			for _, p := range b.Pages {
				Expect(seen[p.File()]).To(BeFalse(), p.File())
				seen[p.File()] = true
			}
		})

		Context("with a base URL override", func() {
			BeforeEach(func() {
				cfg.WithBaseURL("/staging/")
			})

			It("points redirect pages below the base URL", func() {
				page, err := b.RenderPage(bundle.Page{From: "/guide/", To: "/conflux/"})
				Expect(err).NotTo(HaveOccurred())
				Expect(string(page)).To(ContainSubstring(`content="0; url=/staging/conflux/"`))
				Expect(string(page)).To(ContainSubstring(`href="https://docs.fluent.wallet/staging/conflux/"`))
			})
		})
	})

	Describe("Write", func() {
		var (
			b *bundle.Bundle
			w *recordingWriter
		)

		BeforeEach(func() {
			b = must.Succeed(bundle.Build(cfg, sidebars, buildTime))
			w = &recordingWriter{files: map[string][]byte{}, fail: map[string]bool{}}
		})

		It("writes every file", func() {
			Expect(b.Write(context.Background(), w, 4, true)).To(Succeed())
			Expect(w.files).To(HaveLen(4 + len(b.Pages)))
			Expect(w.files).To(HaveKey("docusaurus.config.json"))
			Expect(w.files).To(HaveKey("redirects.json"))
			Expect(w.files).To(HaveKey("sidebars/default.json"))
			Expect(w.files).To(HaveKey("sidebars/espace.json"))

			var rules []redirects.Rule
			Expect(json.Unmarshal(w.files["redirects.json"], &rules)).To(Succeed())
			Expect(rules).To(Equal(b.Redirects))

			page := string(w.files["static/guide/index.html"])
			Expect(page).To(ContainSubstring(`<html lang="en">`))
			Expect(page).To(ContainSubstring(`content="0; url=/conflux/"`))
		})

		It("writes the generator configuration", func() {
			Expect(b.Write(context.Background(), w, 4, true)).To(Succeed())
			var config map[string]interface{}
			Expect(json.Unmarshal(w.files["docusaurus.config.json"], &config)).To(Succeed())
			Expect(config).To(HaveKeyWithValue("title", "Fluent Wallet docs"))
			Expect(config["redirects"]).To(HaveKeyWithValue("fromExtensions", ConsistOf("html", "htm")))
			Expect(config["redirects"].(map[string]interface{})["redirects"]).To(HaveLen(40))
		})

		It("stops at the first error when failing fast", func() {
			w.fail["redirects.json"] = true
			err := b.Write(context.Background(), w, 4, true)
			Expect(err).To(MatchError("writing redirects.json failed: disk full"))
			Expect(w.files).To(HaveLen(1))
		})

		It("collects all errors otherwise", func() {
			w.fail["redirects.json"] = true
			w.fail["sidebars/espace.json"] = true
			err := b.Write(context.Background(), w, 4, false)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("writing redirects.json failed"))
			Expect(err.Error()).To(ContainSubstring("writing sidebars/espace.json failed"))
			Expect(w.files).To(HaveLen(2 + len(b.Pages)))
		})

		It("stops when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(b.Write(ctx, w, 4, true)).To(MatchError(ContainSubstring(context.Canceled.Error())))
			Expect(w.files).To(BeEmpty())
		})

		It("writes to the file system", func() {
			root := filepath.Join(os.TempDir(), fmt.Sprintf("test%s", uuid.New().String()))
			defer os.RemoveAll(root)
			Expect(b.Write(context.Background(), &writers.FSWriter{Root: root}, 4, true)).To(Succeed())
			content, err := os.ReadFile(filepath.Join(root, "static", "guide", "rpc-api", "index.html"))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Contains(string(content), "url=/conflux/reference/rpc-api")).To(BeTrue())
		})
	})
})
