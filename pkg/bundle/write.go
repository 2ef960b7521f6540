// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"path"
	"strings"

	"github.com/fluent-wallet/fluent-docs/pkg/jobs"
	"github.com/fluent-wallet/fluent-docs/pkg/writers"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

var pageTemplate = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head>
<meta charset="UTF-8">
<meta http-equiv="refresh" content="0; url={{ .Target }}">
<link rel="canonical" href="{{ .Canonical }}" />
<title>Redirecting to {{ .Target }}</title>
</head>
<script>
window.location.href = {{ .Target }} + window.location.search + window.location.hash;
</script>
</html>
`))

// RenderPage renders the static redirect page
func (b *Bundle) RenderPage(p Page) ([]byte, error) {
	target := p.To
	if strings.HasPrefix(target, "/") {
		target = b.Config.BaseURL + strings.TrimPrefix(target, "/")
	}
	canonical := target
	if strings.HasPrefix(canonical, "/") {
		canonical = strings.TrimSuffix(b.Config.URL, "/") + canonical
	}
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Lang      string
		Target    string
		Canonical string
	}{b.Config.I18n.DefaultLocale, target, canonical})
	if err != nil {
		return nil, fmt.Errorf("failed to render redirect page %s: %w", p.File(), err)
	}
	return buf.Bytes(), nil
}

// Write hands every bundle file to the writer. Redirect pages are rendered
// and written by up to workers parallel workers, the writer must be safe for
// concurrent use. Unless failFast is set, writing continues after errors and
// all of them are returned.
func (b *Bundle) Write(ctx context.Context, w writers.Writer, workers int, failFast bool) error {
	var errs *multierror.Error
	write := func(file string, content []byte, err error) error {
		if err == nil {
			err = ctx.Err()
		}
		if err == nil {
			dir, name := path.Split(file)
			err = w.Write(name, dir, content)
		}
		if err != nil {
			err = fmt.Errorf("writing %s failed: %w", file, err)
			if failFast {
				return err
			}
			klog.Error(err)
		}
		return err
	}

	content, err := marshal(b.Config)
	if err := write(ConfigFile, content, err); err != nil {
		if failFast {
			return err
		}
		errs = multierror.Append(errs, err)
	}
	content, err = marshal(b.Redirects)
	if err := write(RedirectsFile, content, err); err != nil {
		if failFast {
			return err
		}
		errs = multierror.Append(errs, err)
	}
	for _, d := range b.Config.Docs {
		content, err = marshal(b.Sidebars[d.PluginID()])
		if err := write(d.SidebarPath, content, err); err != nil {
			if failFast {
				return err
			}
			errs = multierror.Append(errs, err)
		}
	}

	job := &jobs.Job[Page]{
		MaxWorkers: workers,
		FailFast:   failFast,
		Worker: jobs.WorkerFunc[Page](func(ctx context.Context, p Page) error {
			content, err := b.RenderPage(p)
			return write(p.File(), content, err)
		}),
	}
	if err := job.Dispatch(ctx, b.Pages); err != nil {
		if failFast {
			return err
		}
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

func marshal(v interface{}) ([]byte, error) {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(content, '\n'), nil
}
