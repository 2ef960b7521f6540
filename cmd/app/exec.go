// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fluent-wallet/fluent-docs/cmd/deploy"
	"github.com/fluent-wallet/fluent-docs/cmd/sources"
	"github.com/fluent-wallet/fluent-docs/pkg/bundle"
	"github.com/fluent-wallet/fluent-docs/pkg/osfakes/osshim"
	"github.com/fluent-wallet/fluent-docs/pkg/sidebar"
	"github.com/fluent-wallet/fluent-docs/pkg/site"
	"github.com/fluent-wallet/fluent-docs/pkg/writers"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, out io.Writer) error {
	var o options
	if err := vip.Unmarshal(&o); err != nil {
		return err
	}
	if o.DestinationPath == "" && !o.DryRun {
		return fmt.Errorf("destination is not set")
	}
	cfg, sidebars, err := load(&osshim.OsShim{}, o.Sources, o.Deploy)
	if err != nil {
		return err
	}
	klog.Infof("Base URL: %s", cfg.BaseURL)
	klog.Infof("Output dir: %s", o.DestinationPath)

	if o.SkipLinkValidation {
		klog.Warning("link validation is skipped")
	} else if err := bundle.Validate(cfg, sidebars); err != nil {
		return err
	}

	b, err := bundle.Build(cfg, sidebars, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build bundle: %w", err)
	}

	var (
		w      writers.Writer
		dryRun writers.DryRunWriter
	)
	if o.DryRun {
		dryRun = writers.NewDryRunWritersFactory(out)
		w = dryRun.GetWriter(o.DestinationPath)
	} else {
		w = &writers.FSWriter{Root: o.DestinationPath}
	}
	if err := b.Write(ctx, w, o.Workers, o.FailFast); err != nil {
		return err
	}
	if dryRun != nil {
		return dryRun.Flush()
	}
	return nil
}

// load reads the site configuration, applies the deployment target and
// reads the sidebars of every docs mount
func load(osh osshim.Os, src sources.Sources, d deploy.Deploy) (*site.Config, map[string]sidebar.Sidebars, error) {
	loader := &site.Loader{Os: osh}
	cfg, err := loader.Load(src.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	cfg.WithBaseURL(d.BaseURL).WithProduction(d.IsProduction())

	var errs *multierror.Error
	sidebars := map[string]sidebar.Sidebars{}
	for _, docs := range cfg.Docs {
		var s sidebar.Sidebars
		if src.SidebarsDir != "" {
			s, err = sidebar.Load(osh, filepath.Join(src.SidebarsDir, docs.Sidebar+".yaml"))
		} else {
			s, err = sidebar.Embedded(docs.Sidebar)
		}
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("docs %s: %w", docs.PluginID(), err))
			continue
		}
		sidebars[docs.PluginID()] = s
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, err
	}
	return cfg, sidebars, nil
}
