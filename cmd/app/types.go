// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/fluent-wallet/fluent-docs/cmd/deploy"
	"github.com/fluent-wallet/fluent-docs/cmd/sources"
)

// Options encapsulates the parameters for forging a bundle
type Options struct {
	DestinationPath    string `mapstructure:"destination"`
	DryRun             bool   `mapstructure:"dry-run"`
	FailFast           bool   `mapstructure:"fail-fast"`
	SkipLinkValidation bool   `mapstructure:"skip-link-validation"`
	Workers            int    `mapstructure:"workers"`
}

type options struct {
	Options         `mapstructure:",squash"`
	sources.Sources `mapstructure:",squash"`
	deploy.Deploy   `mapstructure:",squash"`
}
