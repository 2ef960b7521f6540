// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package deploy

const productionEnv = "production"

// Deploy is the configuration of the deployment target
type Deploy struct {
	// BaseURL overrides the configured base URL, e.g. for staging deployments
	BaseURL    string `mapstructure:"base-url"`
	NodeEnv    string `mapstructure:"node-env"`
	Production bool   `mapstructure:"production"`
}

// IsProduction reports whether the bundle targets the production site
func (d Deploy) IsProduction() bool {
	return d.Production || d.NodeEnv == productionEnv
}
