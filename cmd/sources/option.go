// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sources

// Sources tells where the site configuration and the sidebars are read from.
// Empty values select the built-in definitions.
type Sources struct {
	ConfigPath  string `mapstructure:"config"`
	SidebarsDir string `mapstructure:"sidebars-dir"`
}
