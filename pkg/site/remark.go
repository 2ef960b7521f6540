// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import "encoding/json"

const (
	// RemarkCodesandbox embeds codesandbox examples
	RemarkCodesandbox = "remark-codesandbox"
	// RemarkTabs renders tabbed code blocks
	RemarkTabs = "remark-docusaurus-tabs"
)

// MarshalJSON encodes a plugin without options as its name and a plugin
// with options as a [name, options] pair
func (r *RemarkPlugin) MarshalJSON() ([]byte, error) {
	if len(r.Options) == 0 {
		return json.Marshal(r.Name)
	}
	return json.Marshal([]interface{}{r.Name, r.Options})
}
