// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package redirects

// Rule maps an old path to the path it moved to
type Rule struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Expand returns the rules with an additional ".html" rule after each one.
// The derived rule redirects From + ".html" to the same target. The input
// is not modified and the result always has twice its length.
func Expand(rules []Rule) []Rule {
	out := make([]Rule, 0, 2*len(rules))
	for _, r := range rules {
		out = append(out, r, Rule{From: r.From + ".html", To: r.To})
	}
	return out
}

var canonical = []Rule{
	{From: "/guide/", To: "/conflux/"},
	{From: "/guide/getting-started", To: "/conflux/get-started/set-up-dev-environment"},
	{From: "/guide/common-terms", To: "/conflux/"},
	{From: "/guide/initializing-dapps", To: "/conflux/how-to/interact-with-smart-contracts"},
	{From: "/guide/accessing-accounts", To: "/conflux/get-started/access-accounts"},
	{From: "/guide/sending-transactions", To: "/conflux/how-to/send-transactions"},
	{From: "/guide/ethereum-provider", To: "/conflux/reference/provider-api"},
	{From: "/guide/rpc-api", To: "/conflux/reference/rpc-api"},
	{From: "/guide/signing-data", To: "/conflux/how-to/sign-data"},
	{From: "/guide/registering-function-names", To: "/conflux/how-to/register-method-names"},
	{From: "/guide/registering-your-token", To: "/conflux/how-to/register-token"},
	{From: "/guide/defining-your-icon", To: "/conflux/how-to/set-icon"},
	{From: "/guide/onboarding-library", To: "/conflux/how-to/use-onboarding-library"},
	{From: "/guide/metamask-extension-provider", To: "/conflux/how-to/access-provider"},
	{From: "/guide/espace", To: "/espace/"},
	{From: "/guide/espace-concepts", To: "/espace/category/concepts"},
	{From: "/guide/espace-rpc-api", To: "/espace/reference/rpc-api"},
	{From: "/guide/create-dapp", To: "/conflux/get-started/set-up-dev-environment"},
	{From: "/guide/contributors", To: "/conflux/"},
	{From: "/conflux/tutorials/simple-react-dapp", To: "/conflux/tutorials/react-dapp-local-state"},
}

// Canonical returns a copy of the curated redirect table for pages moved
// away from the legacy guide
func Canonical() []Rule {
	out := make([]Rule, len(canonical))
	copy(out, canonical)
	return out
}
