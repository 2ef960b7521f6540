// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar

import (
	"embed"
	"fmt"

	"github.com/fluent-wallet/fluent-docs/pkg/osfakes/osshim"
	"gopkg.in/yaml.v3"
)

//go:embed sidebars/*.yaml
var embedded embed.FS

// Parse decodes YAML sidebar definitions
func Parse(content []byte) (Sidebars, error) {
	s := Sidebars{}
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads sidebar definitions from a YAML file
func Load(o osshim.Os, path string) (Sidebars, error) {
	content, err := osshim.ReadRegularFile(o, path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("can't parse sidebars %s yaml content: %w", path, err)
	}
	return s, nil
}

// Embedded returns the built-in sidebars with the given name
func Embedded(name string) (Sidebars, error) {
	content, err := embedded.ReadFile("sidebars/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no built-in sidebars %s: %w", name, err)
	}
	s, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("can't parse built-in sidebars %s: %w", name, err)
	}
	return s, nil
}
