// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package link

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Build builds a site path given its elements
func Build(elem ...string) (string, error) {
	if len(elem) == 0 {
		return "", nil
	}
	jointPath, err := url.JoinPath(elem[0], elem[1:]...)
	if err != nil {
		return "", fmt.Errorf("failed to join paths: %w", err)
	}
	if jointPath == "" {
		return ".", nil
	}
	unescaped, err := url.PathUnescape(jointPath)
	if err != nil {
		return "", fmt.Errorf("failed to unescape joint path: %w", err)
	}
	return strings.ReplaceAll(unescaped, " ", "%20"), nil
}

// Key normalizes a site path for comparison. Query, fragment and trailing
// slashes are dropped, the root stays "/".
func Key(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	p = path.Clean("/" + p)
	return p
}

// IsInternal reports whether the link is a site-relative path
func IsInternal(l string) bool {
	return strings.HasPrefix(l, "/") && !strings.HasPrefix(l, "//")
}

// HasExtension reports whether the last path segment carries a file extension
func HasExtension(p string) bool {
	return !strings.HasSuffix(p, "/") && path.Ext(p) != ""
}
