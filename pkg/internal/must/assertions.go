// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package must

import "fmt"

// Assertions guard programmer errors, not operating errors. Operating errors
// are returned, broken assertions panic with a stack trace.

// Succeed panics on error.
func Succeed[T any](obj T, err error) T {
	if err != nil {
		panic(fmt.Errorf("assertion broken: %w", err))
	}
	return obj
}

// BeTrue panics when cond is false.
func BeTrue(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("assertion broken: "+format, args...))
	}
}
