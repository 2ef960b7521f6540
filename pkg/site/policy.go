// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Policy decides what happens when a broken link is found
type Policy string

const (
	// PolicyIgnore drops findings
	PolicyIgnore Policy = "ignore"
	// PolicyLog logs findings at info level
	PolicyLog Policy = "log"
	// PolicyWarn logs findings as warnings
	PolicyWarn Policy = "warn"
	// PolicyThrow fails the build
	PolicyThrow Policy = "throw"
)

// Valid reports whether p is a known policy
func (p Policy) Valid() bool {
	switch p {
	case PolicyIgnore, PolicyLog, PolicyWarn, PolicyThrow:
		return true
	}
	return false
}

// Apply handles findings according to the policy. Only PolicyThrow
// returns an error.
func (p Policy) Apply(kind string, findings []error) error {
	if len(findings) == 0 {
		return nil
	}
	switch p {
	case PolicyThrow:
		return &BrokenLinksError{Kind: kind, Findings: findings}
	case PolicyWarn:
		for _, f := range findings {
			klog.Warningf("%s: %v", kind, f)
		}
	case PolicyLog:
		for _, f := range findings {
			klog.Infof("%s: %v", kind, f)
		}
	}
	return nil
}

// BrokenLinksError is returned when findings are fatal
type BrokenLinksError struct {
	Kind     string
	Findings []error
}

func (e *BrokenLinksError) Error() string {
	msg := fmt.Sprintf("%d %s found:", len(e.Findings), e.Kind)
	for _, f := range e.Findings {
		msg += "\n\t* " + f.Error()
	}
	return msg
}
