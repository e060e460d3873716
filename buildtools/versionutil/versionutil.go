// Copyright 2024 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package versionutil parses and compares dotted sdk versions.
package versionutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coreos/go-semver/semver"
)

const (
	minComponents = 2
	maxComponents = 4
)

// Version is a dotted numeric version of two to four components,
// e.g. 3.7 or 3.7.100.0.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
	// Components is how many of the fields above were present when parsed.
	Components int
}

// ParseVersion parses major.minor[.build[.revision]].
func ParseVersion(version string) (Version, error) {
	trimmed := strings.TrimSpace(version)
	parts := strings.Split(trimmed, ".")
	if len(parts) < minComponents || len(parts) > maxComponents {
		return Version{}, fmt.Errorf("invalid version string %q: expected %d to %d components", version, minComponents, maxComponents)
	}

	values := make([]int, maxComponents)
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return Version{}, fmt.Errorf("invalid version string %q: component %q is not a number", version, part)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version string %q: %w", version, err)
		}
		values[i] = value
	}

	return Version{
		Major:      values[0],
		Minor:      values[1],
		Build:      values[2],
		Revision:   values[3],
		Components: len(parts),
	}, nil
}

// MustParseVersion is like ParseVersion but panics on error. Intended for constants and tests.
func MustParseVersion(version string) Version {
	v, err := ParseVersion(version)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version with the number of components it was parsed with.
func (v Version) String() string {
	components := v.Components
	if components < minComponents {
		components = minComponents
	}
	values := []int{v.Major, v.Minor, v.Build, v.Revision}[:components]
	parts := make([]string, components)
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, ".")
}

// Compare returns a negative number, zero or a positive number when v is lower than,
// equal to or greater than other. A version with fewer components sorts first when
// all shared components are equal.
func (v Version) Compare(other Version) int {
	return Compare(v.String(), other.String(), true)
}

// Compare returns 0 if two versions are equal, a negative number if this < other and a
// positive number if this > other.
// When both versions are semver compliant, semver precedence is used. Otherwise versions
// are compared component by component, numerically where both components are numbers.
// Unless strict is set, trailing zero components are ignored (1.0.0.0 == 1).
func Compare(this string, other string, strict bool) int {
	thisSemVer, thisErr := semver.NewVersion(this)
	otherSemVer, otherErr := semver.NewVersion(other)
	if thisErr == nil && otherErr == nil {
		return thisSemVer.Compare(*otherSemVer)
	}

	if !strict {
		this = trimZeroComponents(this)
		other = trimZeroComponents(other)
	}

	thisComponents := strings.Split(this, ".")
	otherComponents := strings.Split(other, ".")
	for i := 0; i < len(thisComponents) && i < len(otherComponents); i++ {
		if result := compareComponent(thisComponents[i], otherComponents[i]); result != 0 {
			return result
		}
	}
	return len(thisComponents) - len(otherComponents)
}

func compareComponent(this, other string) int {
	thisNum, thisErr := strconv.Atoi(this)
	otherNum, otherErr := strconv.Atoi(other)
	if thisErr == nil && otherErr == nil {
		switch {
		case thisNum < otherNum:
			return -1
		case thisNum > otherNum:
			return 1
		}
		return 0
	}
	return strings.Compare(this, other)
}

// trimZeroComponents drops trailing components that are numerically zero.
func trimZeroComponents(version string) string {
	components := strings.Split(version, ".")
	end := len(components)
	for end > 0 {
		if n, err := strconv.Atoi(components[end-1]); err != nil || n != 0 {
			break
		}
		end--
	}
	return strings.Join(components[:end], ".")
}
