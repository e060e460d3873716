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

package versionutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	testCases := []struct {
		input    string
		expected Version
	}{
		{"1.2.3.4", Version{Major: 1, Minor: 2, Build: 3, Revision: 4, Components: 4}},
		{"1.2.3", Version{Major: 1, Minor: 2, Build: 3, Components: 3}},
		{"3.7", Version{Major: 3, Minor: 7, Components: 2}},
		{" 3.7.100.0\n", Version{Major: 3, Minor: 7, Build: 100, Components: 4}},
		{"3.07.1", Version{Major: 3, Minor: 7, Build: 1, Components: 3}},
	}

	for _, tc := range testCases {
		version, err := ParseVersion(tc.input)
		assert.Nil(t, err, tc.input)
		assert.Equal(t, tc.expected, version, tc.input)
	}
}

func TestParseVersionInvalid(t *testing.T) {
	for _, input := range []string{"", "3", "1.2.3.4.5", "a.b.c", "1.2.x", "1..2", "1.-2.3", "1.2.3-beta", "1.2.+3"} {
		_, err := ParseVersion(input)
		assert.NotNil(t, err, input)
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "3.7.100.0", MustParseVersion("3.7.100.0").String())
	assert.Equal(t, "1.2.3", MustParseVersion("1.2.3").String())
	assert.Equal(t, "3.7", MustParseVersion("3.07").String())
	assert.Equal(t, "0.0", Version{}.String())
}

func TestMustParseVersionPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseVersion("not-a-version") })
}

func TestVersionCompare(t *testing.T) {
	assert.True(t, MustParseVersion("3.7.100.0").Compare(MustParseVersion("3.7.99.12")) > 0)
	assert.True(t, MustParseVersion("3.7.9").Compare(MustParseVersion("3.7.10")) < 0)
	assert.True(t, MustParseVersion("1.2.3").Compare(MustParseVersion("1.2.3.0")) < 0)
	assert.Equal(t, 0, MustParseVersion("3.7.100.0").Compare(MustParseVersion("3.7.100.0")))
}

func TestCompareSemVer(t *testing.T) {
	assert.True(t, Compare("1.2.3", "1.2.3-4", false) > 0)
	assert.True(t, Compare("3.0.0+foo", "2.9.9", false) > 0)
	assert.True(t, Compare("1.0.0", "1.0.0-rc.1", false) > 0)
	assert.Equal(t, 0, Compare("3.0.0+foo", "3.0.0+bar", false))
}

func TestCompareDotted(t *testing.T) {
	assert.True(t, Compare("2", "10", false) < 0)
	assert.True(t, Compare("1.0.0", "1.0.0.1", false) < 0)
	assert.True(t, Compare("1.0.0", "1.0.0.0", true) < 0)
	assert.True(t, Compare("1.0.0", "1.0.a", false) < 0)
	assert.True(t, Compare("1.10", "1.9", false) > 0)
	assert.True(t, Compare("3.7.100.0", "3.5.2.1", false) > 0)

	assert.Equal(t, 0, Compare("1.0.002", "1.0.2", false))
	assert.Equal(t, 0, Compare("1.0.1", "1.0.1.0", false))
	assert.Equal(t, 0, Compare("1.0", "1", false))
	assert.Equal(t, 0, Compare("0", "00.00.00", false))
}

func TestTrimZeroComponents(t *testing.T) {
	assert.Equal(t, "asdf", trimZeroComponents("asdf.0.00.000"))
	assert.Equal(t, "asdf.100", trimZeroComponents("asdf.100"))
	assert.Equal(t, "3.7.100", trimZeroComponents("3.7.100.0"))
	assert.Equal(t, "", trimZeroComponents("0.0"))
}
