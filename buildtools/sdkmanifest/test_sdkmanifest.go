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

package sdkmanifest

import (
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/versionutil"
	"github.com/stretchr/testify/mock"
)

// Note: This code is used in the test files. However, this code is not in a _test.go file
// because then we would have to copy it in every test package that needs the mock.

// Mock stands for a mocked manifest reader.
type Mock struct {
	mock.Mock
}

// NewMockWithVersion returns a Mock whose GetSDKVersion answers version.
func NewMockWithVersion(version string) *Mock {
	m := new(Mock)
	m.On("GetSDKVersion", mock.Anything).Return(versionutil.MustParseVersion(version), nil)
	return m
}

// GetDependencies mocks the GetDependencies function.
func (m *Mock) GetDependencies(assembliesRoot string, packageName string) ([]string, error) {
	args := m.Called(assembliesRoot, packageName)
	dependencies, _ := args.Get(0).([]string)
	return dependencies, args.Error(1)
}

// GetSDKVersion mocks the GetSDKVersion function.
func (m *Mock) GetSDKVersion(assembliesRoot string) (versionutil.Version, error) {
	args := m.Called(assembliesRoot)
	return args.Get(0).(versionutil.Version), args.Error(1)
}

// ListServices mocks the ListServices function.
func (m *Mock) ListServices(assembliesRoot string) ([]string, error) {
	args := m.Called(assembliesRoot)
	services, _ := args.Get(0).([]string)
	return services, args.Error(1)
}
