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

package context

import (
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
	"github.com/stretchr/testify/mock"
)

// Note: This code is used in the test files. However, this code is not in a _test.go file
// because then we would have to copy it in every test package that needs the mock.

// Mock stands for a mocked context.
type Mock struct {
	mock.Mock
}

// NewMockDefault returns an instance of Mock with the default configuration.
func NewMockDefault() *Mock {
	return NewMockDefaultWithConfig(appconfig.DefaultConfig())
}

// NewMockDefaultWithConfig returns an instance of Mock using the given configuration.
func NewMockDefaultWithConfig(config appconfig.SdkArtifactsConfig) *Mock {
	ctx := new(Mock)
	ctx.On("Log").Return(log.NewMockLog())
	ctx.On("AppConfig").Return(config)
	ctx.On("With", mock.AnythingOfType("string")).Return(ctx)
	ctx.On("CurrentContext").Return([]string{})
	return ctx
}

// AppConfig mocks the AppConfig function.
func (m *Mock) AppConfig() appconfig.SdkArtifactsConfig {
	args := m.Called()
	return args.Get(0).(appconfig.SdkArtifactsConfig)
}

// Log mocks the Log function.
func (m *Mock) Log() log.T {
	args := m.Called()
	return args.Get(0).(log.T)
}

// With mocks the With function.
func (m *Mock) With(ctx string) T {
	args := m.Called(ctx)
	return args.Get(0).(T)
}

// CurrentContext mocks the CurrentContext function.
func (m *Mock) CurrentContext() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
