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

// Package context defines a type that carries the logger and configuration
// across the build tool packages.
package context

import (
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
)

// T transfers context specific data across different execution boundaries.
// It is passed as the first parameter, or stored on the struct that owns an operation.
type T interface {
	Log() log.T
	AppConfig() appconfig.SdkArtifactsConfig
	With(context string) T
	CurrentContext() []string
}

// Default returns a context using the given logger and configuration.
func Default(logger log.T, config appconfig.SdkArtifactsConfig, contextList ...string) T {
	return &defaultContext{
		context:   contextList,
		log:       logger.WithContext(contextList...),
		appconfig: config,
	}
}

type defaultContext struct {
	context   []string
	log       log.T
	appconfig appconfig.SdkArtifactsConfig
}

func (c *defaultContext) With(logContext string) T {
	contextSlice := make([]string, 0, len(c.context)+1)
	contextSlice = append(contextSlice, c.context...)
	contextSlice = append(contextSlice, logContext)
	return &defaultContext{
		context:   contextSlice,
		log:       c.log.WithContext(logContext),
		appconfig: c.appconfig,
	}
}

func (c *defaultContext) Log() log.T {
	return c.log
}

func (c *defaultContext) AppConfig() appconfig.SdkArtifactsConfig {
	return c.appconfig
}

func (c *defaultContext) CurrentContext() []string {
	return c.context
}
