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

package appconfig

import "strings"

// parser applies limits and assigns default values to an override
func parser(config *SdkArtifactsConfig) {
	config.Manifest.FileName = getStringValue(config.Manifest.FileName, DefaultManifestFileName)
	config.Manifest.PackagePrefix = getStringValue(config.Manifest.PackagePrefix, DefaultPackagePrefix)
	config.Manifest.FoundationalPackage = getStringValue(config.Manifest.FoundationalPackage, DefaultFoundationalPackage)

	config.Download.URIFormat = getStringValue(config.Download.URIFormat, DefaultURIFormat)
	config.Download.BinaryExtension = strings.TrimPrefix(
		getStringValue(config.Download.BinaryExtension, DefaultBinaryExtension), ".")
	config.Download.DocumentationExtension = strings.TrimPrefix(
		getStringValue(config.Download.DocumentationExtension, DefaultDocumentationExtension), ".")
	config.Download.HttpTimeoutSeconds = getNumericValue(
		config.Download.HttpTimeoutSeconds,
		HttpTimeoutSecondsMin,
		HttpTimeoutSecondsMax,
		DefaultHttpTimeoutSeconds)
	config.Download.RetryLimit = getNumericValue(
		config.Download.RetryLimit,
		RetryLimitMin,
		RetryLimitMax,
		DefaultRetryLimit)
	config.Download.LockWaitSeconds = getNumericValue(
		config.Download.LockWaitSeconds,
		LockWaitSecondsMin,
		LockWaitSecondsMax,
		DefaultLockWaitSeconds)

	config.Log.Level = getStringValue(config.Log.Level, DefaultLogLevel)
}

func getStringValue(configValue string, defaultValue string) string {
	if strings.TrimSpace(configValue) == "" {
		return defaultValue
	}
	return configValue
}

func getNumericValue(configValue int, minValue int, maxValue int, defaultValue int) int {
	if configValue < minValue || configValue > maxValue {
		return defaultValue
	}
	return configValue
}
