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

import (
	"fmt"
	"os"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/jsonutil"
	"gopkg.in/yaml.v2"
)

var (
	statFile = os.Stat
	readFile = os.ReadFile
)

// Config loads the build tool configuration.
// Values found in the json (or yaml) override file at path replace the defaults. A missing
// override file is not an error when path is the default file name.
func Config(path string) (SdkArtifactsConfig, error) {
	config := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFileName
	}

	if _, err := statFile(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to locate config override %v: %w", path, err)
	}

	content, err := readFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config override %v: %w", path, err)
	}
	if err := jsonutil.Unmarshal(content, &config); err != nil {
		// yaml keys are the lower cased field names, e.g. download.retrylimit
		config = DefaultConfig()
		if yamlErr := yaml.Unmarshal(content, &config); yamlErr != nil {
			return DefaultConfig(), fmt.Errorf("failed to unmarshal config override %v, expected json or yaml: %w", path, err)
		}
	}
	parser(&config)
	return config, nil
}

// DefaultConfig returns the default build tool configuration
func DefaultConfig() SdkArtifactsConfig {
	return SdkArtifactsConfig{
		Manifest: ManifestCfg{
			FileName:            DefaultManifestFileName,
			PackagePrefix:       DefaultPackagePrefix,
			FoundationalPackage: DefaultFoundationalPackage,
		},
		Download: DownloadCfg{
			URIFormat:              DefaultURIFormat,
			BinaryExtension:        DefaultBinaryExtension,
			DocumentationExtension: DefaultDocumentationExtension,
			HttpTimeoutSeconds:     DefaultHttpTimeoutSeconds,
			RetryLimit:             DefaultRetryLimit,
			RetryFailedDownloads:   false,
			UseProcessLock:         true,
			LockWaitSeconds:        DefaultLockWaitSeconds,
		},
		Log: LogCfg{
			Level: DefaultLogLevel,
		},
	}
}
