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

// Package appconfig manages the configuration of the sdk build tools.
package appconfig

// ManifestCfg represents how the sdk version manifest is located and interpreted
type ManifestCfg struct {
	// FileName of the manifest, looked up one directory above the assemblies root
	FileName string
	// PackagePrefix every sdk library name carries, e.g. "AWSSDK."
	PackagePrefix string
	// FoundationalPackage is implied as a dependency of every other package
	FoundationalPackage string
}

// DownloadCfg represents configuration for fetching platform artifacts
type DownloadCfg struct {
	// URIFormat of the release archive, with {Platform} and {Version} placeholders
	URIFormat              string
	BinaryExtension        string
	DocumentationExtension string
	// TempDir holds the archive while it is downloaded; empty means os.TempDir()
	TempDir            string
	HttpTimeoutSeconds int
	// RetryLimit is the number of extra attempts for a failed http transfer
	RetryLimit int
	// RetryFailedDownloads clears the in-process download mark after a failure
	RetryFailedDownloads bool
	// UseProcessLock guards each platform download with a pid lockfile
	UseProcessLock bool
	// LockWaitSeconds bounds how long to wait for another process holding the platform lock
	LockWaitSeconds int
	// S3Endpoint overrides the endpoint used for s3 mirror downloads
	S3Endpoint string
	// CustomCertificateFile is a PEM bundle trusted in addition to the system pool
	CustomCertificateFile string
}

// LogCfg represents logger configuration
type LogCfg struct {
	Level string
	File  string
}

// SdkArtifactsConfig stores the build tool configuration
type SdkArtifactsConfig struct {
	Manifest ManifestCfg
	Download DownloadCfg
	Log      LogCfg
}
