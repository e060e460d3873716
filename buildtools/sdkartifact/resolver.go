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

// Package sdkartifact makes sure the released sdk assemblies a build needs are present
// under an assemblies root, downloading and unpacking platform archives when they are not.
package sdkartifact

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/context"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/fileutil"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/fileutil/artifact"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/sdkerr"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/sdkmanifest"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/versionutil"
	"github.com/prometheus/client_golang/prometheus"
)

// Resolver downloads sdk platform archives on demand. Each Resolver keeps its own
// record of the platform directories it has fetched, so a platform archive is
// downloaded at most once per Resolver.
type Resolver struct {
	context  context.T
	manifest sdkmanifest.T
	guard    *downloadGuard
	metrics  *Metrics

	// platformLocks serialises lockfile use within the process, keyed by lock path
	platformLocks sync.Map
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithManifest replaces the manifest reader.
func WithManifest(manifest sdkmanifest.T) Option {
	return func(r *Resolver) {
		r.manifest = manifest
	}
}

// WithRegisterer registers the resolver metrics on registerer instead of a private registry.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(r *Resolver) {
		r.metrics = NewMetrics(registerer)
	}
}

// New returns a Resolver.
func New(context context.T, opts ...Option) *Resolver {
	resolverContext := context.With("[SdkArtifact]")
	r := &Resolver{
		context: resolverContext,
		guard:   newDownloadGuard(resolverContext.AppConfig().Download.RetryFailedDownloads),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.manifest == nil {
		r.manifest = sdkmanifest.New(context)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics(prometheus.NewRegistry())
	}
	return r
}

// GetDependencies returns the dependencies of packageName recorded in the manifest.
func (r *Resolver) GetDependencies(assembliesRoot string, packageName string) ([]string, error) {
	return r.manifest.GetDependencies(assembliesRoot, packageName)
}

// GetSDKVersion returns the sdk product version recorded in the manifest.
func (r *Resolver) GetSDKVersion(assembliesRoot string) (versionutil.Version, error) {
	return r.manifest.GetSDKVersion(assembliesRoot)
}

// ExpectedFiles returns the file names EnsureAvailable guarantees for packageName.
func (r *Resolver) ExpectedFiles(packageName string) []string {
	download := r.context.AppConfig().Download
	return []string{
		packageName + "." + download.BinaryExtension,
		packageName + "." + download.DocumentationExtension,
	}
}

// ArtifactURL returns the release archive location for a platform and version.
func (r *Resolver) ArtifactURL(platformName string, version versionutil.Version) string {
	url := r.context.AppConfig().Download.URIFormat
	url = strings.Replace(url, appconfig.PlatformHolder, platformName, -1)
	url = strings.Replace(url, appconfig.VersionHolder, version.String(), -1)
	return url
}

// Attempted reports whether a fetch for platformPath has been attempted by this Resolver.
func (r *Resolver) Attempted(platformPath string) bool {
	return r.guard.contains(platformPath)
}

// AttemptedPlatforms returns the platform directories fetched so far, sorted.
func (r *Resolver) AttemptedPlatforms() []string {
	return r.guard.paths()
}

// EnsureAvailable makes sure that for every platform assembliesRoot/<platform> holds the
// binary and documentation file of packageName, fetching the platform archive of the
// manifest's sdk version when either is missing. Platforms are processed in order and
// the first failure ends the call.
func (r *Resolver) EnsureAvailable(packageName string, assembliesRoot string, platformNames []string) error {
	const op = "EnsureAvailable"
	log := r.context.Log()

	if !isPathElement(packageName) {
		return sdkerr.Newf(sdkerr.InvalidInput, op, assembliesRoot, "invalid package name %q", packageName)
	}
	if err := fileutil.MakeDirs(assembliesRoot); err != nil {
		return sdkerr.New(sdkerr.LocalIOFailure, op, assembliesRoot, err)
	}

	for _, platformName := range platformNames {
		if !isPathElement(platformName) {
			return sdkerr.Newf(sdkerr.InvalidInput, op, assembliesRoot, "invalid platform name %q", platformName)
		}
		if err := r.ensurePlatform(packageName, assembliesRoot, platformName); err != nil {
			return err
		}
		log.Debugf("%v is available for %v", packageName, platformName)
	}
	return nil
}

// isPathElement reports whether name can be used as a single file or directory name.
func isPathElement(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func (r *Resolver) ensurePlatform(packageName string, assembliesRoot string, platformName string) error {
	const op = "EnsureAvailable"
	platformPath := filepath.Join(assembliesRoot, platformName)
	if err := fileutil.MakeDirs(platformPath); err != nil {
		return sdkerr.New(sdkerr.LocalIOFailure, op, platformPath, err)
	}

	unlock, err := r.lockPlatform(assembliesRoot, platformName)
	if err != nil {
		return err
	}
	defer unlock()

	expectedFiles := r.ExpectedFiles(packageName)
	for _, fileName := range expectedFiles {
		if fileutil.Exists(filepath.Join(platformPath, fileName)) {
			r.metrics.existingFiles.Inc()
			continue
		}

		// the version is looked up for each missing file
		version, err := r.manifest.GetSDKVersion(assembliesRoot)
		if err != nil {
			return err
		}
		if err = r.FetchAndUnpack(platformPath, platformName, version); err != nil {
			return err
		}
	}

	for _, fileName := range expectedFiles {
		filePath := filepath.Join(platformPath, fileName)
		if !fileutil.Exists(filePath) {
			return sdkerr.Newf(sdkerr.ArtifactMissing, op, filePath, "%v is not part of the %v archive", fileName, platformName)
		}
	}
	return nil
}

// FetchAndUnpack downloads the release archive of version for platformName and writes
// its files into platformPath, never replacing a file that already exists there. Only
// the first call for a given platformPath does any work; later calls return nil
// without network activity, unless RetryFailedDownloads is set and the first call failed.
func (r *Resolver) FetchAndUnpack(platformPath string, platformName string, version versionutil.Version) error {
	log := r.context.Log()
	url := r.ArtifactURL(platformName, version)

	fetched, err := r.guard.do(platformPath, func() error {
		return r.fetchAndUnpack(platformPath, url)
	})
	switch {
	case !fetched:
		log.Debugf("skipping %v, a download into %v was already attempted", url, platformPath)
		r.metrics.fetchTotal.WithLabelValues(fetchStatusSkipped).Inc()
	case err != nil:
		r.metrics.fetchTotal.WithLabelValues(fetchStatusError).Inc()
	default:
		r.metrics.fetchTotal.WithLabelValues(fetchStatusSuccess).Inc()
	}
	return err
}

func (r *Resolver) fetchAndUnpack(platformPath string, url string) error {
	const op = "FetchAndUnpack"
	log := r.context.Log()
	start := time.Now()
	defer func() {
		r.metrics.fetchDuration.Observe(time.Since(start).Seconds())
	}()

	tempFile, err := createTempFile(r.context.AppConfig().Download.TempDir, "aws-sdk-*.zip")
	if err != nil {
		return sdkerr.New(sdkerr.LocalIOFailure, op, url, err)
	}
	tempPath := tempFile.Name()
	defer func() {
		if err := deleteFile(tempPath); err != nil && !os.IsNotExist(err) {
			log.Warnf("failed to delete temporary archive %v: %v", tempPath, err)
		}
	}()
	if err = tempFile.Close(); err != nil {
		return sdkerr.New(sdkerr.LocalIOFailure, op, url, err)
	}

	log.Infof("downloading %v", url)
	if _, err = fileDownload(r.context, artifact.DownloadInput{SourceURL: url, DestinationFile: tempPath}); err != nil {
		return sdkerr.New(sdkerr.DownloadFailure, op, url, err)
	}

	written, err := unzip(tempPath, platformPath)
	r.metrics.unpackedFiles.Add(float64(len(written)))
	if err != nil {
		return sdkerr.New(sdkerr.UnpackFailure, op, url, err)
	}
	log.Infof("unpacked %d files from %v into %v", len(written), url, platformPath)
	return nil
}
