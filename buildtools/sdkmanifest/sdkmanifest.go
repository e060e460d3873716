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

// Package sdkmanifest reads the sdk version manifest that sits next to the
// assemblies root and answers dependency and version questions from it.
package sdkmanifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/context"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/jsonutil"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/sdkerr"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/versionutil"
)

// VersionManifest is the content of _sdk-versions.json. ProductVersion is kept raw so
// that a mistyped version only fails GetSDKVersion.
type VersionManifest struct {
	ProductVersion  json.RawMessage           `json:"ProductVersion"`
	ServiceVersions map[string]ServiceVersion `json:"ServiceVersions"`
}

// ServiceVersion describes one service package. Only the keys of Dependencies are meaningful.
type ServiceVersion struct {
	Dependencies map[string]json.RawMessage `json:"Dependencies"`
}

// T answers questions about the manifest of an assemblies root.
type T interface {
	GetDependencies(assembliesRoot string, packageName string) ([]string, error)
	GetSDKVersion(assembliesRoot string) (versionutil.Version, error)
	ListServices(assembliesRoot string) ([]string, error)
}

// Reader reads the manifest from disk on every call.
type Reader struct {
	context context.T
}

// New returns a manifest Reader.
func New(context context.T) *Reader {
	return &Reader{context: context.With("[SdkManifest]")}
}

// ManifestPath returns the location of the manifest for assembliesRoot: one directory above it.
func (r *Reader) ManifestPath(assembliesRoot string) string {
	return filepath.Join(assembliesRoot, "..", r.context.AppConfig().Manifest.FileName)
}

// Load reads and decodes the manifest.
func (r *Reader) Load(op string, assembliesRoot string) (*VersionManifest, error) {
	manifestPath := r.ManifestPath(assembliesRoot)
	r.context.Log().Debugf("reading sdk manifest %v", manifestPath)

	content, err := readFile(manifestPath)
	if err != nil {
		return nil, sdkerr.New(sdkerr.ManifestReadFailure, op, manifestPath, err)
	}

	var manifest VersionManifest
	if err = jsonutil.Unmarshal(content, &manifest); err != nil {
		return nil, sdkerr.New(sdkerr.ManifestReadFailure, op, manifestPath, err)
	}
	r.context.Log().Debugf("loaded sdk manifest %v", &manifest)
	return &manifest, nil
}

// GetDependencies returns the short names of the packages packageName depends on,
// excluding the foundational package every package implicitly depends on. The name
// must carry the sdk library prefix, e.g. AWSSDK.S3. The result is sorted.
func (r *Reader) GetDependencies(assembliesRoot string, packageName string) ([]string, error) {
	const op = "GetDependencies"
	manifestCfg := r.context.AppConfig().Manifest

	if !strings.HasPrefix(packageName, manifestCfg.PackagePrefix) {
		return nil, sdkerr.Newf(sdkerr.InvalidInput, op, packageName, "package name must start with %q", manifestCfg.PackagePrefix)
	}
	serviceName := strings.TrimPrefix(packageName, manifestCfg.PackagePrefix)

	manifest, err := r.Load(op, assembliesRoot)
	if err != nil {
		return nil, err
	}

	if serviceName == manifestCfg.FoundationalPackage {
		return []string{}, nil
	}

	service, found := manifest.ServiceVersions[serviceName]
	if !found {
		if suggestion, found := closestService(serviceName, manifest.ServiceVersions); found {
			return nil, sdkerr.Newf(sdkerr.PackageNotFound, op, packageName, "no entry for %v in %v, did you mean %v%v?",
				serviceName, r.ManifestPath(assembliesRoot), manifestCfg.PackagePrefix, suggestion)
		}
		return nil, sdkerr.Newf(sdkerr.PackageNotFound, op, packageName, "no entry for %v in %v", serviceName, r.ManifestPath(assembliesRoot))
	}

	dependencies := make([]string, 0, len(service.Dependencies))
	for dependency := range service.Dependencies {
		if dependency != manifestCfg.FoundationalPackage {
			dependencies = append(dependencies, dependency)
		}
	}
	sort.Strings(dependencies)

	r.context.Log().Debugf("%v depends on %v", packageName, dependencies)
	return dependencies, nil
}

// GetSDKVersion returns the ProductVersion of the manifest.
func (r *Reader) GetSDKVersion(assembliesRoot string) (versionutil.Version, error) {
	const op = "GetSDKVersion"
	manifest, err := r.Load(op, assembliesRoot)
	if err != nil {
		return versionutil.Version{}, err
	}

	if len(manifest.ProductVersion) == 0 || string(manifest.ProductVersion) == "null" {
		return versionutil.Version{}, sdkerr.Newf(sdkerr.VersionParseFailure, op, r.ManifestPath(assembliesRoot), "ProductVersion is missing")
	}
	var productVersion string
	if err = json.Unmarshal(manifest.ProductVersion, &productVersion); err != nil {
		return versionutil.Version{}, sdkerr.Newf(sdkerr.VersionParseFailure, op, r.ManifestPath(assembliesRoot), "ProductVersion %s is not a string", manifest.ProductVersion)
	}
	if productVersion == "" {
		return versionutil.Version{}, sdkerr.Newf(sdkerr.VersionParseFailure, op, r.ManifestPath(assembliesRoot), "ProductVersion is missing")
	}
	version, err := versionutil.ParseVersion(productVersion)
	if err != nil {
		return versionutil.Version{}, sdkerr.New(sdkerr.VersionParseFailure, op, r.ManifestPath(assembliesRoot), err)
	}
	return version, nil
}

// ListServices returns the sorted names of every service in the manifest.
func (r *Reader) ListServices(assembliesRoot string) ([]string, error) {
	manifest, err := r.Load("ListServices", assembliesRoot)
	if err != nil {
		return nil, err
	}

	services := make([]string, 0, len(manifest.ServiceVersions))
	for service := range manifest.ServiceVersions {
		services = append(services, service)
	}
	sort.Strings(services)
	return services, nil
}

// String renders the manifest summary for logging.
func (m *VersionManifest) String() string {
	return fmt.Sprintf("{ProductVersion: %s; Services: %d}", m.ProductVersion, len(m.ServiceVersions))
}
