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

package sdkartifact

import (
	"os"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/fileutil"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/fileutil/artifact"
	"github.com/nightlyone/lockfile"
)

var (
	fileDownload   = artifact.Download
	createTempFile = os.CreateTemp
	deleteFile     = fileutil.DeleteFile
	unzip          = fileutil.UnzipNoOverwrite
	newLockfile    = func(path string) (platformLock, error) { return lockfile.New(path) }
)

// platformLock is the subset of lockfile.Lockfile the resolver uses.
type platformLock interface {
	TryLock() error
	Unlock() error
}
