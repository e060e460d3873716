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

import "os"

const (
	// DefaultConfigFileName is looked up in the working directory when no path is given
	DefaultConfigFileName = "sdk-artifacts.json"

	DefaultManifestFileName    = "_sdk-versions.json"
	DefaultPackagePrefix       = "AWSSDK."
	DefaultFoundationalPackage = "Core"

	// PlatformHolder and VersionHolder are substituted in the download URI format
	PlatformHolder = "{Platform}"
	VersionHolder  = "{Version}"

	DefaultURIFormat              = "https://sdk-for-net.amazonwebservices.com/releases/aws-sdk-" + PlatformHolder + "-" + VersionHolder + ".zip"
	DefaultBinaryExtension        = "dll"
	DefaultDocumentationExtension = "xml"

	DefaultHttpTimeoutSeconds = 600
	HttpTimeoutSecondsMin     = 5
	HttpTimeoutSecondsMax     = 3600

	DefaultRetryLimit = 0
	RetryLimitMin     = 0
	RetryLimitMax     = 10

	DefaultLockWaitSeconds = 600
	LockWaitSecondsMin     = 0
	LockWaitSecondsMax     = 3600

	DefaultLogLevel = "info"
)

const (
	// ReadWriteAccess means read and write access for the owner only
	ReadWriteAccess os.FileMode = 0600

	// ReadWriteSharedAccess means read and write access for the owner, read for others
	ReadWriteSharedAccess os.FileMode = 0644

	// ReadWriteExecuteAccess means read, write, and execute access for the owner, read and execute for others
	ReadWriteExecuteAccess os.FileMode = 0755

	// FileFlagsCreateExclusive opens a new file and fails if it already exists
	FileFlagsCreateExclusive = os.O_CREATE | os.O_WRONLY | os.O_EXCL
)
