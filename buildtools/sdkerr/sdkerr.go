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

// Package sdkerr defines the errors returned by sdk manifest and artifact operations.
package sdkerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	// InvalidInput means a package name is missing the sdk library prefix.
	InvalidInput Kind = "InvalidInput"
	// ManifestReadFailure means the version manifest is missing, unreadable or malformed.
	ManifestReadFailure Kind = "ManifestReadFailure"
	// PackageNotFound means the manifest has no entry for the package.
	PackageNotFound Kind = "PackageNotFound"
	// VersionParseFailure means ProductVersion is missing or not a dotted version.
	VersionParseFailure Kind = "VersionParseFailure"
	// DownloadFailure means fetching the release archive failed.
	DownloadFailure Kind = "DownloadFailure"
	// UnpackFailure means the archive could not be opened or an entry not written.
	UnpackFailure Kind = "UnpackFailure"
	// LocalIOFailure means a local directory or temporary file could not be created.
	LocalIOFailure Kind = "LocalIOFailure"
	// ArtifactMissing means an expected file is still absent after fetching.
	ArtifactMissing Kind = "ArtifactMissing"
	// Unknown is reported for errors that carry no Kind.
	Unknown Kind = ""
)

// Error is a classified failure with the operation and subject it concerns.
type Error struct {
	Kind Kind
	// Op is the operation being attempted, e.g. "GetDependencies".
	Op string
	// Subject is the path, URL or package the operation was working on.
	Subject string
	Err     error
}

// New returns an *Error.
func New(kind Kind, op string, subject string, cause error) error {
	return &Error{Kind: kind, Op: op, Subject: subject, Err: cause}
}

// Newf returns an *Error whose cause is built from format.
func Newf(kind Kind, op string, subject string, format string, params ...interface{}) error {
	return New(kind, op, subject, fmt.Errorf(format, params...))
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Subject != "" {
		msg += " (" + e.Subject + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
