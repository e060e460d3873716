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

// Package fileutil contains utilities for working with the file system.
package fileutil

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
)

// DeleteFile deletes the specified file
func DeleteFile(filepath string) (err error) {
	return fs.Remove(filepath)
}

// Exists returns true if the given file exists, false otherwise, ignoring any underlying error
func Exists(filePath string) bool {
	exist, _ := LocalFileExist(filePath)
	return exist
}

// LocalFileExist returns true if the given file exists, false otherwise.
func LocalFileExist(path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if fs.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MakeDirs create the directories along the path if missing.
func MakeDirs(destinationDir string) (err error) {
	if err = fs.MkdirAll(destinationDir, appconfig.ReadWriteExecuteAccess); err != nil {
		err = fmt.Errorf("failed to create directory %v. %v", destinationDir, err)
	}
	return
}

// IsDirectory returns true or false depending
// if given srcPath is directory or not
func IsDirectory(srcPath string) bool {
	srcFileInfo, err := fs.Stat(srcPath)
	if err != nil {
		return false
	}
	return srcFileInfo.Mode().IsDir()
}

// entryBaseName returns the last path element of a zip entry name. Archives
// written on Windows may use backslash separators.
func entryBaseName(name string) string {
	return path.Base(strings.ReplaceAll(name, "\\", "/"))
}

// UnzipNoOverwrite extracts every file entry of the src archive directly into dest,
// dropping any directory structure inside the archive. Entries whose target already
// exists in dest are skipped and left untouched. The names of the files written are returned.
func UnzipNoOverwrite(src, dest string) (written []string, err error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %v: %v", src, err)
	}
	defer r.Close()

	if err = MakeDirs(dest); err != nil {
		return nil, err
	}

	// Closure to address file descriptors issue with all the deferred .Close() methods
	extractFile := func(f *zip.File, target string) (bool, error) {
		out, err := fs.OpenFile(target, appconfig.FileFlagsCreateExclusive, appconfig.ReadWriteSharedAccess)
		if err != nil {
			if os.IsExist(err) {
				return false, nil
			}
			return false, err
		}
		defer out.Close()

		rc, err := f.Open()
		if err != nil {
			return false, err
		}
		defer rc.Close()

		if _, err = io.Copy(out, rc); err != nil {
			out.Close()
			_ = fs.Remove(target)
			return false, err
		}
		return true, nil
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := entryBaseName(f.Name)
		if name == "." || name == "/" || name == ".." {
			continue
		}
		target := filepath.Join(dest, name)
		if Exists(target) {
			continue
		}

		extracted, err := extractFile(f, target)
		if err != nil {
			return written, fmt.Errorf("failed to extract %v to %v: %v", f.Name, target, err)
		}
		if extracted {
			written = append(written, name)
		}
	}
	return written, nil
}
