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

package fileutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type zipEntry struct {
	name    string
	content string
}

func writeZip(t *testing.T, dir string, entries []zipEntry) string {
	zipPath := filepath.Join(dir, "archive.zip")
	file, err := os.Create(zipPath)
	assert.Nil(t, err)
	defer file.Close()

	writer := zip.NewWriter(file)
	for _, entry := range entries {
		w, err := writer.Create(entry.name)
		assert.Nil(t, err)
		if entry.content != "" {
			_, err = w.Write([]byte(entry.content))
			assert.Nil(t, err)
		}
	}
	assert.Nil(t, writer.Close())
	return zipPath
}

func readText(t *testing.T, path string) string {
	content, err := os.ReadFile(path)
	assert.Nil(t, err)
	return string(content)
}

func TestLocalFileExist(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "AWSSDK.Core.dll")

	exists, err := LocalFileExist(filePath)
	assert.Nil(t, err)
	assert.False(t, exists)

	assert.Nil(t, os.WriteFile(filePath, []byte("core"), 0644))
	exists, err = LocalFileExist(filePath)
	assert.Nil(t, err)
	assert.True(t, exists)
	assert.True(t, Exists(filePath))
	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(filePath))

	assert.Nil(t, DeleteFile(filePath))
	assert.False(t, Exists(filePath))
}

func TestMakeDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assemblies", "net45")
	assert.Nil(t, MakeDirs(dir))
	assert.True(t, IsDirectory(dir))
	// idempotent
	assert.Nil(t, MakeDirs(dir))
}

func TestUnzipNoOverwriteFlattens(t *testing.T) {
	workDir := t.TempDir()
	dest := filepath.Join(workDir, "net45")
	zipPath := writeZip(t, workDir, []zipEntry{
		{name: "bin/"},
		{name: "bin/net45/AWSSDK.S3.dll", content: "s3 binary"},
		{name: "bin/net45/AWSSDK.S3.xml", content: "s3 docs"},
		{name: "docs\\AWSSDK.Core.xml", content: "core docs"},
	})

	written, err := UnzipNoOverwrite(zipPath, dest)

	assert.Nil(t, err)
	assert.ElementsMatch(t, []string{"AWSSDK.S3.dll", "AWSSDK.S3.xml", "AWSSDK.Core.xml"}, written)
	assert.Equal(t, "s3 binary", readText(t, filepath.Join(dest, "AWSSDK.S3.dll")))
	assert.Equal(t, "s3 docs", readText(t, filepath.Join(dest, "AWSSDK.S3.xml")))
	assert.Equal(t, "core docs", readText(t, filepath.Join(dest, "AWSSDK.Core.xml")))
	assert.False(t, Exists(filepath.Join(dest, "bin")))
}

func TestUnzipNoOverwriteKeepsExistingFiles(t *testing.T) {
	workDir := t.TempDir()
	dest := filepath.Join(workDir, "net45")
	assert.Nil(t, os.MkdirAll(dest, 0755))
	existing := filepath.Join(dest, "AWSSDK.S3.dll")
	assert.Nil(t, os.WriteFile(existing, []byte("locally built"), 0644))

	zipPath := writeZip(t, workDir, []zipEntry{
		{name: "net45/AWSSDK.S3.dll", content: "released"},
		{name: "net45/AWSSDK.S3.xml", content: "released docs"},
	})

	written, err := UnzipNoOverwrite(zipPath, dest)

	assert.Nil(t, err)
	assert.Equal(t, []string{"AWSSDK.S3.xml"}, written)
	assert.Equal(t, "locally built", readText(t, existing))
}

func TestUnzipNoOverwriteDuplicateBaseNames(t *testing.T) {
	workDir := t.TempDir()
	dest := filepath.Join(workDir, "out")
	zipPath := writeZip(t, workDir, []zipEntry{
		{name: "a/AWSSDK.Core.dll", content: "first"},
		{name: "b/AWSSDK.Core.dll", content: "second"},
	})

	written, err := UnzipNoOverwrite(zipPath, dest)

	assert.Nil(t, err)
	assert.Equal(t, []string{"AWSSDK.Core.dll"}, written)
	assert.Equal(t, "first", readText(t, filepath.Join(dest, "AWSSDK.Core.dll")))
}

func TestUnzipNoOverwriteInvalidArchive(t *testing.T) {
	workDir := t.TempDir()
	zipPath := filepath.Join(workDir, "broken.zip")
	assert.Nil(t, os.WriteFile(zipPath, []byte("this is not a zip"), 0644))

	written, err := UnzipNoOverwrite(zipPath, filepath.Join(workDir, "out"))

	assert.NotNil(t, err)
	assert.Empty(t, written)
	assert.False(t, Exists(filepath.Join(workDir, "out")))
}
