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
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/context"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/fileutil/artifact"
	"github.com/stretchr/testify/require"
)

// zipArchive builds an in-memory release archive from name -> content pairs.
func zipArchive(t *testing.T, entries map[string]string) []byte {
	var buffer bytes.Buffer
	writer := zip.NewWriter(&buffer)
	for name, content := range entries {
		w, err := writer.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buffer.Bytes()
}

// fakeDownloader replaces fileDownload and serves archives by url.
type fakeDownloader struct {
	mu        sync.Mutex
	archives  map[string][]byte
	failures  map[string]error
	calls     map[string]int
	tempFiles []string
	// gate, when set, blocks every download until it is closed
	gate chan struct{}
}

func newFakeDownloader() *fakeDownloader {
	return &fakeDownloader{
		archives: make(map[string][]byte),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

func (f *fakeDownloader) install(t *testing.T) {
	fileDownload = f.download
	t.Cleanup(func() { fileDownload = artifact.Download })
}

func (f *fakeDownloader) download(context context.T, input artifact.DownloadInput) (artifact.DownloadOutput, error) {
	f.mu.Lock()
	f.calls[input.SourceURL]++
	f.tempFiles = append(f.tempFiles, input.DestinationFile)
	archive, found := f.archives[input.SourceURL]
	failure := f.failures[input.SourceURL]
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if failure != nil {
		return artifact.DownloadOutput{}, failure
	}
	if !found {
		return artifact.DownloadOutput{}, errors.New("http request failed. status:404 Not Found statuscode:404")
	}
	if err := os.WriteFile(input.DestinationFile, archive, 0600); err != nil {
		return artifact.DownloadOutput{}, err
	}
	return artifact.DownloadOutput{LocalFilePath: input.DestinationFile, Size: int64(len(archive))}, nil
}

func (f *fakeDownloader) callCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func (f *fakeDownloader) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, count := range f.calls {
		total += count
	}
	return total
}

func (f *fakeDownloader) downloadedFiles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tempFiles...)
}

func readText(t *testing.T, path string) string {
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func writeText(t *testing.T, path string, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
