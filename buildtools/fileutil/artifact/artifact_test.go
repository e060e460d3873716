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

package artifact

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/backoffconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/context"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/s3util"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ArtifactTestSuite struct {
	suite.Suite
	config   appconfig.SdkArtifactsConfig
	destFile string
	hits     int32
	statuses []int
}

func TestArtifactTestSuite(t *testing.T) {
	suite.Run(t, new(ArtifactTestSuite))
}

func (suite *ArtifactTestSuite) SetupTest() {
	suite.config = appconfig.DefaultConfig()
	suite.destFile = filepath.Join(suite.T().TempDir(), "archive.zip")
	suite.hits = 0
	suite.statuses = nil
	httpBackoff = func(retryLimit int) (backoff.BackOff, error) {
		return backoffconfig.GetExponentialBackoff(time.Millisecond, retryLimit)
	}
}

func (suite *ArtifactTestSuite) TearDownTest() {
	httpBackoff = backoffconfig.GetDefaultExponentialBackoff
	s3Download = s3util.Download
}

// newServer answers with the queued statuses in order, then 200 with body.
func (suite *ArtifactTestSuite) newServer(body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit := int(atomic.AddInt32(&suite.hits, 1))
		if hit <= len(suite.statuses) {
			w.WriteHeader(suite.statuses[hit-1])
			return
		}
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, body)
	}))
	suite.T().Cleanup(server.Close)
	return server
}

func (suite *ArtifactTestSuite) download(url string) (DownloadOutput, error) {
	ctx := context.NewMockDefaultWithConfig(suite.config)
	return Download(ctx, DownloadInput{SourceURL: url, DestinationFile: suite.destFile})
}

func (suite *ArtifactTestSuite) TestHttpDownload() {
	server := suite.newServer("zip bytes")

	output, err := suite.download(server.URL + "/releases/aws-sdk-net45-3.7.100.0.zip")

	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), suite.destFile, output.LocalFilePath)
	assert.Equal(suite.T(), int64(len("zip bytes")), output.Size)
	content, _ := os.ReadFile(suite.destFile)
	assert.Equal(suite.T(), "zip bytes", string(content))
}

func (suite *ArtifactTestSuite) TestHttpDownloadSingleAttemptByDefault() {
	suite.statuses = []int{http.StatusServiceUnavailable}
	server := suite.newServer("zip bytes")

	_, err := suite.download(server.URL + "/a.zip")

	assert.NotNil(suite.T(), err)
	assert.True(suite.T(), strings.Contains(err.Error(), "503"))
	assert.Equal(suite.T(), int32(1), atomic.LoadInt32(&suite.hits))
}

func (suite *ArtifactTestSuite) TestHttpDownloadRetriesServerErrors() {
	suite.config.Download.RetryLimit = 2
	suite.statuses = []int{http.StatusInternalServerError, http.StatusTooManyRequests}
	server := suite.newServer("zip bytes")

	output, err := suite.download(server.URL + "/a.zip")

	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(len("zip bytes")), output.Size)
	assert.Equal(suite.T(), int32(3), atomic.LoadInt32(&suite.hits))
}

func (suite *ArtifactTestSuite) TestHttpDownloadDoesNotRetryForbidden() {
	suite.config.Download.RetryLimit = 3
	suite.statuses = []int{http.StatusForbidden}
	server := suite.newServer("zip bytes")

	output, err := suite.download(server.URL + "/a.zip")

	assert.NotNil(suite.T(), err)
	assert.Equal(suite.T(), "", output.LocalFilePath)
	assert.Equal(suite.T(), int32(1), atomic.LoadInt32(&suite.hits))
}

func (suite *ArtifactTestSuite) TestHttpDownloadNotFound() {
	suite.config.Download.RetryLimit = 3
	suite.statuses = []int{http.StatusNotFound}
	server := suite.newServer("zip bytes")

	_, err := suite.download(server.URL + "/aws-sdk-net45-9.9.9.9.zip")

	assert.NotNil(suite.T(), err)
	assert.True(suite.T(), strings.Contains(err.Error(), "404"))
	assert.Equal(suite.T(), int32(1), atomic.LoadInt32(&suite.hits))
}

func (suite *ArtifactTestSuite) TestS3URLUsesS3Download() {
	var requested s3util.AmazonS3URL
	s3Download = func(log log.T, appConfig appconfig.SdkArtifactsConfig, s3URL s3util.AmazonS3URL, w io.WriterAt) (int64, error) {
		requested = s3URL
		n, err := w.WriteAt([]byte("from s3"), 0)
		return int64(n), err
	}

	output, err := suite.download("https://sdk-mirror.s3.us-west-2.amazonaws.com/releases/aws-sdk-net45-3.7.100.0.zip")

	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "sdk-mirror", requested.Bucket)
	assert.Equal(suite.T(), "releases/aws-sdk-net45-3.7.100.0.zip", requested.Key)
	assert.Equal(suite.T(), int64(7), output.Size)
	content, _ := os.ReadFile(suite.destFile)
	assert.Equal(suite.T(), "from s3", string(content))
}

func (suite *ArtifactTestSuite) TestS3DownloadFailure() {
	s3Download = func(log log.T, appConfig appconfig.SdkArtifactsConfig, s3URL s3util.AmazonS3URL, w io.WriterAt) (int64, error) {
		return 0, errors.New("AccessDenied")
	}

	_, err := suite.download("s3://sdk-mirror/aws-sdk-net45-3.7.100.0.zip")

	assert.EqualError(suite.T(), err, "AccessDenied")
}

func (suite *ArtifactTestSuite) TestInvalidInput() {
	_, err := suite.download("://missing-scheme")
	assert.NotNil(suite.T(), err)

	ctx := context.NewMockDefaultWithConfig(suite.config)
	_, err = Download(ctx, DownloadInput{SourceURL: "https://example.com/a.zip"})
	assert.NotNil(suite.T(), err)
}

func TestFileCopy(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "copy.txt")

	written, err := FileCopy(log.NewMockLog(), dest, strings.NewReader("AWSSDK.Core"))

	assert.Nil(t, err)
	assert.Equal(t, int64(11), written)
	content, _ := os.ReadFile(dest)
	assert.Equal(t, "AWSSDK.Core", string(content))
}

func TestIsPermanentStatus(t *testing.T) {
	assert.True(t, isPermanentStatus(http.StatusForbidden))
	assert.True(t, isPermanentStatus(http.StatusNotFound))
	assert.False(t, isPermanentStatus(http.StatusTooManyRequests))
	assert.False(t, isPermanentStatus(http.StatusRequestTimeout))
	assert.False(t, isPermanentStatus(http.StatusBadGateway))
}
