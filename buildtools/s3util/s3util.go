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

package s3util

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/network"
)

// staticCredentials is nil in production so the default credential chain applies.
var staticCredentials *credentials.Credentials

// AwsConfig returns the sdk configuration for reaching the bucket in region.
func AwsConfig(log log.T, appConfig appconfig.SdkArtifactsConfig, region string) *aws.Config {
	config := aws.NewConfig().
		WithRegion(region).
		WithHTTPClient(&http.Client{
			Transport: network.GetDefaultTransport(log, appConfig),
			Timeout:   time.Duration(appConfig.Download.HttpTimeoutSeconds) * time.Second,
		})
	if appConfig.Download.S3Endpoint != "" {
		config = config.WithEndpoint(appConfig.Download.S3Endpoint).WithS3ForcePathStyle(true)
	}
	if staticCredentials != nil {
		config = config.WithCredentials(staticCredentials)
	}
	return config
}

// Download writes the object named by s3URL into w and returns the number of bytes written.
func Download(log log.T, appConfig appconfig.SdkArtifactsConfig, s3URL AmazonS3URL, w io.WriterAt) (int64, error) {
	if !s3URL.IsBucketAndKeyPresent() {
		return 0, fmt.Errorf("s3 url %v does not name an object", s3URL)
	}

	sess, err := session.NewSession(AwsConfig(log, appConfig, s3URL.Region))
	if err != nil {
		return 0, fmt.Errorf("failed to create s3 session: %v", err)
	}

	log.Debugf("downloading s3 object %v from bucket %v", s3URL.Key, s3URL.Bucket)
	downloader := s3manager.NewDownloader(sess, func(d *s3manager.Downloader) {
		// parts are written in order
		d.Concurrency = 1
	})
	size, err := downloader.Download(w, &s3.GetObjectInput{
		Bucket: aws.String(s3URL.Bucket),
		Key:    aws.String(s3URL.Key),
	})
	if err != nil {
		return size, fmt.Errorf("failed to download s3 object %v: %v", s3URL, err)
	}
	return size, nil
}
