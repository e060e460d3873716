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

// Package artifact contains utilities for downloading files.
package artifact

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/context"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/network"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/s3util"
	"github.com/cenkalti/backoff/v4"
)

// DownloadInput specifies the input to file download operation
type DownloadInput struct {
	SourceURL string
	// DestinationFile is created or truncated; the caller owns its removal.
	DestinationFile string
}

// DownloadOutput holds the result of file download operation.
type DownloadOutput struct {
	LocalFilePath string
	Size          int64
}

// Download fetches SourceURL into DestinationFile. S3 object URLs are read through the
// aws sdk, everything else with an http GET that is retried up to the configured limit.
func Download(context context.T, input DownloadInput) (output DownloadOutput, err error) {
	log := context.Log()

	var fileURL *url.URL
	if fileURL, err = url.Parse(input.SourceURL); err != nil {
		return output, fmt.Errorf("url parsing failed. %v", err)
	}
	if input.DestinationFile == "" {
		return output, fmt.Errorf("no destination file given for %v", input.SourceURL)
	}

	amazonS3URL := s3util.ParseAmazonS3URL(log, fileURL)
	if amazonS3URL.IsBucketAndKeyPresent() {
		output.Size, err = s3FileDownload(context, amazonS3URL, input.DestinationFile)
	} else {
		output.Size, err = httpDownload(context, input.SourceURL, input.DestinationFile)
	}
	if err != nil {
		return output, err
	}

	output.LocalFilePath = input.DestinationFile
	return output, nil
}

func s3FileDownload(context context.T, amazonS3URL s3util.AmazonS3URL, destFile string) (int64, error) {
	log := context.Log()
	log.Debugf("attempting to download as s3 download %v", destFile)

	file, err := os.OpenFile(destFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, appconfig.ReadWriteAccess)
	if err != nil {
		return 0, fmt.Errorf("failed to open %v: %v", destFile, err)
	}
	defer file.Close()

	size, err := s3Download(log, context.AppConfig(), amazonS3URL, file)
	if err != nil {
		return size, err
	}
	log.Infof("%s with %v bytes downloaded", destFile, size)
	return size, nil
}

// httpDownload attempts to download a file via http/s call
func httpDownload(context context.T, fileURL string, destFile string) (written int64, err error) {
	log := context.Log()
	appConfig := context.AppConfig()
	log.Debugf("attempting to download as http/https download from %v to %v", fileURL, destFile)

	retryPolicy, err := httpBackoff(appConfig.Download.RetryLimit)
	if err != nil {
		return 0, err
	}

	client := http.Client{
		Transport: network.GetDefaultTransport(log, appConfig),
		Timeout:   time.Duration(appConfig.Download.HttpTimeoutSeconds) * time.Second,
	}

	download := func() error {
		resp, err := client.Get(fileURL)
		if err != nil {
			log.Debugf("failed to download from http/https: %v", err)
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("http request failed. status:%v statuscode:%v", resp.Status, resp.StatusCode)
			if isPermanentStatus(resp.StatusCode) {
				return backoff.Permanent(err)
			}
			return err
		}

		written, err = FileCopy(log, destFile, resp.Body)
		if err != nil {
			_ = log.Errorf("failed to write destFile %v, %v ", destFile, err)
		}
		return err
	}

	err = backoff.RetryNotify(download, retryPolicy, func(err error, wait time.Duration) {
		log.Infof("download of %v failed, retrying in %v: %v", fileURL, wait, err)
	})
	return written, err
}

// isPermanentStatus reports 4xx responses other than timeouts and throttling.
func isPermanentStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// FileCopy copies the content from reader to destinationPath file
func FileCopy(log log.T, destinationPath string, src io.Reader) (written int64, err error) {
	var file *os.File
	if file, err = os.Create(destinationPath); err != nil {
		_ = log.Errorf("failed to create file. %v", err)
		return
	}
	defer file.Close()

	written, err = io.Copy(file, src)
	log.Infof("%s with %v bytes downloaded", destinationPath, written)
	return
}
