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

// Package s3util recognises S3 object URLs and downloads objects from S3 mirrors.
package s3util

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
)

const (
	// S3Scheme addresses an object as s3://bucket/key
	S3Scheme = "s3"

	defaultRegion = "us-east-1"
)

// hostPattern matches an S3 endpoint host name; the bucket group is empty for path-style hosts.
type hostPattern struct {
	re          *regexp.Regexp
	bucketGroup int
	regionGroup int
}

var hostPatterns = []hostPattern{
	{
		// bucket.vpce-0a1b-2c3d.s3.us-west-2.vpce.amazonaws.com
		re:          regexp.MustCompile(`^(?:(.+)\.)?(?:bucket|accesspoint)\.vpce-[-a-z0-9]+\.s3[.-](?:([-a-z0-9]+)\.)?vpce\.amazonaws\.com$`),
		bucketGroup: 1,
		regionGroup: 2,
	},
	{
		// bucket.s3.us-west-2.amazonaws.com, s3-us-west-2.amazonaws.com, bucket.s3.dualstack.eu-west-1.amazonaws.com
		re:          regexp.MustCompile(`^(?:(.+)\.)?s3[.-](?:accelerate\.)?(?:dualstack[.-])?(?:([-a-z0-9]+)\.)?amazonaws\.com(?:\.cn)?$`),
		bucketGroup: 1,
		regionGroup: 2,
	},
}

// AmazonS3URL holds the parts of an S3 object URL.
type AmazonS3URL struct {
	IsValidS3URI bool
	IsPathStyle  bool
	Bucket       string
	Key          string
	Region       string
}

// IsBucketAndKeyPresent reports whether the URL names a single object.
func (u AmazonS3URL) IsBucketAndKeyPresent() bool {
	return u.IsValidS3URI && u.Bucket != "" && u.Key != "" && u.Region != ""
}

func (u AmazonS3URL) String() string {
	return fmt.Sprintf("{Region: %s; Bucket: %s; Key: %s; IsValidS3URI: %v; IsPathStyle: %v}",
		u.Region, u.Bucket, u.Key, u.IsValidS3URI, u.IsPathStyle)
}

// ParseAmazonS3URL recognises three URL shapes:
//
//	s3://bucket/key
//	https://bucket.s3.region.amazonaws.com/key (virtual hosted-style)
//	https://s3.region.amazonaws.com/bucket/key (path-style)
//
// Any other URL yields an AmazonS3URL with IsValidS3URI unset. A host without a
// region (the legacy global endpoint) maps to us-east-1.
func ParseAmazonS3URL(log log.T, s3URL *url.URL) AmazonS3URL {
	if s3URL == nil {
		return AmazonS3URL{}
	}

	if strings.EqualFold(s3URL.Scheme, S3Scheme) {
		return AmazonS3URL{
			IsValidS3URI: s3URL.Host != "",
			Bucket:       s3URL.Host,
			Key:          strings.TrimPrefix(s3URL.Path, "/"),
			Region:       defaultRegion,
		}
	}

	output, matched := matchHost(strings.ToLower(s3URL.Hostname()))
	if !matched {
		return AmazonS3URL{}
	}

	path := strings.TrimPrefix(s3URL.Path, "/")
	if output.Bucket == "" {
		output.IsPathStyle = true
		if index := strings.Index(path, "/"); index == -1 {
			output.Bucket = path
		} else {
			output.Bucket = path[:index]
			output.Key = path[index+1:]
		}
	} else {
		output.Key = path
	}

	if output.Region == "" || strings.EqualFold(output.Region, "external-1") {
		output.Region = defaultRegion
	}
	log.Debugf("parsed s3 url %v as %v", s3URL, output)
	return output
}

func matchHost(host string) (AmazonS3URL, bool) {
	for _, pattern := range hostPatterns {
		groups := pattern.re.FindStringSubmatch(host)
		if groups == nil {
			continue
		}
		return AmazonS3URL{
			IsValidS3URI: true,
			Bucket:       groups[pattern.bucketGroup],
			Region:       groups[pattern.regionGroup],
		}, true
	}
	return AmazonS3URL{}, false
}
