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

// Package backoffconfig builds the retry policies used for remote transfers.
package backoffconfig

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMultiplier      = 2.0
	defaultMaxInterval     = 30 * time.Second
	defaultJitterFactor    = 0.2
	defaultInitialInterval = 200 * time.Millisecond
	maxRetryLimit          = 10
)

// GetExponentialBackoff returns an exponential policy starting at initialInterval that
// permits retryLimit retries after the first attempt. A retryLimit of 0 means the
// operation runs exactly once.
func GetExponentialBackoff(initialInterval time.Duration, retryLimit int) (backoff.BackOff, error) {
	if retryLimit < 0 || retryLimit > maxRetryLimit {
		return nil, fmt.Errorf("retry limit (%d) is out of range [0, %d]", retryLimit, maxRetryLimit)
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}

	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = initialInterval
	exponential.MaxInterval = defaultMaxInterval
	exponential.Multiplier = defaultMultiplier
	exponential.RandomizationFactor = defaultJitterFactor
	// attempts are bounded by count, not by elapsed time
	exponential.MaxElapsedTime = 0
	exponential.Reset()

	return backoff.WithMaxRetries(exponential, uint64(retryLimit)), nil
}

// GetDefaultExponentialBackoff returns the policy for a configured retry limit.
func GetDefaultExponentialBackoff(retryLimit int) (backoff.BackOff, error) {
	return GetExponentialBackoff(defaultInitialInterval, retryLimit)
}
