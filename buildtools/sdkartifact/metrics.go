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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	fetchStatusSuccess = "success"
	fetchStatusError   = "error"
	fetchStatusSkipped = "skipped"
)

// Metrics are the resolver's prometheus collectors.
type Metrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	unpackedFiles prometheus.Counter
	existingFiles prometheus.Counter
}

// NewMetrics registers the resolver collectors on registerer. A registerer can back
// only one Metrics.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		fetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdkartifact_fetch_total",
				Help: "Platform archive fetches by outcome",
			},
			[]string{"status"}, // success, error or skipped
		),
		fetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sdkartifact_fetch_duration_seconds",
				Help:    "Time taken to download and unpack a platform archive",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
		unpackedFiles: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sdkartifact_unpacked_files_total",
				Help: "Files written from platform archives",
			},
		),
		existingFiles: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sdkartifact_existing_files_total",
				Help: "Expected files already present when checked",
			},
		),
	}
}
