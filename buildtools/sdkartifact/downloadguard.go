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
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// downloadGuard remembers which platform directories a fetch has been attempted for.
// At most one fetch runs per path; callers arriving while it runs share its result.
type downloadGuard struct {
	mu        sync.Mutex
	attempted map[string]struct{}
	inflight  singleflight.Group
	// retryFailed forgets a path whose fetch failed so a later call tries again.
	retryFailed bool
}

func newDownloadGuard(retryFailed bool) *downloadGuard {
	return &downloadGuard{
		attempted:   make(map[string]struct{}),
		retryFailed: retryFailed,
	}
}

// do runs fetch for path unless a fetch for path was already attempted.
// fetched reports whether this call ran or joined a fetch.
func (g *downloadGuard) do(path string, fetch func() error) (fetched bool, err error) {
	key := filepath.Clean(path)
	result, err, _ := g.inflight.Do(key, func() (interface{}, error) {
		if !g.mark(key) {
			return false, nil
		}
		if err := fetch(); err != nil {
			if g.retryFailed {
				g.unmark(key)
			}
			return true, err
		}
		return true, nil
	})
	return result.(bool), err
}

// mark adds key and reports whether it was absent.
func (g *downloadGuard) mark(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, found := g.attempted[key]; found {
		return false
	}
	g.attempted[key] = struct{}{}
	return true
}

func (g *downloadGuard) unmark(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.attempted, key)
}

func (g *downloadGuard) contains(path string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, found := g.attempted[filepath.Clean(path)]
	return found
}

func (g *downloadGuard) paths() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	paths := make([]string, 0, len(g.attempted))
	for path := range g.attempted {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
