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

// Package log is used to initialize the logger. It is created once, usually from main,
// and handed to everything else through context.T.
package log

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cihub/seelog"
)

// DefaultLevel is the minimum level used when none is configured.
const DefaultLevel = "info"

// pkgMutex is the lock used to serialize calls to the logger.
var pkgMutex = new(sync.Mutex)

// NewLogger creates a logger writing to the console and, when logFile is set,
// to a size-rolled log file.
func NewLogger(level string, logFile string) (T, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLevel
	}
	if _, found := seelog.LogLevelFromString(level); !found {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	seelogger, err := seelog.LoggerFromConfigAsBytes(LoadConfig(level, logFile))
	if err != nil {
		return nil, fmt.Errorf("failed to parse logger config: %w", err)
	}
	return FromSeelog(seelogger), nil
}

// FromSeelog wraps an existing seelog logger.
func FromSeelog(logger seelog.LoggerInterface) T {
	// depth 1 skips the wrapper frame so %FuncShort names the caller
	_ = logger.SetAdditionalStackDepth(1)
	return &Wrapper{Delegate: logger, M: pkgMutex}
}
