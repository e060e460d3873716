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

package log

import (
	"sync"
)

// Wrapper prefixes every message with its context tags before delegating
// to the underlying logger. Calls are serialized through M.
type Wrapper struct {
	Context  []string
	Delegate BasicT
	M        *sync.Mutex
}

// WithContext returns a logger carrying the wrapper's tags followed by the given ones.
func (w *Wrapper) WithContext(context ...string) T {
	tags := make([]string, 0, len(w.Context)+len(context))
	tags = append(tags, w.Context...)
	tags = append(tags, context...)
	return &Wrapper{Context: tags, Delegate: w.Delegate, M: w.M}
}

func (w *Wrapper) prefix(format string) string {
	result := ""
	for _, tag := range w.Context {
		result += tag + " "
	}
	return result + format
}

func (w *Wrapper) prepend(v []interface{}) []interface{} {
	params := make([]interface{}, 0, len(w.Context)+len(v))
	for _, tag := range w.Context {
		params = append(params, tag+" ")
	}
	return append(params, v...)
}

// Debugf writes a formatted message with level Debug.
func (w *Wrapper) Debugf(format string, params ...interface{}) {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Debugf(w.prefix(format), params...)
}

// Infof writes a formatted message with level Info.
func (w *Wrapper) Infof(format string, params ...interface{}) {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Infof(w.prefix(format), params...)
}

// Warnf writes a formatted message with level Warn.
func (w *Wrapper) Warnf(format string, params ...interface{}) error {
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Warnf(w.prefix(format), params...)
}

// Errorf writes a formatted message with level Error.
func (w *Wrapper) Errorf(format string, params ...interface{}) error {
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Errorf(w.prefix(format), params...)
}

// Debug writes its operands with level Debug.
func (w *Wrapper) Debug(v ...interface{}) {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Debug(w.prepend(v)...)
}

// Info writes its operands with level Info.
func (w *Wrapper) Info(v ...interface{}) {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Info(w.prepend(v)...)
}

// Warn writes its operands with level Warn.
func (w *Wrapper) Warn(v ...interface{}) error {
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Warn(w.prepend(v)...)
}

// Error writes its operands with level Error.
func (w *Wrapper) Error(v ...interface{}) error {
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Error(w.prepend(v)...)
}

// Flush flushes all the messages in the logger.
func (w *Wrapper) Flush() {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Flush()
}

// Close flushes and closes the underlying logger. It cannot be used after this operation.
func (w *Wrapper) Close() {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Close()
}
