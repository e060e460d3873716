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
	"io"
	"os"
	"sync"

	"github.com/cihub/seelog"
)

// consoleReceiverName is referenced by the <custom> output in LoadConfig.
const consoleReceiverName = "stderr"

var (
	consoleMutex  sync.Mutex
	consoleOutput io.Writer = os.Stderr
)

func init() {
	seelog.RegisterReceiver(consoleReceiverName, &consoleReceiver{})
}

// consoleReceiver writes formatted messages to standard error, leaving standard
// output to command results.
type consoleReceiver struct{}

func (r *consoleReceiver) ReceiveMessage(message string, level seelog.LogLevel, context seelog.LogContextInterface) error {
	consoleMutex.Lock()
	defer consoleMutex.Unlock()
	_, err := io.WriteString(consoleOutput, message)
	return err
}

func (r *consoleReceiver) AfterParse(initArgs seelog.CustomReceiverInitArgs) error {
	return nil
}

func (r *consoleReceiver) Flush() {}

func (r *consoleReceiver) Close() error {
	return nil
}

// SetConsoleOutput redirects console log output and returns the previous writer.
func SetConsoleOutput(w io.Writer) io.Writer {
	consoleMutex.Lock()
	defer consoleMutex.Unlock()
	previous := consoleOutput
	consoleOutput = w
	return previous
}
