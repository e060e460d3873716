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

// Package jsonutil contains various utilities for dealing with json data.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

const jsonFormat = "  "

// utf8BOM is stripped before decoding; manifests produced on Windows often carry it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Unmarshal decodes json content, ignoring a leading UTF-8 byte order mark.
func Unmarshal(content []byte, dest interface{}) error {
	return json.Unmarshal(bytes.TrimPrefix(content, utf8BOM), dest)
}

// MarshalIndent renders obj as indented json.
func MarshalIndent(obj interface{}) (result string, err error) {
	var resultBytes []byte
	resultBytes, err = json.MarshalIndent(obj, "", jsonFormat)
	if err != nil {
		return
	}
	result = string(resultBytes)
	return
}
