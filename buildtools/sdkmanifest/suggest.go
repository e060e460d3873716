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

package sdkmanifest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance is the largest edit distance still offered as a suggestion.
const maxSuggestionDistance = 3

// closestService returns the service whose name is nearest to name, ignoring case.
func closestService(name string, services map[string]ServiceVersion) (string, bool) {
	best, bestDistance := "", maxSuggestionDistance+1
	lowered := strings.ToLower(name)
	for service := range services {
		distance := levenshtein.ComputeDistance(lowered, strings.ToLower(service))
		if distance < bestDistance || (distance == bestDistance && service < best) {
			best, bestDistance = service, distance
		}
	}
	return best, best != ""
}
