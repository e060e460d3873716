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

import "html"

// LoadConfig builds the seelog configuration for the given minimum level. Console
// output goes to standard error.
// A rolling file output is only added when logFile is not empty.
func LoadConfig(level string, logFile string) []byte {
	logConfig := `
<seelog type="sync" minlevel="` + level + `">
    <outputs formatid="fmtinfo">
        <custom name="` + consoleReceiverName + `" formatid="fmtinfo"/>
`
	if logFile != "" {
		logConfig += `        <rollingfile type="size" filename="` + html.EscapeString(logFile) + `" maxsize="10000000" maxrolls="3" formatid="fmtdebug"/>
`
	}
	logConfig += `    </outputs>
    <formats>
        <format id="fmtdebug" format="%Date %Time %LEVEL [%FuncShort @ %File.%Line] %Msg%n"/>
        <format id="fmtinfo" format="%Date %Time %LEVEL %Msg%n"/>
    </formats>
</seelog>
`
	return []byte(logConfig)
}
