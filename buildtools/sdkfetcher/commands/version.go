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

package commands

import (
	"fmt"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/versionutil"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	var minimum string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the sdk product version recorded in the version manifest",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			version, err := c.resolver.GetSDKVersion(c.assembliesRoot)
			if err != nil {
				return err
			}
			if minimum != "" {
				required, err := versionutil.ParseVersion(minimum)
				if err != nil {
					return fmt.Errorf("invalid --minimum: %w", err)
				}
				// 3.7 and 3.7.0.0 are the same release
				if versionutil.Compare(version.String(), required.String(), false) < 0 {
					return fmt.Errorf("sdk version %v is lower than the required %v", version, required)
				}
			}
			c.println(version.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&minimum, "minimum", "", "Fail unless the sdk version is at least this version")
	return cmd
}
