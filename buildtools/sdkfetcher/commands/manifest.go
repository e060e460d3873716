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
	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	var prefixed bool
	cmd := &cobra.Command{
		Use:   "deps <package>",
		Short: "List the sdk packages a package depends on, excluding the foundational package",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dependencies, err := c.resolver.GetDependencies(c.assembliesRoot, args[0])
			if err != nil {
				return err
			}
			prefix := c.context.AppConfig().Manifest.PackagePrefix
			for _, dependency := range dependencies {
				if prefixed {
					dependency = prefix + dependency
				}
				c.println(dependency)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefixed, "prefixed", false, "Print dependencies with the sdk library prefix")
	return cmd
}

func (c *CLI) newServicesCmd() *cobra.Command {
	var prefixed bool
	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the services recorded in the version manifest",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			services, err := c.manifest.ListServices(c.assembliesRoot)
			if err != nil {
				return err
			}
			prefix := c.context.AppConfig().Manifest.PackagePrefix
			for _, service := range services {
				if prefixed {
					service = prefix + service
				}
				c.println(service)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefixed, "prefixed", false, "Print service names with the sdk library prefix")
	return cmd
}
