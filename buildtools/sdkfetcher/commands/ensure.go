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
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *CLI) newEnsureCmd() *cobra.Command {
	var platforms []string
	var withDependencies bool
	cmd := &cobra.Command{
		Use:   "ensure <package>...",
		Short: "Make sure the assemblies of the packages are present for every platform",
		Long: `Downloads and unpacks the release archive of a platform when any binary or
documentation file of the packages is missing from its directory. Existing files
are never overwritten. The path of every ensured file is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			packages, err := c.packagesToEnsure(args, withDependencies)
			if err != nil {
				return err
			}
			for _, packageName := range packages {
				if err := c.resolver.EnsureAvailable(packageName, c.assembliesRoot, platforms); err != nil {
					return err
				}
				for _, platform := range platforms {
					for _, file := range c.resolver.ExpectedFiles(packageName) {
						c.println(filepath.Join(c.assembliesRoot, platform, file))
					}
				}
			}
			c.context.Log().Infof("ensured %v package(s) for %v, fetched %v", len(packages), platforms, c.resolver.AttemptedPlatforms())
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "Platform directory name, e.g. net45. Repeat or comma separate for several")
	cmd.Flags().BoolVar(&withDependencies, "with-dependencies", false, "Also ensure the packages' dependencies and the foundational package")
	_ = cmd.MarkFlagRequired("platform")
	return cmd
}

// packagesToEnsure returns the requested packages in order, followed by their
// dependencies when asked for, without duplicates.
func (c *CLI) packagesToEnsure(requested []string, withDependencies bool) ([]string, error) {
	manifestCfg := c.context.AppConfig().Manifest
	seen := make(map[string]bool)
	var packages []string
	add := func(packageName string) {
		if !seen[packageName] {
			seen[packageName] = true
			packages = append(packages, packageName)
		}
	}

	for _, packageName := range requested {
		add(packageName)
	}
	if !withDependencies {
		return packages, nil
	}
	for _, packageName := range requested {
		dependencies, err := c.resolver.GetDependencies(c.assembliesRoot, packageName)
		if err != nil {
			return nil, err
		}
		for _, dependency := range dependencies {
			add(manifestCfg.PackagePrefix + dependency)
		}
		add(manifestCfg.PackagePrefix + manifestCfg.FoundationalPackage)
	}
	return packages, nil
}
