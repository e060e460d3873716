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

// Package commands implements the sdkfetcher command line.
package commands

import (
	"fmt"
	"io"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/context"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/jsonutil"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/sdkartifact"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/sdkmanifest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/twinj/uuid"
)

const (
	assembliesRootFlag = "assemblies-root"
	configFlag         = "config"
	logLevelFlag       = "log-level"
	metricsFileFlag    = "metrics-file"

	defaultAssembliesRoot = "assemblies"
)

// CLI represents the sdkfetcher command line.
type CLI struct {
	rootCmd *cobra.Command
	out     io.Writer

	assembliesRoot string
	configPath     string
	logLevel       string
	metricsFile    string

	// set up by the persistent pre-run hook
	context  context.T
	registry *prometheus.Registry
	resolver *sdkartifact.Resolver
	manifest sdkmanifest.T
}

// New creates a CLI writing command results to out.
func New(out io.Writer) *CLI {
	c := &CLI{out: out}

	rootCmd := &cobra.Command{
		Use:               "sdkfetcher",
		Short:             "Resolves sdk package dependencies and fetches platform assemblies",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.assembliesRoot, assembliesRootFlag, defaultAssembliesRoot, "Directory holding one sub directory per platform")
	flags.StringVarP(&c.configPath, configFlag, "c", "", "Path to a json configuration override file")
	flags.StringVar(&c.logLevel, logLevelFlag, "", "Minimum log level, overrides the configured level")
	flags.StringVar(&c.metricsFile, metricsFileFlag, "", "Write prometheus metrics in text format to this file on exit")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newServicesCmd())
	rootCmd.AddCommand(c.newEnsureCmd())
	return c
}

// Execute runs the command line. Metrics are written and the logger flushed even
// when the command fails.
func (c *CLI) Execute() error {
	err := c.rootCmd.Execute()
	if finishErr := c.finish(); err == nil {
		err = finishErr
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) setup(_ *cobra.Command, _ []string) error {
	config, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		config.Log.Level = c.logLevel
	}

	logger, err := newLogger(config.Log.Level, config.Log.File)
	if err != nil {
		return err
	}

	uuid.SwitchFormat(uuid.CleanHyphen)
	runID := uuid.NewV4().String()
	c.context = context.Default(logger, config, "[SdkFetcher]", "["+runID+"]")
	if configJSON, err := jsonutil.MarshalIndent(config); err == nil {
		c.context.Log().Debugf("configuration %v", configJSON)
	}

	c.registry = prometheus.NewRegistry()
	c.manifest = sdkmanifest.New(c.context)
	c.resolver = sdkartifact.New(c.context,
		sdkartifact.WithManifest(c.manifest),
		sdkartifact.WithRegisterer(c.registry))
	return nil
}

func (c *CLI) finish() error {
	if c.context == nil {
		return nil
	}
	logger := c.context.Log()
	defer func() {
		logger.Flush()
		logger.Close()
	}()

	if c.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(c.metricsFile, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %v: %w", c.metricsFile, err)
	}
	logger.Debugf("metrics written to %v", c.metricsFile)
	return nil
}

func (c *CLI) println(v ...interface{}) {
	_, _ = fmt.Fprintln(c.out, v...)
}
