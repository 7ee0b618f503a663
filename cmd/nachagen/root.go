// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/moov-io/nachagen/pkg/config"
	"github.com/moov-io/nachagen/pkg/util"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "nachagen",
		Short:        "Generate NACHA PPD files from payment spreadsheets",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Filepath for config file to load, overridden by CONFIG_FILE")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Filepath for environment variables to load, when present")

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newDecryptCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads the .env file, when one exists, and then the config file.
func (opts *rootOptions) load() (*config.Config, error) {
	if err := opts.loadEnv(); err != nil {
		return nil, err
	}
	return readConfig(util.Or(os.Getenv("CONFIG_FILE"), opts.configFile))
}

func (opts *rootOptions) loadEnv() error {
	if opts.envFile == "" {
		return nil
	}
	if _, err := os.Stat(opts.envFile); err != nil {
		return nil
	}
	if err := godotenv.Load(opts.envFile); err != nil {
		return fmt.Errorf("problem reading %s: %v", opts.envFile, err)
	}
	return nil
}

func readConfig(path string) (*config.Config, error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}
	return cfg, nil
}
