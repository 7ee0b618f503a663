// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moov-io/nachagen"
	"github.com/moov-io/nachagen/pkg/config"
	"github.com/moov-io/nachagen/pkg/input"
	"github.com/moov-io/nachagen/pkg/output"
	"github.com/moov-io/nachagen/pkg/util"

	"github.com/moov-io/base"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	input     string
	output    string
	format    string
	debug     bool
	padBlocks bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a NACHA file from payment rows",
		Long: `Reads payment rows from a csv or xlsx file, groups them into batches and
writes the NACHA file into the configured output directory, or to stdout
with --output -.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			return runRender(cmd, cfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "Filepath of payment rows (csv or xlsx)")
	flags.StringVar(&opts.output, "output", "", "Directory to write into, or - for stdout (default from config)")
	flags.StringVar(&opts.format, "format", "", "Output format: nacha, base64, json or encrypted (default from config)")
	flags.BoolVar(&opts.debug, "debug", false, "Separate every field with a pipe")
	flags.BoolVar(&opts.padBlocks, "pad-blocks", false, "Fill the last block with lines of nines")

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, opts *renderOptions) error {
	if opts.input == "" {
		return errors.New("missing --input")
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := output.ValidateFilenameTemplate(cfg.Output.FilenameTemplate); err != nil {
		return fmt.Errorf("output: filename_template: %v", err)
	}

	logger := cfg.Logger
	logger.Log("startup", fmt.Sprintf("nachagen %s rendering %s", nachagen.Version, opts.input), "run", base.ID())

	fd, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer fd.Close()

	rows, err := input.Read(cfg.Input, fd)
	if err != nil {
		return fmt.Errorf("%s: %v", opts.input, err)
	}
	file, err := input.Build(logger, cfg, rows)
	if err != nil {
		return fmt.Errorf("%s: %v", opts.input, err)
	}

	if opts.output == "-" {
		return output.WriteTo(cmd.OutOrStdout(), &cfg.Output, file)
	}
	path, err := output.Write(logger, cfg, file)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// applyFlags lets command line flags override the config file.
func applyFlags(cfg *config.Config, opts *renderOptions) {
	if strings.EqualFold(filepath.Ext(opts.input), ".xlsx") {
		cfg.Input.Format = config.InputXLSX
	}
	if opts.output != "" && opts.output != "-" {
		cfg.Output.Directory = opts.output
	}
	if opts.format != "" {
		cfg.Output.Format = strings.ToLower(opts.format)
	}
	if opts.debug || util.Yes(os.Getenv("NACHA_DEBUG")) {
		cfg.Output.Debug = true
	}
	if opts.padBlocks || util.Yes(os.Getenv("NACHA_PAD_BLOCKS")) {
		cfg.Output.PadBlocks = true
	}
}
