// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			bs, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bs)
			return err
		},
	}
}
