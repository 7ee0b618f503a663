// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/moov-io/nachagen/internal/gpgx"
	"github.com/moov-io/nachagen/pkg/util"

	"github.com/spf13/cobra"
)

type decryptOptions struct {
	input       string
	keyFile     string
	keyPassword string
}

func newDecryptCmd(root *rootOptions) *cobra.Command {
	opts := &decryptOptions{}

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Print the NACHA file inside an encrypted output",
		Long: `Decrypts a file written with the encrypted output format using the private
half of the configured GPG key. The key password is read from GPG_KEY_PASSWORD
when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.loadEnv(); err != nil {
				return err
			}
			return runDecrypt(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "Filepath of the encrypted file")
	flags.StringVar(&opts.keyFile, "key-file", "", "Filepath of the armored GPG private key")
	flags.StringVar(&opts.keyPassword, "key-password", "", "Password of the private key, overridden by GPG_KEY_PASSWORD")

	return cmd
}

func runDecrypt(cmd *cobra.Command, opts *decryptOptions) error {
	if opts.input == "" {
		return errors.New("missing --input")
	}
	if opts.keyFile == "" {
		return errors.New("missing --key-file")
	}

	password := util.Or(os.Getenv("GPG_KEY_PASSWORD"), opts.keyPassword)
	keys, err := gpgx.ReadPrivateKeyFile(opts.keyFile, []byte(password))
	if err != nil {
		return err
	}

	bs, err := ioutil.ReadFile(opts.input)
	if err != nil {
		return err
	}
	out, err := gpgx.Decrypt(bs, keys)
	if err != nil {
		return fmt.Errorf("%s: %v", opts.input, err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
