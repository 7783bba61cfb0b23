/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"os"

	"dirpx.dev/fielderrors"
	"dirpx.dev/fielderrors/gql"
	"dirpx.dev/fielderrors/internal/config"
	"dirpx.dev/fielderrors/internal/logger"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// flags holds the values of the persistent flags.
type flags struct {
	as            string
	format        string
	serverMessage string
	logLevel      string
}

func (f *flags) overrides() map[string]string {
	return map[string]string{
		config.KeyAs:            f.as,
		config.KeyFormat:        f.format,
		config.KeyServerMessage: f.serverMessage,
		config.KeyLogLevel:      f.logLevel,
	}
}

// env is what every command needs once configuration is loaded.
type env struct {
	cfg *config.Config
	n   *fielderrors.Normalizer
}

func (f *flags) load(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(f.overrides())
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	n, err := fielderrors.New(
		fielderrors.WithServerMessage(cfg.ServerMessage),
		fielderrors.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, n: n}, nil
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "fielderrors [file]",
		Short: "Normalize GraphQL errors into field errors",
		Long: `Read a GraphQL response document from a file or standard input and print
the field errors it describes as a JSON object. A response without errors
prints {}.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := f.load(cmd)
			if err != nil {
				return err
			}
			resp, err := readResponse(cmd, args)
			if err != nil {
				return err
			}
			qerr := resp.Err()
			if qerr == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "{}")
				return err
			}
			b, err := json.MarshalIndent(e.n.FieldErrors(qerr, e.cfg.FormatOptions()), "", "  ")
			if err != nil {
				return fmt.Errorf("encode output: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.as, "as", "", "shape of each field's messages: array or string (env FIELDERRORS_AS)")
	pf.StringVar(&f.format, "format", "", "message casing: none, lowercase or sentence-case (env FIELDERRORS_FORMAT)")
	pf.StringVar(&f.serverMessage, "server-message", "", "message used for the server entry (env FIELDERRORS_SERVER_MESSAGE)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level written to stderr (env FIELDERRORS_LOG_LEVEL)")

	root.AddCommand(newExplainCmd(f))
	return root
}

func newExplainCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [file]",
		Short: "Show how each error of a response is classified",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := f.load(cmd)
			if err != nil {
				return err
			}
			resp, err := readResponse(cmd, args)
			if err != nil {
				return err
			}
			qerr := resp.Err()
			if qerr == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no errors")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.n.Explain(qerr))
			return err
		},
	}
}

// readResponse decodes the response from the named file, or from the
// command's input when no file (or "-") is given.
func readResponse(cmd *cobra.Command, args []string) (*gql.Response, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open response: %w", err)
		}
		defer file.Close()
		r = file
	}
	return gql.Decode(r)
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
