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

// Package cli implements the faultctl commands.
package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"dirpx.dev/apierr"
	"dirpx.dev/apierr/code"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Execute runs the root command with os.Args.
func Execute(version string) error {
	root := NewRootCmd(version)
	if err := root.Execute(); err != nil {
		slog.Error("faultctl failed", "error", err)
		return err
	}
	return nil
}

// siteFlags are shared by the commands that classify a message.
type siteFlags struct {
	code      int
	tries     int
	component string
	operation string
}

func (f *siteFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.code, "code", 0, "explicit error code")
	cmd.Flags().IntVar(&f.tries, "tries", 0, "number of attempts made")
	cmd.Flags().StringVar(&f.component, "component", "", "call site component (default: the CLI itself)")
	cmd.Flags().StringVar(&f.operation, "operation", "", "call site operation")
}

func (f *siteFlags) classify(args []string) *apierr.Error {
	opts := []apierr.Option{apierr.WithCode(code.Code(f.code)), apierr.WithTries(f.tries)}
	if f.component != "" || f.operation != "" {
		opts = append(opts, apierr.WithCallSite(f.component, f.operation))
	}
	e := apierr.New(strings.Join(args, " "), opts...)
	slog.Debug("classified", "err", e)
	return e
}

// NewRootCmd builds the command tree. Logs go to stderr through tint.
func NewRootCmd(version string) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "faultctl",
		Short:         "Classify remote API client failures",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), debug)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newClassifyCmd(), newCodesCmd(), newStatusCmd())
	return root
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isTerminal(f)
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
