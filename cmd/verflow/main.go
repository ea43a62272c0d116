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

// Command verflow prints the SemVer 2.0 version a Git repository's history
// resolves to.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"verflow.dev/verflow/internal/config"
	"verflow.dev/verflow/internal/diagnostics"
	"verflow.dev/verflow/internal/resolve"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "verflow:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "verflow [workDir]",
		Short:         "Compute a SemVer 2.0 version from a Git repository's history",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		workDir := "."
		if len(args) == 1 {
			workDir = args[0]
		}
		cfg.WorkDir = workDir

		if err := config.LoadYAMLOverlay(cfg, cfg.ConfigPath, cmd.Flags()); err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		verbosity, _ := diagnostics.ParseVerbosity(cfg.VerbosityName)
		log := diagnostics.NewStderr(verbosity)

		version, err := resolve.Resolve(context.Background(), workDir, *cfg, log)
		if err != nil {
			return err
		}

		fmt.Println(version.String())
		return nil
	}

	return cmd
}
