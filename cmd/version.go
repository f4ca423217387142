// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cpmech/vlasov/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vlasov",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vlasov v%s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		fmt.Fprintln(cmd.OutOrStdout(), "Thin-walled 3D frame analysis with Vlasov warping")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
