// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the vlasov command-line tool
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vlasov",
	Short: "Static and linear buckling analysis of thin-walled 3D frames",
	Long: `vlasov - finite element analysis of thin-walled 3D frames

Each node has 7 degrees of freedom: three translations (u, v, w),
three rotations (θx, θy, θz) and the rate of twist θx' (warping).

Models are given in JSON files with materials, sections, nodes,
elements, constraints and nodal loads.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
