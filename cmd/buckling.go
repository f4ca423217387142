// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cpmech/vlasov/fem"
	"github.com/cpmech/vlasov/out"
	"github.com/spf13/cobra"
)

var (
	bucklingModes    int
	bucklingGraph    string
	bucklingPng      string
	bucklingPlane    string
	bucklingVerbose  bool
	bucklingParallel bool
)

var bucklingCmd = &cobra.Command{
	Use:   "buckling <model.json>",
	Short: "Compute critical load factors and mode shapes",
	Long: `Run a linear static analysis with the reference loads, assemble the
geometric stiffness matrix from the element axial forces and solve
K・v = λ・(-Kg)・v for the smallest positive load factors.

Examples:
  # three lowest load factors
  vlasov buckling column.json --modes 3

  # ASCII chart of the lateral deflection of each mode and PNG images
  vlasov buckling column.json --modes 2 --graph v --png modes/column.png`,
	Args: cobra.ExactArgs(1),
	RunE: runBuckling,
}

func init() {
	rootCmd.AddCommand(bucklingCmd)
	bucklingCmd.Flags().IntVarP(&bucklingModes, "modes", "n", 1, "number of modes")
	bucklingCmd.Flags().StringVarP(&bucklingGraph, "graph", "g", "", "DOF of mode shapes to draw as ASCII chart: u, v, w, rx, ry, rz or wp")
	bucklingCmd.Flags().StringVar(&bucklingPng, "png", "", "save mode shapes to image files named after this one; e.g. mode.png => mode_0.png")
	bucklingCmd.Flags().StringVar(&bucklingPlane, "plane", "xy", "projection plane for images")
	bucklingCmd.Flags().BoolVarP(&bucklingVerbose, "verbose", "v", false, "show messages")
	bucklingCmd.Flags().BoolVar(&bucklingParallel, "parallel", false, "compute element matrices concurrently")
}

func runBuckling(cmd *cobra.Command, args []string) error {

	// model
	m, err := fem.NewModelFromFile(args[0], bucklingVerbose)
	if err != nil {
		return err
	}
	m.Parallel = bucklingParallel

	// solve
	sol := fem.NewBucklingSolver(m)
	sol.Verbose = bucklingVerbose
	res, err := sol.Solve(bucklingModes)
	if err != nil {
		return err
	}

	// load factors
	w := cmd.OutOrStdout()
	if res.State == fem.NoValidModes {
		fmt.Fprintln(w, "\nno buckling modes: there are no compressed elements or all load factors are negative")
		return nil
	}
	fmt.Fprintln(w, "\nLOAD FACTORS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "mode\tλ\t")
	for k, λ := range res.Values {
		fmt.Fprintf(tw, "%d\t%.6e\t\n", k, λ)
	}
	tw.Flush()

	// mode shapes
	var dof int
	if bucklingGraph != "" {
		dof, err = out.DofIndex(bucklingGraph)
		if err != nil {
			return err
		}
	}
	for k := range res.Values {
		mode, err := out.StartMode(m, res, k)
		if err != nil {
			return err
		}
		if bucklingGraph != "" {
			fmt.Fprintf(w, "\nmode %d\n%s\n", k, out.AsciiSeries(mode, dof))
		}
		if bucklingPng != "" {
			p, err := out.StructurePlot(mode, bucklingPlane, -1, fmt.Sprintf("mode %d: λ = %g", k, res.Values[k]))
			if err != nil {
				return err
			}
			fn := modeFilename(bucklingPng, k)
			if err = out.Save(p, fn); err != nil {
				return err
			}
			fmt.Fprintf(w, "file <%s> written\n", fn)
		}
	}
	return nil
}

// modeFilename returns the file name of the k-th mode; e.g. ("dir/mode.png", 1) => "dir/mode_1.png"
func modeFilename(fn string, k int) string {
	return suffixFilename(fn, strconv.Itoa(k))
}

// suffixFilename inserts "_suffix" before the extension of fn
func suffixFilename(fn, suffix string) string {
	ext := filepath.Ext(fn)
	return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(fn, ext), suffix, ext)
}
