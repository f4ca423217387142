// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/cpmech/vlasov/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

var (
	sectionShape    string
	sectionName     string
	sectionWidth    float64
	sectionHeight   float64
	sectionTf       float64
	sectionTw       float64
	sectionRadius   float64
	sectionMaterial string
	sectionLength   float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute the constants of a cross-section and reference critical loads",
	Long: `Compute A, Iy, Iz, J and Cw of a rectangle, circle or I-beam and print
the JSON record to be pasted into model files. With --material and --length,
the Euler and torsional buckling loads of a pinned-pinned column are
printed as well. Lengths are in metres and material constants in Pa.

Examples:
  vlasov section --shape I-beam --width 0.2 --height 0.4 --tf 0.016 --tw 0.01
  vlasov section --shape circle --radius 0.05 --material steel --length 3`,
	Args: cobra.NoArgs,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.Flags().StringVar(&sectionShape, "shape", "I-beam", "rectangle, circle or I-beam")
	sectionCmd.Flags().StringVar(&sectionName, "name", "sec", "name of section in the JSON record")
	sectionCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0, "width (not circle)")
	sectionCmd.Flags().Float64Var(&sectionHeight, "height", 0, "height (not circle)")
	sectionCmd.Flags().Float64Var(&sectionTf, "tf", 0, "flange thickness (I-beam)")
	sectionCmd.Flags().Float64Var(&sectionTw, "tw", 0, "web thickness (I-beam)")
	sectionCmd.Flags().Float64VarP(&sectionRadius, "radius", "r", 0, "radius (circle)")
	sectionCmd.Flags().StringVar(&sectionMaterial, "material", "", "reference material; e.g. steel or aluminum")
	sectionCmd.Flags().Float64VarP(&sectionLength, "length", "L", 0, "column length for critical loads")
}

func runSection(cmd *cobra.Command, args []string) error {

	// section
	var cs ana.CrossSection
	err := cs.Init(sectionShape, "m", sectionWidth, sectionHeight, sectionTf, sectionTw, sectionRadius)
	if err != nil {
		return err
	}
	sec := cs.Section(sectionName)
	w := cmd.OutOrStdout()
	b, err := json.MarshalIndent(sec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", b)

	// critical loads
	if sectionMaterial == "" {
		return nil
	}
	if !(sectionLength > 0) {
		return chk.Err("--length must be positive to compute critical loads. L = %g is invalid", sectionLength)
	}
	var m ana.Material
	if err = m.Init(sectionMaterial, "Pa"); err != nil {
		return err
	}
	var beam ana.PrismaticBeam
	beam.Init(m.Material(sectionMaterial), sec, sectionLength)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\n%s\tL = %g m\t\n", m.Desc, sectionLength)
	fmt.Fprintf(tw, "Euler load π²EI/L²\t%.6e N\t\n", beam.EulerLoad())
	fmt.Fprintf(tw, "torsional buckling load\t%.6e N\t\n", beam.TorsionalBucklingLoad())
	fmt.Fprintf(tw, "warping parameter k\t%.6e 1/m\t\n", beam.WarpingParameter())
	return tw.Flush()
}
