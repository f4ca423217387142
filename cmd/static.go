// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/fem"
	"github.com/cpmech/vlasov/out"
	"github.com/spf13/cobra"
)

var (
	staticGraph    string
	staticDiagram  string
	staticPng      string
	staticPlane    string
	staticScale    float64
	staticVerbose  bool
	staticParallel bool
)

var staticCmd = &cobra.Command{
	Use:   "static <model.json>",
	Short: "Solve K・u = F and print displacements, reactions and axial forces",
	Long: `Assemble the global stiffness matrix of a model, apply constraints
and nodal loads, and solve for the nodal displacements.

Examples:
  # displacements, reactions and axial forces
  vlasov static cantilever.json

  # ASCII chart of the twist along the nodes and a PNG of the deformed shape
  vlasov static cantilever.json --graph rx --png cantilever.png --plane xy

  # ASCII chart of the bending moment Mz at the ends of all elements
  vlasov static frame.json --diagram Mz`,
	Args: cobra.ExactArgs(1),
	RunE: runStatic,
}

func init() {
	rootCmd.AddCommand(staticCmd)
	staticCmd.Flags().StringVarP(&staticGraph, "graph", "g", "", "DOF to draw as ASCII chart: u, v, w, rx, ry, rz or wp")
	staticCmd.Flags().StringVarP(&staticDiagram, "diagram", "d", "", "internal force to draw as ASCII chart: N, Vy, Vz, T, My, Mz or B")
	staticCmd.Flags().StringVar(&staticPng, "png", "", "save the deformed structure (and the --graph DOF along nodes) to this image file")
	staticCmd.Flags().StringVar(&staticPlane, "plane", "xy", "projection plane for images")
	staticCmd.Flags().Float64VarP(&staticScale, "scale", "s", -1, "displacement scale for images; negative means automatic")
	staticCmd.Flags().BoolVarP(&staticVerbose, "verbose", "v", false, "show messages")
	staticCmd.Flags().BoolVar(&staticParallel, "parallel", false, "compute element matrices concurrently")
}

func runStatic(cmd *cobra.Command, args []string) error {

	// model
	m, err := fem.NewModelFromFile(args[0], staticVerbose)
	if err != nil {
		return err
	}
	m.Parallel = staticParallel

	// solve
	sol := fem.NewStaticSolver(m)
	sol.Verbose = staticVerbose
	u, err := sol.Solve()
	if err != nil {
		return err
	}
	forces, err := sol.ElementForces(u)
	if err != nil {
		return err
	}
	R := sol.Reactions(u)
	res, err := out.Start(m, u)
	if err != nil {
		return err
	}

	// tables
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "\nDISPLACEMENTS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	printNodalTable(tw, res, res.U)
	tw.Flush()

	fmt.Fprintln(w, "\nREACTIONS")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	printNodalTable(tw, res, R)
	tw.Flush()

	fmt.Fprintln(w, "\nAXIAL FORCES (tension > 0)")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "element\tnode 1\tnode 2\tN\t")
	for i, P := range fem.AxialForces(forces) {
		n1, n2 := m.Elements()[i].Ends()
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6e\t\n", i, n1.Id, n2.Id, P)
	}
	tw.Flush()

	// graph
	dof := -1
	if staticGraph != "" {
		dof, err = out.DofIndex(staticGraph)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n", out.AsciiSeries(res, dof))
	}

	// internal force diagram
	if staticDiagram != "" {
		comp, err := out.ForceIndex(staticDiagram)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n", out.AsciiDiagram(m, forces, comp))
	}

	// figure
	if staticPng != "" {
		p, err := out.StructurePlot(res, staticPlane, staticScale, "deformed structure")
		if err != nil {
			return err
		}
		if err = out.Save(p, staticPng); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nfile <%s> written\n", staticPng)
		if dof >= 0 {
			p, err = out.SeriesPlot(res, dof, staticGraph+" along nodes")
			if err != nil {
				return err
			}
			fn := suffixFilename(staticPng, staticGraph)
			if err = out.Save(p, fn); err != nil {
				return err
			}
			fmt.Fprintf(w, "file <%s> written\n", fn)
		}
	}
	return nil
}

// printNodalTable prints one row per node with the values of all DOFs
func printNodalTable(tw *tabwriter.Writer, res *out.Results, U []float64) {
	fmt.Fprint(tw, "node\t")
	for _, key := range out.DofKeys {
		fmt.Fprintf(tw, "%s\t", key)
	}
	fmt.Fprintln(tw)
	for _, nod := range res.Nodes {
		fmt.Fprintf(tw, "%d\t", nod.Id)
		for i := 0; i < ele.Ndof; i++ {
			fmt.Fprintf(tw, "%.6e\t", U[nod.Dofs[i]])
		}
		fmt.Fprintln(tw)
	}
}
