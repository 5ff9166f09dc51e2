// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/latticepf/isingpf/bond"
	"github.com/latticepf/isingpf/sample"
	"github.com/latticepf/isingpf/scalar"
)

var plotCmd = &cobra.Command{
	Use:   "plot input.txt output.png",
	Short: "Render a coupling lattice's N-direction bond magnitudes as a heatmap",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
}

// bondGrid adapts a loaded sample into gonum's plotter.GridXYZ, so its
// N-direction bond weights — the x-bonds, per bond.Provider's contract
// — can be rendered without exposing the sample package's internal
// weight tables.
type bondGrid struct {
	lx, ly int
	s      *sample.FileSample
}

func (g bondGrid) Dims() (c, r int) { return g.lx, g.ly }
func (g bondGrid) X(c int) float64  { return float64(c) }
func (g bondGrid) Y(r int) float64  { return float64(r) }
func (g bondGrid) Z(c, r int) float64 {
	return scalar.Abs(g.s.Bond(c, r, bond.N)).Float64()
}

func runPlot(cmd *cobra.Command, args []string) error {
	scalar.SetPrec(cfg.Precision)

	s, err := sample.Load(args[0], scalar.FromInt64(1))
	if err != nil {
		return err
	}
	lx, ly := s.Extent()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Coupling lattice %s (%d x %d)", args[0], lx, ly)

	heatmap := plotter.NewHeatMap(bondGrid{lx: lx, ly: ly, s: s}, moreland.SmoothBlueRed())
	p.Add(heatmap)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, args[1]); err != nil {
		return fmt.Errorf("isingpf: saving plot: %w", err)
	}
	log.Info().Str("output", args[1]).Msg("coupling lattice plotted")
	fmt.Printf("Plot written to: %s\n", args[1])
	return nil
}
