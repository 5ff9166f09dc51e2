// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/latticepf/isingpf/boundary"
	"github.com/latticepf/isingpf/explog"
	"github.com/latticepf/isingpf/sample"
	"github.com/latticepf/isingpf/scalar"
)

var computeCmd = &cobra.Command{
	Use:   "compute bits Lx Ly seed probability T_fraction directory [stddev]",
	Short: "Compute ZPP, ZPA, ZAP, ZAA for a coupling lattice under directory's layout",
	Args:  cobra.RangeArgs(7, 8),
	RunE:  runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	bits, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("isingpf: invalid bits %q: %w", args[0], err)
	}
	lx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("isingpf: invalid Lx %q: %w", args[1], err)
	}
	ly, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("isingpf: invalid Ly %q: %w", args[2], err)
	}
	seed, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("isingpf: invalid seed %q: %w", args[3], err)
	}
	prob, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return fmt.Errorf("isingpf: invalid probability %q: %w", args[4], err)
	}
	tFrac, err := strconv.ParseFloat(args[5], 64)
	if err != nil {
		return fmt.Errorf("isingpf: invalid T_fraction %q: %w", args[5], err)
	}
	directory := args[6]

	useGaussian := len(args) == 8
	var stddev float64
	if useGaussian {
		stddev, err = strconv.ParseFloat(args[7], 64)
		if err != nil {
			return fmt.Errorf("isingpf: invalid std dev %q: %w", args[7], err)
		}
		if stddev <= 0 {
			return fmt.Errorf("isingpf: std dev must be positive, got %v", stddev)
		}
	}

	cfg.Precision = uint(bits)
	scalar.SetPrec(cfg.Precision)

	tNish := 1.0
	if !useGaussian && prob != 0 {
		tNish = 2 / math.Log((1-prob)/prob)
	}
	t := scalar.FromFloat64(tFrac * tNish)

	inputPath := filepath.Join(directory, "interactionsGaussian",
		formatFloat(prob), strconv.Itoa(lx), strconv.Itoa(ly), formatFloat(stddev),
		strconv.Itoa(seed), "interaction_lattice.txt")

	log.Info().Str("input", inputPath).Int("lx", lx).Int("ly", ly).Msg("loading sample")

	s, err := sample.Load(inputPath, t)
	if err != nil {
		return err
	}

	r := boundary.Compute(s)

	outputDir := filepath.Join(directory, "resultsGaussian",
		formatFloat(prob), formatFloat(stddev), strconv.Itoa(lx), strconv.Itoa(ly),
		formatFloat(tFrac), strconv.FormatUint(uint64(cfg.Precision), 10), strconv.Itoa(seed))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("isingpf: creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, "Z.txt")
	digits := int(float64(cfg.Precision) * 0.301)
	line := fmt.Sprintf("%s\t%s\t%s\t%s\t\n", r.ZPP.Text(digits), r.ZPA.Text(digits), r.ZAP.Text(digits), r.ZAA.Text(digits))
	if err := os.WriteFile(outputPath, []byte(line), 0o644); err != nil {
		return fmt.Errorf("isingpf: writing results: %w", err)
	}

	log.Info().
		Str("F_PP", explog.FreeEnergy(r.ZPP, t).Text(6)).
		Str("output", outputDir).
		Msg("Z results written")
	fmt.Printf("Z results written to: %s\n", outputDir)
	return nil
}

// formatFloat matches C++'s std::to_string(double) default formatting
// (fixed, six fractional digits), since the directory layout must
// agree byte-for-byte with the original tool's.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
