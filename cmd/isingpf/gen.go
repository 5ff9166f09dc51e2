// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/latticepf/isingpf/coupling"
)

var genCmd = &cobra.Command{
	Use:   "gen Lx Ly seed probability directory [stddev]",
	Short: "Generate a random-bond coupling lattice under directory's layout",
	Args:  cobra.RangeArgs(5, 6),
	RunE:  runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	lx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("isingpf: invalid Lx %q: %w", args[0], err)
	}
	ly, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("isingpf: invalid Ly %q: %w", args[1], err)
	}
	seed, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("isingpf: invalid seed %q: %w", args[2], err)
	}
	prob, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("isingpf: invalid probability %q: %w", args[3], err)
	}
	directory := args[4]

	useGaussian := len(args) == 6
	var stddev float64
	if useGaussian {
		stddev, err = strconv.ParseFloat(args[5], 64)
		if err != nil {
			return fmt.Errorf("isingpf: invalid std dev %q: %w", args[5], err)
		}
		if stddev <= 0 {
			return fmt.Errorf("isingpf: std dev must be positive, got %v", stddev)
		}
	}

	outputDir := filepath.Join(directory, "interactionsGaussian",
		formatFloat(prob), strconv.Itoa(lx), strconv.Itoa(ly), formatFloat(stddev), strconv.Itoa(seed))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("isingpf: creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, "interaction_lattice.txt")
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("isingpf: creating %s: %w", outputPath, err)
	}
	defer f.Close()

	params := coupling.Params{
		Lx: lx, Ly: ly, Seed: uint64(seed),
		Probability: prob, Gaussian: useGaussian, StdDev: stddev,
	}
	if err := coupling.Generate(f, params); err != nil {
		return err
	}

	log.Info().Str("output", outputPath).Msg("coupling lattice generated")
	fmt.Printf("Coupling lattice written to: %s\n", outputPath)
	return nil
}
