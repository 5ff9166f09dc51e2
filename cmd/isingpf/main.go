// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command isingpf computes partition functions and free energies for
// 2D Ising models via Kasteleyn-oriented Pfaffian evaluation, and
// generates the random-bond coupling lattices it consumes.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
