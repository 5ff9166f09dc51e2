// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample reads a coupling lattice from disk and exposes it as
// a bond.Provider (§6). The input format is one header line "Lx Ly"
// followed by one line per recorded bond: "x y dir J", where dir is
// either a compass letter (N, E, S, W) or its numeric equivalent (0-3)
// and J is the coupling for the bond leaving spin (x, y) in that
// direction.
//
// Spin layout and direction convention:
//
//	(0,0) (1,0) (2,0) ... (Lx-1,0)
//	(0,1) (1,1) (2,1) ... (Lx-1,1)
//	  .     .     .           .
//
//	    N(0)
//	W(3)   E(1)
//	    S(2)
package sample

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/latticepf/isingpf/bond"
	"github.com/latticepf/isingpf/explog"
	"github.com/latticepf/isingpf/scalar"
)

// FileSample is a bond.Provider backed by an on-disk coupling lattice,
// read once at construction time and held as dense weight tables.
type FileSample struct {
	lx, ly int
	xbonds [][]scalar.Scalar // xbonds[i][j]: edge (i,j)-(i+1 mod lx,j)
	ybonds [][]scalar.Scalar // ybonds[i][j]: edge (i,j)-(i,j+1 mod ly)
	pref   scalar.Scalar
}

// Load reads a FileSample from path at temperature t, computing bond
// weights exp(-2J/T) and the overall prefactor Π exp(J_ij/T) as it
// parses each record.
func Load(path string, t scalar.Scalar) (*FileSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	defer f.Close()
	return Read(f, t)
}

// Read parses a coupling lattice from r, matching Load's format.
func Read(r io.Reader, t scalar.Scalar) (*FileSample, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int, error) {
		if !sc.Scan() {
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(sc.Text())
	}
	nextToken := func() (string, error) {
		if !sc.Scan() {
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}

	lx, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("sample: reading Lx: %w", err)
	}
	ly, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("sample: reading Ly: %w", err)
	}
	if lx <= 0 || ly <= 0 {
		return nil, fmt.Errorf("sample: invalid extent %d x %d", lx, ly)
	}

	s := &FileSample{
		lx: lx, ly: ly,
		xbonds: newZeroTable(lx, ly),
		ybonds: newZeroTable(lx, ly),
		pref:   scalar.FromInt64(1),
	}

	for {
		xTok, err := nextToken()
		if err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sample: reading record: %w", err)
		}
		x, err := strconv.Atoi(xTok)
		if err != nil {
			return nil, fmt.Errorf("sample: invalid x coordinate %q: %w", xTok, err)
		}
		y, err := nextInt()
		if err != nil {
			return nil, fmt.Errorf("sample: reading y: %w", err)
		}
		dirTok, err := nextToken()
		if err != nil {
			return nil, fmt.Errorf("sample: reading direction: %w", err)
		}
		jTok, err := nextToken()
		if err != nil {
			return nil, fmt.Errorf("sample: reading J: %w", err)
		}
		jFloat, err := strconv.ParseFloat(jTok, 64)
		if err != nil {
			return nil, fmt.Errorf("sample: invalid coupling %q: %w", jTok, err)
		}
		j := scalar.FromFloat64(jFloat)

		if x < 0 || x >= lx || y < 0 || y >= ly {
			return nil, fmt.Errorf("sample: record (%d,%d) out of bounds for %dx%d lattice", x, y, lx, ly)
		}

		s.pref = scalar.Mul(s.pref, explog.Exp(scalar.Quo(j, t)))
		weight := explog.Exp(scalar.Neg(scalar.Mul(scalar.FromInt64(2), scalar.Quo(j, t))))

		switch dirTok {
		case "N", "0":
			s.ybonds[x][(y+ly-1)%ly] = weight
		case "E", "1":
			s.xbonds[x][y] = weight
		case "S", "2":
			s.ybonds[x][y] = weight
		case "W", "3":
			s.xbonds[(x+lx-1)%lx][y] = weight
		default:
			return nil, fmt.Errorf("sample: unrecognized direction %q", dirTok)
		}
	}

	return s, nil
}

func newZeroTable(lx, ly int) [][]scalar.Scalar {
	t := make([][]scalar.Scalar, lx)
	for i := range t {
		row := make([]scalar.Scalar, ly)
		for j := range row {
			row[j] = scalar.Zero()
		}
		t[i] = row
	}
	return t
}

// Extent implements bond.Provider.
func (s *FileSample) Extent() (int, int) { return s.lx, s.ly }

// Prefactor implements bond.Provider.
func (s *FileSample) Prefactor() scalar.Scalar { return s.pref }

// Bond implements bond.Provider, per the plaquette direction contract
// documented on bond.Provider.
func (s *FileSample) Bond(px, py int, dir bond.Dir) scalar.Scalar {
	switch dir {
	case bond.N:
		return scalar.Neg(s.xbonds[px][py])
	case bond.E:
		return s.ybonds[(px+1)%s.lx][py]
	case bond.S:
		return s.xbonds[px][(py+1)%s.ly]
	case bond.W:
		return scalar.Neg(s.ybonds[px][py])
	default:
		panic("sample: unknown direction")
	}
}
