// seehuhn.de/go/ortho - triangulate binary raster masks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package testcases provides named binary masks for testing and
// benchmarking mesh generation.
//
// Masks are given either as bitmap literals or as vector outlines, which
// are rasterised at the stated size.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ortho/raster"
)

// TestCase defines a single test mask.
type TestCase struct {
	Name string // lowercase a-z and _ only

	// Rows is a bitmap literal, one string per row. The characters '#'
	// and '1' mark filled cells, everything else is empty.
	Rows []string

	// Path is a vector outline in pixel coordinates, with the y axis
	// pointing down. It is used when Rows is nil.
	Path   *path.Data
	Width  int // mask width for Path, in cells
	Height int // mask height for Path, in cells
	Rule   FillRule
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Grid is a rectangular array of filled and empty cells.
type Grid struct {
	Width, Height int
	Cells         []bool // row-major
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.Width, g.Height
}

// Filled reports whether the given cell is filled.
func (g *Grid) Filled(col, row int) bool {
	return g.Cells[row*g.Width+col]
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.Cells {
		if c {
			n++
		}
	}
	return n
}

// Mask returns the cells of the test case.
// Outlines are rasterised, and a cell is filled if at least half of its
// area is covered.
func (tc TestCase) Mask() *Grid {
	if tc.Rows != nil {
		return parse(tc.Rows)
	}

	g := &Grid{
		Width:  tc.Width,
		Height: tc.Height,
		Cells:  make([]bool, tc.Width*tc.Height),
	}
	r := raster.NewRasteriser(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	emit := func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c >= 0.5 {
				g.Cells[y*g.Width+xMin+i] = true
			}
		}
	}
	switch tc.Rule {
	case EvenOdd:
		r.FillEvenOdd(tc.Path, emit)
	default:
		r.FillNonZero(tc.Path, emit)
	}
	return g
}

func parse(rows []string) *Grid {
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	g := &Grid{
		Width:  w,
		Height: len(rows),
		Cells:  make([]bool, w*len(rows)),
	}
	for y, row := range rows {
		for x, c := range []byte(row) {
			g.Cells[y*w+x] = c == '#' || c == '1'
		}
	}
	return g
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
