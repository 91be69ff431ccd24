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


package testcases

import "fmt"

// largeCases contain masks with many rows and columns, where the
// horizon holds many chains at once.
var largeCases = []TestCase{
	Ring(256),
	Letters(8),
	{
		Name:   "large_grid",
		Path:   rectangleGrid(16, 16, 512, 512, 5),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_star",
		Path:   fivePointStar(256, 256, 240),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
}

// Ring returns an annulus, similar to the letter O, on a square mask with
// the given side length.
func Ring(size int) TestCase {
	s := float64(size)
	return TestCase{
		Name:   fmt.Sprintf("ring_%d", size),
		Path:   ring(s/2, s/2, 0.45*s, 0.3*s),
		Width:  size,
		Height: size,
		Rule:   EvenOdd,
	}
}

// Letters returns a row of n letters O, each 48 cells high. Neighbouring
// letters touch.
func Letters(n int) TestCase {
	rows := make([]string, 48)
	for y := range rows {
		line := make([]byte, 0, 32*n)
		for range n {
			for x := range 32 {
				line = append(line, letterO(x, y))
			}
		}
		rows[y] = string(line)
	}
	return TestCase{
		Name: fmt.Sprintf("letters_%d", n),
		Rows: rows,
	}
}

func letterO(x, y int) byte {
	// ellipse with half-axes 16 and 24, thickness 6
	dx := float64(2*x+1-32) / 32
	dy := float64(2*y+1-48) / 48
	ix := float64(2*x+1-32) / 20
	iy := float64(2*y+1-48) / 36
	if dx*dx+dy*dy <= 1 && ix*ix+iy*iy > 1 {
		return '#'
	}
	return '.'
}
