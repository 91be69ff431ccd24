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

package ortho

import (
	"cmp"
	"slices"
)

// vertex is a pixel corner together with its index in the output mesh.
type vertex struct {
	x, y int
	id   int
}

// chain is a part of the open upper boundary of the filled region, with
// strictly increasing x coordinates. Both ends are trimmed by reslicing.
type chain []vertex

func (c chain) first() vertex { return c[0] }
func (c chain) last() vertex  { return c[len(c)-1] }

// ge returns the index of the first vertex with x coordinate >= x,
// or len(c) if there is no such vertex.
func (c chain) ge(x int) int {
	i, _ := slices.BinarySearchFunc(c, x, compareX)
	return i
}

// le returns the index of the last vertex with x coordinate <= x,
// or -1 if there is no such vertex.
func (c chain) le(x int) int {
	i, _ := slices.BinarySearchFunc(c, x+1, compareX)
	return i - 1
}

func compareX(v vertex, x int) int {
	return cmp.Compare(v.x, x)
}

// covers reports whether the chain spans the interval [x0, x1].
func (c chain) covers(x0, x1 int) bool {
	return c.first().x <= x0 && x1 <= c.last().x
}
