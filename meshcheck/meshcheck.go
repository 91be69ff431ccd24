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

// Package meshcheck verifies triangle meshes of binary masks against
// boundary contours extracted directly from the mask.
//
// The contours do not depend on the triangulation, so comparing the
// topology and geometry of both catches cracks, overlaps and missing
// triangles.
package meshcheck

import (
	"errors"
	"fmt"
	"image"
	"math"
	"slices"
)

// Mask is a rectangular grid of filled and empty cells.
type Mask interface {
	Size() (width, height int)
	Filled(col, row int) bool
}

// Contour is a closed boundary loop, given by its corner points.
// Walking along the contour (with y pointing down), filled cells are on
// the right-hand side. Outer boundaries therefore run clockwise on screen
// and have positive Area2, holes have negative Area2.
type Contour []image.Point

// Area2 returns twice the signed area enclosed by the contour.
func (c Contour) Area2() int {
	a := 0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += p.X*q.Y - p.Y*q.X
	}
	return a
}

// Hole reports whether the contour bounds a hole.
func (c Contour) Hole() bool {
	return c.Area2() < 0
}

// Length returns the length of the contour.
func (c Contour) Length() float64 {
	l := 0.0
	for i, p := range c {
		l += dist(p, c[(i+1)%len(c)])
	}
	return l
}

// unit steps in image coordinates
var (
	east  = image.Pt(1, 0)
	south = image.Pt(0, 1)
	west  = image.Pt(-1, 0)
	north = image.Pt(0, -1)
)

// right returns the direction after a right turn (y pointing down).
func right(d image.Point) image.Point { return image.Pt(-d.Y, d.X) }

// left returns the direction after a left turn (y pointing down).
func left(d image.Point) image.Point { return image.Pt(d.Y, -d.X) }

type step struct {
	from image.Point
	dir  image.Point
}

// Contours returns the boundary loops of the filled cells of m, reduced
// to corner points. Cells outside the mask count as empty.
//
// Where exactly two diagonally opposite cells around a grid point are
// filled, the loops are joined if the filled cells are the upper right and
// lower left ones, and kept apart otherwise. This matches the way
// the sweep in package ortho connects such cells.
func Contours(m Mask) []Contour {
	w, h := m.Size()
	filled := func(col, row int) bool {
		return col >= 0 && col < w && row >= 0 && row < h && m.Filled(col, row)
	}

	// unit boundary edges, keyed by their start point
	out := make(map[image.Point][]image.Point)
	var order []step
	add := func(p, d image.Point) {
		out[p] = append(out[p], d)
		order = append(order, step{p, d})
	}
	for row := range h {
		for col := range w {
			if !filled(col, row) {
				continue
			}
			if !filled(col, row-1) {
				add(image.Pt(col, row), east)
			}
			if !filled(col+1, row) {
				add(image.Pt(col+1, row), south)
			}
			if !filled(col, row+1) {
				add(image.Pt(col+1, row+1), west)
			}
			if !filled(col-1, row) {
				add(image.Pt(col, row+1), north)
			}
		}
	}

	used := make(map[step]bool, len(order))
	var res []Contour
	for _, s := range order {
		if used[s] {
			continue
		}

		var steps []step
		for cur := s; !used[cur]; {
			used[cur] = true
			steps = append(steps, cur)

			p := cur.from.Add(cur.dir)
			prefer := [3]image.Point{right(cur.dir), cur.dir, left(cur.dir)}
			if len(out[p]) > 1 && filled(p.X, p.Y-1) && filled(p.X-1, p.Y) {
				prefer[0], prefer[2] = prefer[2], prefer[0]
			}
			for _, d := range prefer {
				if slices.Contains(out[p], d) {
					cur = step{p, d}
					break
				}
			}
		}

		var c Contour
		for i, st := range steps {
			if st.dir != steps[(i+len(steps)-1)%len(steps)].dir {
				c = append(c, st.from)
			}
		}
		res = append(res, c)
	}
	return res
}

// Report summarises the combinatorics and geometry of a mesh.
type Report struct {
	Vertices      int // number of vertices referenced by triangles
	Edges         int
	Triangles     int
	BoundaryEdges int // edges used by exactly one triangle

	// Euler is the Euler characteristic V - E + F.
	Euler int

	// Area2 is twice the sum of the signed triangle areas.
	Area2 int

	// BoundaryLength is the total length of all boundary edges.
	BoundaryLength float64

	// Negative counts triangles with negative signed area, Degenerate
	// those with zero area.
	Negative, Degenerate int

	// Overused counts edges shared by more than two triangles.
	Overused int
}

// Analyse computes the Report for a mesh.
func Analyse(vertices []image.Point, triangles [][3]int) Report {
	var r Report
	r.Triangles = len(triangles)

	type key struct{ a, b int }
	edges := make(map[key]int)
	seen := make(map[int]bool)
	for _, tri := range triangles {
		a, b, c := vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]
		ab, ac := b.Sub(a), c.Sub(a)
		cross := ab.X*ac.Y - ab.Y*ac.X
		switch {
		case cross < 0:
			r.Negative++
		case cross == 0:
			r.Degenerate++
		}
		r.Area2 += cross

		for k := range 3 {
			u, v := tri[k], tri[(k+1)%3]
			seen[u] = true
			if u > v {
				u, v = v, u
			}
			edges[key{u, v}]++
		}
	}

	r.Vertices = len(seen)
	r.Edges = len(edges)
	for e, n := range edges {
		switch {
		case n == 1:
			r.BoundaryEdges++
			r.BoundaryLength += dist(vertices[e.a], vertices[e.b])
		case n > 2:
			r.Overused++
		}
	}
	r.Euler = r.Vertices - r.Edges + r.Triangles
	return r
}

// Check compares a mesh of m with the contours of m. The mesh must
// reference every vertex, must not contain negatively oriented
// triangles, and must match the contours in vertex count, Euler
// characteristic, triangle count, boundary edges, boundary length and
// area. All detected problems are joined into the returned error.
func Check(m Mask, vertices []image.Point, triangles [][3]int) error {
	contours := Contours(m)
	corners, euler, area2 := 0, 0, 0
	perimeter := 0.0
	for _, c := range contours {
		corners += len(c)
		perimeter += c.Length()
		area2 += c.Area2()
		if c.Hole() {
			euler--
		} else {
			euler++
		}
	}

	cells := 0
	w, h := m.Size()
	for row := range h {
		for col := range w {
			if m.Filled(col, row) {
				cells++
			}
		}
	}

	r := Analyse(vertices, triangles)

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	if len(vertices) != corners {
		fail("%d vertices, but contours have %d corners", len(vertices), corners)
	}
	if r.Vertices != len(vertices) {
		fail("%d of %d vertices are not used by any triangle", len(vertices)-r.Vertices, len(vertices))
	}
	if r.Euler != euler {
		fail("Euler characteristic is %d, contours give %d", r.Euler, euler)
	}
	if want := corners - 2*euler; r.Triangles != want {
		fail("%d triangles, want %d", r.Triangles, want)
	}
	if r.BoundaryEdges != corners {
		fail("%d boundary edges, want %d", r.BoundaryEdges, corners)
	}
	if r.Overused > 0 {
		fail("%d edges are shared by more than two triangles", r.Overused)
	}
	if r.Negative > 0 {
		fail("%d triangles have negative orientation", r.Negative)
	}
	if math.Abs(r.BoundaryLength-perimeter) > tolerance {
		fail("boundary length is %g, want %g", r.BoundaryLength, perimeter)
	}
	if math.Abs(float64(r.Area2-area2)) > tolerance {
		fail("doubled mesh area is %d, doubled contour area is %d", r.Area2, area2)
	}
	if r.Area2 != 2*cells {
		fail("doubled mesh area is %d, mask has %d filled cells", r.Area2, cells)
	}
	return errors.Join(errs...)
}

const tolerance = 1e-6

func dist(p, q image.Point) float64 {
	d := p.Sub(q)
	return math.Hypot(float64(d.X), float64(d.Y))
}
