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
	"image"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Mesh is a triangle mesh with integer vertex coordinates.
type Mesh struct {
	// Vertices lists the vertex positions. Vertices at the same position
	// may occur more than once, for example where two filled cells touch
	// only at a corner.
	Vertices []image.Point

	// Triangles lists the vertex indices of each triangle. For every
	// triangle (a, b, c) the cross product (b-a)×(c-a) is non-negative.
	Triangles [][3]int
}

// Area2 returns twice the total signed area of all triangles.
// For a mesh returned by Triangulate, this is twice the number of
// filled cells.
func (m *Mesh) Area2() int {
	total := 0
	for _, tri := range m.Triangles {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		ab, ac := b.Sub(a), c.Sub(a)
		total += ab.X*ac.Y - ab.Y*ac.X
	}
	return total
}

// Path returns the mesh as a path with one closed subpath per triangle.
// Since all triangles have the same orientation, filling the path with
// either fill rule covers exactly the filled cells of the mask.
func (m *Mesh) Path() *path.Data {
	p := &path.Data{}
	for _, tri := range m.Triangles {
		p = p.MoveTo(toVec(m.Vertices[tri[0]])).
			LineTo(toVec(m.Vertices[tri[1]])).
			LineTo(toVec(m.Vertices[tri[2]])).
			Close()
	}
	return p
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Draw fills the triangles of the mesh into dst. Mesh coordinates are
// taken relative to dst.Rect.Min.
func (m *Mesh) Draw(dst *image.Alpha) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, tri := range m.Triangles {
		for k, idx := range tri {
			v := m.Vertices[idx].Sub(b.Min)
			if k == 0 {
				r.MoveTo(float32(v.X), float32(v.Y))
			} else {
				r.LineTo(float32(v.X), float32(v.Y))
			}
		}
		r.ClosePath()
	}
	r.Draw(dst, b, image.Opaque, image.Point{})
}

// meshBuilder collects vertices and triangles while the sweep runs.
type meshBuilder struct {
	vertices  []image.Point
	triangles [][3]int
}

// addVertex appends a vertex and returns it together with its index.
func (mb *meshBuilder) addVertex(x, y int) vertex {
	id := len(mb.vertices)
	mb.vertices = append(mb.vertices, image.Point{X: x, Y: y})
	return vertex{x: x, y: y, id: id}
}

func (mb *meshBuilder) addTriangle(a, b, c vertex) {
	mb.triangles = append(mb.triangles, [3]int{a.id, b.id, c.id})
}

func (mb *meshBuilder) build() *Mesh {
	return &Mesh{
		Vertices:  mb.vertices,
		Triangles: mb.triangles,
	}
}
