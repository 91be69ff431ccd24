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

import "fmt"

// merge handles a span [x0, x1) of cells in the given row which are
// filled while the cells above are empty. The chain ending at x0 and the
// chain starting at x1, if present, are joined across the top edge of the
// new span.
func (t *Triangulator) merge(row, x0, x1 int) error {
	left := t.horizon.take(endsAt(x0))
	right := t.horizon.take(startsAt(x1))
	if left.found && len(left.chain) < 2 || right.found && len(right.chain) < 2 {
		return fmt.Errorf("%w: degenerate neighbour chain at row %d, span [%d,%d)",
			ErrInconsistent, row, x0, x1)
	}

	p0 := t.mesh.addVertex(x0, row)
	p1 := t.mesh.addVertex(x1, row)

	c := t.keepLeft(left, p0)
	c = append(c, p0, p1)
	c = append(c, t.keepRight(right, p1)...)
	t.horizon.push(c)
	return nil
}

// keepLeft trims the reflex vertices at the end of a left neighbour
// against p and returns what is left of it. The result is nil if there
// is no neighbour.
func (t *Triangulator) keepLeft(n neighbour, p vertex) chain {
	if !n.found {
		return nil
	}
	l := t.reflexLeft(n.chain, p, 0, len(n.chain)-1)
	return n.chain[:l+1]
}

// keepRight trims the reflex vertices at the start of a right neighbour
// against p and returns what is left of it.
func (t *Triangulator) keepRight(n neighbour, p vertex) chain {
	if !n.found {
		return nil
	}
	r := t.reflexRight(n.chain, p, 0, len(n.chain)-1)
	return n.chain[r:]
}

// split handles a span [x0, x1) of cells which are empty in the given row
// while the cells above are filled. The chain above the span is closed
// off and up to two remainders are put back into the horizon.
func (t *Triangulator) split(row, x0, x1 int) error {
	above := t.horizon.take(covering(x0, x1))
	if !above.found {
		return fmt.Errorf("%w: no open chain covers [%d,%d] at row %d",
			ErrInconsistent, x0, x1, row)
	}
	c := above.chain
	n := len(c)

	i0 := c.le(x0)
	i1 := c.ge(x1)
	if i0 < 0 || i1 >= n || i0 >= i1 {
		return fmt.Errorf("%w: chain [%d,%d] has no vertices bracketing [%d,%d] at row %d",
			ErrInconsistent, c.first().x, c.last().x, x0, x1, row)
	}

	p0 := t.mesh.addVertex(x0, row)
	p1 := t.mesh.addVertex(x1, row)

	// triangulate the part of the chain above the span
	j0, j1 := i0, i1
	if c[j0].x < x0 {
		t.mesh.addTriangle(c[j0], c[j0+1], p0)
		j0++
	}
	if c[j1].x > x1 && j0 < j1 {
		t.mesh.addTriangle(c[j1-1], c[j1], p1)
		j1--
	}
	j0 = t.reflexRight(c, p0, j0, j1)
	j1 = t.reflexLeft(c, p1, j0, j1)
	t.mesh.addTriangle(p0, c[j1], p1)

	// sever the parts left and right of the span
	if i0 > 0 || c[i0].x < x0 {
		l := t.reflexLeft(c, p0, 0, i0)
		left := make(chain, l+1, l+2)
		copy(left, c[:l+1])
		t.horizon.push(append(left, p0))
	}
	if i1 < n-1 || c[i1].x > x1 {
		r := t.reflexRight(c, p1, i1, n-1)
		right := make(chain, 1, n-r+1)
		right[0] = p1
		t.horizon.push(append(right, c[r:]...))
	}
	return nil
}

// reflexLeft walks the chain from index i1 down to i0 and emits a
// triangle for every vertex which does not make a left turn towards p.
// It returns the index of the last vertex which is kept.
func (t *Triangulator) reflexLeft(c chain, p vertex, i0, i1 int) int {
	for i := i1; i > i0; i-- {
		a, b := c[i-1], c[i]
		if orient(a, b, p) > 0 {
			return i
		}
		t.mesh.addTriangle(a, b, p)
	}
	return i0
}

// reflexRight is the mirror image of reflexLeft: it walks from i0 up to
// i1 and returns the index of the first vertex which is kept.
func (t *Triangulator) reflexRight(c chain, p vertex, i0, i1 int) int {
	for i := i0; i < i1; i++ {
		a, b := c[i], c[i+1]
		if orient(p, a, b) > 0 {
			return i
		}
		t.mesh.addTriangle(p, a, b)
	}
	return i1
}
