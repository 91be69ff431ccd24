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

// horizon holds the open chains between two rows.
//
// Chains live in slots which keep their index until the chain is taken
// out again. Freed slots are reused by later pushes.
type horizon struct {
	slots []chain // nil marks a free slot
	free  []int
	n     int
}

// neighbour is the result of a chain lookup.
type neighbour struct {
	chain
	found bool
}

// take removes and returns the first chain matching pred.
func (h *horizon) take(pred func(chain) bool) neighbour {
	for i, c := range h.slots {
		if c == nil || !pred(c) {
			continue
		}
		h.slots[i] = nil
		h.free = append(h.free, i)
		h.n--
		return neighbour{chain: c, found: true}
	}
	return neighbour{}
}

// push adds a chain to the horizon.
func (h *horizon) push(c chain) {
	h.n++
	if k := len(h.free); k > 0 {
		i := h.free[k-1]
		h.free = h.free[:k-1]
		h.slots[i] = c
		return
	}
	h.slots = append(h.slots, c)
}

func (h *horizon) len() int {
	return h.n
}

func (h *horizon) reset() {
	clear(h.slots)
	h.slots = h.slots[:0]
	h.free = h.free[:0]
	h.n = 0
}

// endsAt matches chains whose last vertex has x coordinate x.
func endsAt(x int) func(chain) bool {
	return func(c chain) bool { return c.last().x == x }
}

// startsAt matches chains whose first vertex has x coordinate x.
func startsAt(x int) func(chain) bool {
	return func(c chain) bool { return c.first().x == x }
}

// covering matches chains which span [x0, x1].
func covering(x0, x1 int) func(chain) bool {
	return func(c chain) bool { return c.covers(x0, x1) }
}
