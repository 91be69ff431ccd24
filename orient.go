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
	"math/big"
)

// Orient returns the sign of the determinant
//
//	(a.Y-c.Y)(b.X-c.X) - (a.X-c.X)(b.Y-c.Y)
//
// The result is -1 if a, b, c are in clockwise order (with the y axis
// pointing down, as in image coordinates), +1 if they are in
// counter-clockwise order, and 0 if the points are collinear.
// The result is exact for all inputs.
func Orient(a, b, c image.Point) int {
	return orientXY(a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

func orient(a, b, c vertex) int {
	return orientXY(a.x, a.y, b.x, b.y, c.x, c.y)
}

// smallCoord bounds the coordinates for which the determinant can be
// evaluated in int64 arithmetic without overflow.
const smallCoord = 1 << 29

func orientXY(ax, ay, bx, by, cx, cy int) int {
	if isSmall(ax) && isSmall(ay) && isSmall(bx) && isSmall(by) && isSmall(cx) && isSmall(cy) {
		det := int64(ay-cy)*int64(bx-cx) - int64(ax-cx)*int64(by-cy)
		switch {
		case det > 0:
			return 1
		case det < 0:
			return -1
		default:
			return 0
		}
	}

	diff := func(u, v int) *big.Int {
		d := big.NewInt(int64(u))
		return d.Sub(d, big.NewInt(int64(v)))
	}
	var l, r big.Int
	l.Mul(diff(ay, cy), diff(bx, cx))
	r.Mul(diff(ax, cx), diff(by, cy))
	return l.Cmp(&r)
}

func isSmall(x int) bool {
	return x > -smallCoord && x < smallCoord
}
