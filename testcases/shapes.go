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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var shapeCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   rectangle(10.3, 10.7, 44.2, 41.6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "diamond",
		Path:   diamond(32, 32, 27),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 28),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 24, 29, 15),
		Width:  64,
		Height: 48,
	},
	{
		Name:   "ring",
		Path:   ring(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "concentric_evenodd",
		Path:   concentricRectangles(32, 32, 28, 20, 12, 4),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "grid",
		Path:   rectangleGrid(6, 6, 64, 64, 2.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clipped",
		Path:   rectangle(-20, 10, 84, 30),
		Width:  64,
		Height: 40,
	},
}

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier curve.
const kappa = 0.5522847498307936

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return addRectangle(&path.Data{}, x1, y1, x2, y2)
}

func addRectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	var pts [5]vec.Vec2
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	return (&path.Data{}).
		MoveTo(pts[0]).
		LineTo(pts[2]).
		LineTo(pts[4]).
		LineTo(pts[1]).
		LineTo(pts[3]).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, rx, ry)
}

func addEllipse(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// ring builds two concentric circles. With the even-odd rule, the
// inner circle becomes a hole.
func ring(cx, cy, outer, inner float64) *path.Data {
	p := addEllipse(&path.Data{}, cx, cy, outer, outer)
	return addEllipse(p, cx, cy, inner, inner)
}

// concentricRectangles builds nested squares with the given half-widths,
// all with the same orientation.
func concentricRectangles(cx, cy float64, sizes ...float64) *path.Data {
	p := &path.Data{}
	for _, s := range sizes {
		p = addRectangle(p, cx-s, cy-s, cx+s, cy+s)
	}
	return p
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			p = addRectangle(p, x1, y1, x2, y2)
		}
	}
	return p
}
