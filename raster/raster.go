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

// Package raster computes anti-aliased pixel coverage of filled paths.
//
// Coverage is accumulated as signed area per pixel: every edge adds its
// vertical extent ("cover") to the pixel column it passes through, and the
// part of the pixel to the right of the edge ("area"). Integrating cover
// from left to right along a scanline gives the winding-weighted area of
// each pixel, which is then mapped to [0, 1] by the fill rule.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates,
// normalised so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the path runs downwards, -1 if upwards
}

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts paths into per-pixel coverage values in [0, 1].
// Create one instance and reuse it for many paths; internal buffers grow
// as needed but are never released.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it. Must be positive.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	yMin, yMax float64
	xMin, xMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity transformation and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default settings for the given clip rectangle while
// keeping buffer capacity.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.cover = r.cover[:0]
	r.area = r.area[:0]
}

// FillNonZero fills p using the nonzero winding rule. The emit callback
// is called once for every scanline with non-zero coverage, in order of
// increasing y. The coverage slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZeroCoverage, emit)
}

// FillEvenOdd fills p using the even-odd rule. See FillNonZero for the
// meaning of emit.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, evenOddCoverage, emit)
}

func nonZeroCoverage(raw float32) float32 {
	return min(abs32(raw), 1)
}

func evenOddCoverage(raw float32) float32 {
	raw = abs32(raw)
	raw -= 2 * float32(math.Floor(float64(raw/2)))
	return 1 - abs32(1-raw)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func (r *Rasteriser) fill(p *path.Data, rule func(float32) float32, emit func(y, xMin int, coverage []float32)) {
	if !r.collectEdges(p) {
		return
	}

	xMin := max(int(math.Floor(r.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Ceil(r.yMax)), int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bottom, xMin, xMax)
		}

		var accum float32
		for i := range r.cover {
			raw := accum + r.area[i]
			accum += r.cover[i]
			r.cover[i] = rule(raw)
		}

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of the part of e between the heights
// top and bottom. Pixel columns left of xMin are folded into the first
// column, columns at or beyond xMax are ignored.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	top = max(top, e.y0)
	bottom = min(bottom, e.y1)
	if bottom <= top {
		return
	}

	xa, xb := e.xAt(top), e.xAt(bottom)
	lo, hi := min(xa, xb), max(xa, xb)
	first, last := int(math.Floor(lo)), int(math.Floor(hi))

	if first == last {
		r.addPiece(first, e.dir*float32(bottom-top), (lo+hi)/2, xMin, xMax)
		return
	}

	// Split the edge at the vertical pixel boundaries. The vertical extent
	// of each piece follows from its horizontal extent.
	dydx := (bottom - top) / (hi - lo)
	for pix := first; pix <= last && pix < xMax; pix++ {
		left := max(lo, float64(pix))
		right := min(hi, float64(pix+1))
		if right <= left {
			continue
		}
		dy := (right - left) * dydx
		r.addPiece(pix, e.dir*float32(dy), (left+right)/2, xMin, xMax)
	}
}

// addPiece records an edge piece which lies inside pixel column pix,
// with signed vertical extent cover and mean x coordinate xMid.
func (r *Rasteriser) addPiece(pix int, cover float32, xMid float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += cover
		r.area[0] += cover
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += cover
		r.area[i] += cover * float32(1-(xMid-float64(pix)))
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset. If all values are zero, the
// result is nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// collectEdges flattens p into device space edges. It returns false if
// the path has no edges.
func (r *Rasteriser) collectEdges(p *path.Data) bool {
	r.edges = r.edges[:0]
	r.xMin, r.yMin = math.Inf(1), math.Inf(1)
	r.xMax, r.yMax = math.Inf(-1), math.Inf(-1)

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flatten(2, []vec.Vec2{current, p.Coords[k], p.Coords[k+1]})
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flatten(3, []vec.Vec2{current, p.Coords[k], p.Coords[k+1], p.Coords[k+2]})
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	return len(r.edges) > 0
}

// addEdge transforms a user space segment to device space and records it.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})

	r.xMin = min(r.xMin, x0, x1)
	r.xMax = max(r.xMax, x0, x1)
	r.yMin = min(r.yMin, y0)
	r.yMax = max(r.yMax, y1)
}

// flatten approximates a quadratic (degree 2) or cubic (degree 3) Bézier
// curve by line segments. The number of segments is chosen so that the
// distance to the curve, measured in device space, stays below Flatness.
func (r *Rasteriser) flatten(degree int, pts []vec.Vec2) {
	// The second differences of the control points bound the deviation of
	// the curve from its chords.
	var dev float64
	for i := 0; i+2 < len(pts); i++ {
		d := pts[i].Sub(pts[i+1].Mul(2)).Add(pts[i+2])
		dev = max(dev, r.transformLinear(d).Length())
	}
	n := 1
	if dev > 0 {
		scale := 0.25 // quadratic: |P0-2P1+P2|/4
		if degree == 3 {
			scale = 0.75 // Wang's bound for cubics: 3/4 max|second difference|
		}
		n = max(1, int(math.Ceil(math.Sqrt(scale*dev/r.Flatness))))
	}

	prev := pts[0]
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := bezier(pts, t)
		r.addEdge(prev, pt)
		prev = pt
	}
}

// bezier evaluates a Bézier curve with de Casteljau's algorithm.
func bezier(pts []vec.Vec2, t float64) vec.Vec2 {
	var buf [4]vec.Vec2
	q := buf[:len(pts)]
	copy(q, pts)
	for n := len(q) - 1; n > 0; n-- {
		for i := range n {
			q[i] = q[i].Mul(1 - t).Add(q[i+1].Mul(t))
		}
	}
	return q[0]
}

// transformLinear applies the linear part of the CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

const (
	// defaultFlatness is the default curve approximation tolerance in
	// device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
