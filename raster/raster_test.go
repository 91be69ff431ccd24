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


package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// render fills p into a w×h coverage buffer.
func render(r *Rasteriser, p *path.Data, w, h int, evenOdd bool) []float32 {
	buf := make([]float32, w*h)
	emit := func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	}
	if evenOdd {
		r.FillEvenOdd(p, emit)
	} else {
		r.FillNonZero(p, emit)
	}
	return buf
}

func square(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
	return p.
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	coverage := render(r, trianglePath, 10, 1, false)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

// TestPixelAligned checks that a rectangle on pixel boundaries gives
// full coverage inside and none outside.
func TestPixelAligned(t *testing.T) {
	const w, h = 8, 6
	p := square(&path.Data{}, 2, 1, 5, 4)
	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	coverage := render(r, p, w, h, false)

	for y := range h {
		for x := range w {
			want := float32(0)
			if x >= 2 && x < 5 && y >= 1 && y < 4 {
				want = 1
			}
			if got := coverage[y*w+x]; math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestFillRules(t *testing.T) {
	const w, h = 10, 10
	p := square(&path.Data{}, 1, 1, 9, 9)
	p = square(p, 3, 3, 7, 7)

	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	nonZero := render(r, p, w, h, false)
	evenOdd := render(r, p, w, h, true)

	inner := 5*w + 5
	ring := 2*w + 5
	if nonZero[inner] != 1 || nonZero[ring] != 1 {
		t.Errorf("nonzero: inner %g, ring %g", nonZero[inner], nonZero[ring])
	}
	if evenOdd[inner] != 0 || evenOdd[ring] != 1 {
		t.Errorf("even-odd: inner %g, ring %g", evenOdd[inner], evenOdd[ring])
	}
}

// TestCircleArea checks the curve flattening by comparing the total
// coverage of a circle with its area.
func TestCircleArea(t *testing.T) {
	const cx, cy, radius = 32.0, 32.0, 25.0
	const kappa = 0.5522847498307936
	k := radius * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	circle := (&path.Data{}).
		MoveTo(pt(cx+radius, cy)).
		CubeTo(pt(cx+radius, cy-k), pt(cx+k, cy-radius), pt(cx, cy-radius)).
		CubeTo(pt(cx-k, cy-radius), pt(cx-radius, cy-k), pt(cx-radius, cy)).
		CubeTo(pt(cx-radius, cy+k), pt(cx-k, cy+radius), pt(cx, cy+radius)).
		CubeTo(pt(cx+k, cy+radius), pt(cx+radius, cy+k), pt(cx+radius, cy)).
		Close()

	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.Flatness = 0.01
	var total float64
	for _, c := range render(r, circle, 64, 64, false) {
		total += float64(c)
	}

	want := math.Pi * radius * radius
	if math.Abs(total-want)/want > 0.005 {
		t.Errorf("total coverage %g, want %g", total, want)
	}
}

// TestClipLeft checks that coverage from edges left of the clip
// rectangle is carried into the first column.
func TestClipLeft(t *testing.T) {
	const w, h = 6, 2
	p := square(&path.Data{}, -5, 0, 3, 2)
	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	coverage := render(r, p, w, h, false)

	for y := range h {
		for x := range w {
			want := float32(0)
			if x < 3 {
				want = 1
			}
			if got := coverage[y*w+x]; got != want {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestCTM(t *testing.T) {
	const w, h = 4, 4
	p := square(&path.Data{}, 0, 0, 1, 1)
	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 1, 1}
	coverage := render(r, p, w, h, false)

	var total float32
	for _, c := range coverage {
		total += c
	}
	if total != 4 || coverage[1*w+1] != 1 || coverage[2*w+2] != 1 {
		t.Errorf("unexpected coverage %v", coverage)
	}

	r.Reset(rect.Rect{URx: w, URy: h})
	if r.CTM != matrix.Identity || r.Flatness != defaultFlatness {
		t.Errorf("Reset did not restore the defaults")
	}
	coverage = render(r, p, w, h, false)
	if coverage[0] != 1 || coverage[1] != 0 {
		t.Errorf("after Reset: unexpected coverage %v", coverage)
	}
}

func TestEmptyPath(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	calls := 0
	r.FillNonZero(&path.Data{}, func(int, int, []float32) { calls++ })

	// a horizontal line has no area
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 1}).
		Close()
	r.FillNonZero(line, func(int, int, []float32) { calls++ })

	if calls != 0 {
		t.Errorf("emit called %d times", calls)
	}
}

func BenchmarkFill(b *testing.B) {
	p := &path.Data{}
	for i := range 20 {
		s := float64(5 * i)
		p = square(p, s, s, 200-s, 200-s)
	}
	r := NewRasteriser(rect.Rect{URx: 200, URy: 200})
	emit := func(y, xMin int, coverage []float32) {}

	b.ResetTimer()
	for b.Loop() {
		r.FillEvenOdd(p, emit)
	}
}
