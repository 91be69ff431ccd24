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
	"image/color"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestParseBitmap(t *testing.T) {
	b := ParseBitmap(
		"#.1",
		"0#",
		"",
	)
	if b.Width != 3 || b.Height != 3 {
		t.Fatalf("size %dx%d, want 3x3", b.Width, b.Height)
	}
	if b.Count() != 3 {
		t.Errorf("Count = %d, want 3", b.Count())
	}
	want := "#.#\n.#.\n...\n"
	if s := b.String(); s != want {
		t.Errorf("String = %q, want %q", s, want)
	}

	b.Set(2, 2, true)
	if !b.Filled(2, 2) || b.Count() != 4 {
		t.Error("Set had no effect")
	}
}

func TestImageMask(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{A: 0xff})
	img.SetNRGBA(11, 20, color.NRGBA{A: 0x40})
	img.SetNRGBA(12, 21, color.NRGBA{R: 0xff, A: 0x90})

	m := ImageMask{Img: img}
	if w, h := m.Size(); w != 3 || h != 2 {
		t.Fatalf("size %dx%d, want 3x2", w, h)
	}
	want := map[image.Point]bool{{0, 0}: true, {1, 0}: false, {2, 1}: true, {0, 1}: false}
	for p, filled := range want {
		if m.Filled(p.X, p.Y) != filled {
			t.Errorf("cell %v: got %t, want %t", p, !filled, filled)
		}
	}

	m.Threshold = 0x3000
	if !m.Filled(1, 0) {
		t.Error("threshold not applied")
	}

	mesh, err := Triangulate(m)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.Area2() != 6 {
		t.Errorf("Area2 = %d, want 6", mesh.Area2())
	}
}

func TestViews(t *testing.T) {
	b := ParseBitmap(
		"##.",
		"#..",
	)

	tr := Transpose(b)
	if w, h := tr.Size(); w != 2 || h != 3 {
		t.Errorf("transposed size %dx%d, want 2x3", w, h)
	}
	if !tr.Filled(1, 0) || tr.Filled(1, 1) || !tr.Filled(0, 1) {
		t.Error("wrong transposed cells")
	}

	fl := FlipX(b)
	if w, h := fl.Size(); w != 3 || h != 2 {
		t.Errorf("flipped size %dx%d, want 3x2", w, h)
	}
	if !fl.Filled(2, 1) || fl.Filled(0, 1) || fl.Filled(0, 0) || !fl.Filled(1, 0) {
		t.Error("wrong flipped cells")
	}
}

func TestRasterisePath(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1.2, Y: 0.9}).
		LineTo(vec.Vec2{X: 3.7, Y: 0.9}).
		LineTo(vec.Vec2{X: 3.7, Y: 2.4}).
		LineTo(vec.Vec2{X: 1.2, Y: 2.4}).
		Close()
	b := RasterisePath(p, 5, 4, NonZero)

	// columns 1-3 are covered by 0.8, 1 and 0.7, rows 0-2 by 0.1, 1 and 0.4
	want := ".....\n.###.\n.....\n.....\n"
	if s := b.String(); s != want {
		t.Errorf("got\n%swant\n%s", s, want)
	}

	if b := RasterisePath(p, 0, 4, NonZero); b.Count() != 0 || b.Width != 0 {
		t.Error("empty bitmap expected")
	}
}

func TestRasterisePathEvenOdd(t *testing.T) {
	square := func(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
		return p.
			MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	}
	p := square(&path.Data{}, 0, 0, 4, 4)
	p = square(p, 1, 1, 3, 3)

	if n := RasterisePath(p, 4, 4, NonZero).Count(); n != 16 {
		t.Errorf("nonzero: %d cells, want 16", n)
	}
	b := RasterisePath(p, 4, 4, EvenOdd)
	if n := b.Count(); n != 12 {
		t.Errorf("even-odd: %d cells, want 12", n)
	}

	mesh, err := Triangulate(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) != 8 || len(mesh.Triangles) != 8 {
		t.Errorf("ring: got %d vertices and %d triangles, want 8 and 8",
			len(mesh.Vertices), len(mesh.Triangles))
	}
}

func TestAlphaImage(t *testing.T) {
	b := ParseBitmap("#.", ".#")
	img := AlphaImage(b)
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if img.AlphaAt(0, 0).A != 0xff || img.AlphaAt(1, 0).A != 0 || img.AlphaAt(1, 1).A != 0xff {
		t.Error("wrong alpha values")
	}
	back := ImageMask{Img: img}
	for row := range 2 {
		for col := range 2 {
			if back.Filled(col, row) != b.Filled(col, row) {
				t.Errorf("cell (%d,%d) changed", col, row)
			}
		}
	}
}
