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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/ortho/raster"
)

// Mask is a rectangular grid of cells, each of which is filled or empty.
// Filled is only called with 0 <= col < width and 0 <= row < height.
// Repeated calls with the same arguments must return the same value.
type Mask interface {
	Size() (width, height int)
	Filled(col, row int) bool
}

// Bitmap is a Mask stored as a row-major slice of booleans.
type Bitmap struct {
	Width, Height int
	Cells         []bool
}

// NewBitmap returns an empty bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	return &Bitmap{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}
}

// ParseBitmap builds a bitmap from text rows. The characters '#' and '1'
// mark filled cells, all other characters mark empty cells. Short rows
// are padded with empty cells.
func ParseBitmap(rows ...string) *Bitmap {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	b := NewBitmap(width, len(rows))
	for y, row := range rows {
		for x := range len(row) {
			if row[x] == '#' || row[x] == '1' {
				b.Set(x, y, true)
			}
		}
	}
	return b
}

// Size implements the Mask interface.
func (b *Bitmap) Size() (int, int) {
	return b.Width, b.Height
}

// Filled implements the Mask interface.
func (b *Bitmap) Filled(col, row int) bool {
	return b.Cells[row*b.Width+col]
}

// Set changes the value of a cell.
func (b *Bitmap) Set(col, row int, filled bool) {
	b.Cells[row*b.Width+col] = filled
}

// Count returns the number of filled cells.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Cells {
		if v {
			n++
		}
	}
	return n
}

// String renders the bitmap using '#' and '.', one line per row.
func (b *Bitmap) String() string {
	buf := make([]byte, 0, (b.Width+1)*b.Height)
	for row := range b.Height {
		for col := range b.Width {
			if b.Filled(col, row) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// ImageMask presents an image as a Mask. Cell (col, row) corresponds to
// the pixel at Img.Bounds().Min + (col, row).
type ImageMask struct {
	Img image.Image

	// Threshold is the minimum alpha value, on the 16-bit scale used by
	// color.Color, for a pixel to count as filled. The zero value selects
	// 0x8000.
	Threshold uint32
}

// Size implements the Mask interface.
func (m ImageMask) Size() (int, int) {
	b := m.Img.Bounds()
	return b.Dx(), b.Dy()
}

// Filled implements the Mask interface.
func (m ImageMask) Filled(col, row int) bool {
	threshold := m.Threshold
	if threshold == 0 {
		threshold = defaultAlphaThreshold
	}
	origin := m.Img.Bounds().Min
	_, _, _, a := m.Img.At(origin.X+col, origin.Y+row).RGBA()
	return a >= threshold
}

const defaultAlphaThreshold = 0x8000

// Transpose returns a view of m with rows and columns exchanged.
func Transpose(m Mask) Mask {
	return transposed{m}
}

type transposed struct{ m Mask }

func (t transposed) Size() (int, int) {
	w, h := t.m.Size()
	return h, w
}

func (t transposed) Filled(col, row int) bool {
	return t.m.Filled(row, col)
}

// FlipX returns a view of m mirrored left to right.
func FlipX(m Mask) Mask {
	return flipped{m}
}

type flipped struct{ m Mask }

func (f flipped) Size() (int, int) {
	return f.m.Size()
}

func (f flipped) Filled(col, row int) bool {
	w, _ := f.m.Size()
	return f.m.Filled(w-1-col, row)
}

// FillRule selects how the interior of a path is determined.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// RasterisePath converts a vector outline into a bitmap of the given
// size. A cell is filled if at least half of its area lies inside the
// path. Path coordinates are in pixels, with the y axis pointing down.
func RasterisePath(p *path.Data, width, height int, rule FillRule) *Bitmap {
	b := NewBitmap(width, height)
	if b.Width == 0 || b.Height == 0 {
		return b
	}

	r := raster.NewRasteriser(rect.Rect{URx: float64(b.Width), URy: float64(b.Height)})
	emit := func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c >= 0.5 {
				b.Set(xMin+i, y, true)
			}
		}
	}
	if rule == EvenOdd {
		r.FillEvenOdd(p, emit)
	} else {
		r.FillNonZero(p, emit)
	}
	return b
}

// AlphaImage converts a mask into an alpha image, with filled cells
// opaque and empty cells transparent.
func AlphaImage(m Mask) *image.Alpha {
	w, h := m.Size()
	img := image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	for row := range h {
		for col := range w {
			if m.Filled(col, row) {
				img.SetAlpha(col, row, color.Alpha{A: 0xff})
			}
		}
	}
	return img
}
