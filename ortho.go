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

// Package ortho converts binary raster masks into triangle meshes.
//
// The triangulation uses only pixel corners as vertices and tiles the
// filled cells exactly: no resampling, smoothing or simplification takes
// place. The mask is swept row by row. The upper boundary of the region
// filled so far is kept as a set of open x-monotone chains (the horizon),
// and triangles are emitted whenever a span of cells opens below empty
// space (merge) or closes above empty space (split).
//
// Vertex coordinates are integer pixel corners with y growing downwards.
// All triangles have non-negative signed area (b-a)×(c-a); some of them
// may be degenerate where the boundary has collinear corners or where two
// cells touch only at a corner.
package ortho

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
)

// ErrInconsistent is wrapped by all errors reporting a broken sweep
// invariant. Every cell is read exactly once, so any sequence of values
// is a valid raster and such errors indicate a bug in the sweep.
var ErrInconsistent = errors.New("ortho: inconsistent sweep state")

// Triangulator converts masks to meshes. A Triangulator can be reused for
// several masks; internal buffers grow as needed but never shrink.
//
// A Triangulator is not safe for concurrent use.
type Triangulator struct {
	// Clip restricts the triangulation to this part of the mask. The
	// rectangle is intersected with the mask bounds. The zero rectangle
	// selects the whole mask. Vertex coordinates are always reported in
	// mask coordinates.
	Clip image.Rectangle

	prevRow []bool
	horizon horizon
	mesh    meshBuilder

	peakChains int
}

// NewTriangulator returns a Triangulator which processes whole masks.
func NewTriangulator() *Triangulator {
	return &Triangulator{}
}

// Reset restores the default settings while keeping buffer capacity.
func (t *Triangulator) Reset() {
	t.Clip = image.Rectangle{}
	t.prevRow = t.prevRow[:0]
	t.horizon.reset()
	t.mesh = meshBuilder{}
	t.peakChains = 0
}

// Triangulate is a convenience wrapper which uses a fresh Triangulator.
// Concurrent calls are safe.
func Triangulate(m Mask) (*Mesh, error) {
	return NewTriangulator().Triangulate(m)
}

// Triangulate computes a mesh which tiles the filled cells of m.
//
// An empty mask, or a clip region without filled cells, gives a mesh
// without vertices or triangles. If the sweep detects an internal
// inconsistency, the returned error wraps ErrInconsistent and no mesh is
// returned.
func (t *Triangulator) Triangulate(m Mask) (*Mesh, error) {
	region := t.region(m)

	t.horizon.reset()
	t.mesh = meshBuilder{}
	t.peakChains = 0

	if !region.Empty() {
		if err := t.sweep(m, region); err != nil {
			Logger().Warn("triangulation aborted",
				slog.Any("region", region),
				slog.Any("error", err))
			t.horizon.reset()
			t.mesh = meshBuilder{}
			return nil, err
		}
	}

	mesh := t.mesh.build()
	t.mesh = meshBuilder{}
	Logger().Debug("triangulated mask",
		slog.Int("width", region.Dx()),
		slog.Int("height", region.Dy()),
		slog.Int("vertices", len(mesh.Vertices)),
		slog.Int("triangles", len(mesh.Triangles)),
		slog.Int("peakChains", t.peakChains))
	return mesh, nil
}

// region returns the part of the mask selected by t.Clip.
func (t *Triangulator) region(m Mask) image.Rectangle {
	nx, ny := m.Size()
	if nx <= 0 || ny <= 0 {
		return image.Rectangle{}
	}
	bounds := image.Rect(0, 0, nx, ny)
	if t.Clip == (image.Rectangle{}) {
		return bounds
	}
	return t.Clip.Intersect(bounds)
}

// sweep scans the rows of the region from top to bottom. Each run of
// cells whose value differs from the cell above generates one event:
// merge for cells which became filled, split for cells which became
// empty.
func (t *Triangulator) sweep(m Mask, region image.Rectangle) error {
	x0, x1 := region.Min.X, region.Max.X
	nx := region.Dx()

	// The row above the region counts as empty.
	if cap(t.prevRow) < nx {
		t.prevRow = make([]bool, nx)
	}
	prev := t.prevRow[:nx]
	clear(prev)

	for row := region.Min.Y; row < region.Max.Y; row++ {
		active := false
		create := false
		start := x0
		for col := x0; col < x1; col++ {
			v := m.Filled(col, row)
			above := prev[col-x0]
			if active && (v != create || v == above) {
				if err := t.event(row, start, col, create); err != nil {
					return err
				}
				active = false
			}
			if !active && v != above {
				start = col
				create = v
				active = true
			}
			prev[col-x0] = v
		}
		if active {
			if err := t.event(row, start, x1, create); err != nil {
				return err
			}
		}
		t.peakChains = max(t.peakChains, t.horizon.len())
	}

	// The row below the region counts as empty, so every run of filled
	// cells in the last row is closed.
	bottom := region.Max.Y
	active := false
	start := x0
	for col := x0; col < x1; col++ {
		if active {
			if !prev[col-x0] {
				if err := t.split(bottom, start, col); err != nil {
					return err
				}
				active = false
			}
		} else if prev[col-x0] {
			start = col
			active = true
		}
	}
	if active {
		if err := t.split(bottom, start, x1); err != nil {
			return err
		}
	}

	if n := t.horizon.len(); n > 0 {
		return fmt.Errorf("%w: %d chains still open below row %d",
			ErrInconsistent, n, bottom-1)
	}
	return nil
}

func (t *Triangulator) event(row, x0, x1 int, create bool) error {
	if create {
		return t.merge(row, x0, x1)
	}
	return t.split(row, x0, x1)
}
