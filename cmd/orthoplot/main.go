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


// Command orthoplot triangulates a binary mask and draws the mesh into a
// PDF file.
//
// The mask is read from an image file (-in), where a pixel is filled if
// its alpha value reaches the threshold, or is taken from the registered
// test cases (-case category/name). Without either flag, all registered
// test cases are drawn into the directory given by -dir.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/ortho"
	"seehuhn.de/go/ortho/meshcheck"
	"seehuhn.de/go/ortho/testcases"
)

var (
	inFile    = flag.String("in", "", "read the mask from this image file")
	caseName  = flag.String("case", "", "use the registered test case `category/name`")
	threshold = flag.Float64("threshold", 0.5, "minimal alpha value of filled pixels, between 0 and 1")
	outFile   = flag.String("out", "mesh.pdf", "name of the output PDF file")
	outDir    = flag.String("dir", "debug/orthoplot", "output directory when drawing all test cases")
	check     = flag.Bool("check", false, "verify the mesh against the mask contours")
	verbose   = flag.Bool("v", false, "log details of the triangulation")
)

// pageSize is the length of the longer page side, in PDF points.
const pageSize = 500

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ortho.SetLogger(logger)

	if err := run(logger); err != nil {
		logger.Error("orthoplot failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	switch {
	case *inFile != "" && *caseName != "":
		return errors.New("-in and -case cannot be used together")
	case *inFile != "":
		m, err := loadImage(logger, *inFile)
		if err != nil {
			return err
		}
		return plot(logger, *inFile, m, *outFile)
	case *caseName != "":
		category, name, _ := strings.Cut(*caseName, "/")
		tc, ok := testcases.Find(category, name)
		if !ok {
			return fmt.Errorf("unknown test case %q", *caseName)
		}
		return plot(logger, *caseName, tc.Mask(), *outFile)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(*outDir, name+".pdf")
			if err := plot(logger, name, tc.Mask(), fname); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

// mask combines the interfaces needed by ortho and meshcheck.
type mask interface {
	ortho.Mask
	meshcheck.Mask
}

func loadImage(logger *slog.Logger, fname string) (mask, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, format, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	logger.Debug("image loaded", "file", fname, "format", format, "bounds", img.Bounds())

	if *threshold <= 0 || *threshold > 1 {
		return nil, fmt.Errorf("invalid threshold %g", *threshold)
	}
	return ortho.ImageMask{
		Img:       img,
		Threshold: uint32(*threshold * 0xffff),
	}, nil
}

func plot(logger *slog.Logger, name string, m mask, fname string) error {
	mesh, err := ortho.Triangulate(m)
	if err != nil {
		return err
	}
	w, h := m.Size()
	logger.Info("triangulated",
		"mask", name,
		"width", w,
		"height", h,
		"vertices", len(mesh.Vertices),
		"triangles", len(mesh.Triangles))

	if *check {
		if err := meshcheck.Check(m, mesh.Vertices, mesh.Triangles); err != nil {
			return fmt.Errorf("mesh check failed: %w", err)
		}
		r := meshcheck.Analyse(mesh.Vertices, mesh.Triangles)
		logger.Info("mesh check passed",
			"mask", name,
			"euler", r.Euler,
			"boundaryEdges", r.BoundaryEdges,
			"degenerate", r.Degenerate)
	}

	return writePDF(fname, m, mesh)
}

func writePDF(fname string, m mask, mesh *ortho.Mesh) error {
	w, h := m.Size()
	scale := float64(pageSize) / float64(max(w, h, 1))

	paper := &pdf.Rectangle{
		URx: scale * float64(max(w, 1)),
		URy: scale * float64(max(h, 1)),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, masks use top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, paper.URy})

	page.SetFillColor(color.DeviceGray(0.8))
	cells := 0
	for row := range h {
		for col := range w {
			if m.Filled(col, row) {
				page.Rectangle(float64(col), float64(row), 1, 1)
				cells++
			}
		}
	}
	if cells > 0 {
		page.Fill()
	}

	if len(mesh.Triangles) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.5 / scale)
		page.SetLineJoin(graphics.LineJoinRound)
		for _, tri := range mesh.Triangles {
			a := mesh.Vertices[tri[0]]
			page.MoveTo(float64(a.X), float64(a.Y))
			for _, k := range tri[1:] {
				v := mesh.Vertices[k]
				page.LineTo(float64(v.X), float64(v.Y))
			}
			page.ClosePath()
		}
		page.Stroke()
	}

	return page.Close()
}
