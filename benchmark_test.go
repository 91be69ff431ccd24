package ortho

import (
	"fmt"
	"image"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/ortho/raster"
	"seehuhn.de/go/ortho/testcases"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkTriangulateO benchmarks the sweep on an "O" shaped mask.
func BenchmarkTriangulateO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			m := testcases.Ring(size).Mask()
			tr := NewTriangulator()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := tr.Triangulate(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTriangulateAll measures steady-state performance by reusing a
// single Triangulator across all test cases.
func BenchmarkTriangulateAll(b *testing.B) {
	var masks []Mask
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			masks = append(masks, tc.Mask())
		}
	}

	tr := NewTriangulator()

	b.ResetTimer()
	for b.Loop() {
		for _, m := range masks {
			if _, err := tr.Triangulate(m); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkDrawO benchmarks drawing the mesh of an "O" shaped mask.
func BenchmarkDrawO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			mesh, err := Triangulate(testcases.Ring(size).Mask())
			if err != nil {
				b.Fatal(err)
			}
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				mesh.Draw(dst)
			}
		})
	}
}

// BenchmarkRasterO fills the path of the same mesh with the scanline
// rasteriser, for comparison with BenchmarkDrawO.
func BenchmarkRasterO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			mesh, err := Triangulate(testcases.Ring(size).Mask())
			if err != nil {
				b.Fatal(err)
			}
			p := mesh.Path()
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := raster.NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}
