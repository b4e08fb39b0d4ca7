package voronoi

import (
	"math"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

func box(x0, x1, y0, y1 float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: x0, Hi: x1}, Y: r1.Interval{Lo: y0, Hi: y1}}
}

func TestClipSegment(t *testing.T) {
	b := box(0, 10, 0, 10)

	tests := []struct {
		name   string
		a, bp  r2.Point
		ok     bool
		wantA  r2.Point
		wantB  r2.Point
	}{
		{"fully inside", r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2}, true, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2}},
		{"crossing right border", r2.Point{X: 5, Y: 5}, r2.Point{X: 15, Y: 5}, true, r2.Point{X: 5, Y: 5}, r2.Point{X: 10, Y: 5}},
		{"crossing whole box", r2.Point{X: -5, Y: 5}, r2.Point{X: 15, Y: 5}, true, r2.Point{X: 0, Y: 5}, r2.Point{X: 10, Y: 5}},
		{"fully outside", r2.Point{X: -5, Y: -5}, r2.Point{X: -1, Y: -1}, false, r2.Point{}, r2.Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := clipSegment(tt.a, tt.bp, b)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if seg.A != tt.wantA || seg.B != tt.wantB {
				t.Errorf("segment = %v-%v, want %v-%v", seg.A, seg.B, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestClipEdgesTwoSites(t *testing.T) {
	// ребро без единой вершины: геометрию дает серединный перпендикуляр
	d := computeSorted(t, []Point{{0, 0}, {1, 0}})
	segs := ClipEdges(d, box(-1, 2, -1, 1))

	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1", len(segs))
	}
	seg := segs[0]
	if math.Abs(seg.A.X-0.5) > 1e-9 || math.Abs(seg.B.X-0.5) > 1e-9 {
		t.Errorf("expected the vertical bisector x=0.5, got %v-%v", seg.A, seg.B)
	}
	ys := []float64{seg.A.Y, seg.B.Y}
	if math.Abs(math.Min(ys[0], ys[1])+1) > 1e-9 || math.Abs(math.Max(ys[0], ys[1])-1) > 1e-9 {
		t.Errorf("expected the segment to span the box vertically, got %v-%v", seg.A, seg.B)
	}
}

func TestClipEdgesSquare(t *testing.T) {
	// четыре луча из центра квадрата достают до границ окна
	d := computeSorted(t, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	segs := ClipEdges(d, box(-1, 2, -1, 2))

	if len(segs) != 4 {
		t.Fatalf("segments = %d, want 4", len(segs))
	}
	atVertex := func(p r2.Point) bool {
		return math.Abs(p.X-0.5) < 1e-9 && math.Abs(p.Y-0.5) < 1e-9
	}
	onBorder := func(p r2.Point) bool {
		return math.Abs(p.X+1) < 1e-9 || math.Abs(p.X-2) < 1e-9 ||
			math.Abs(p.Y+1) < 1e-9 || math.Abs(p.Y-2) < 1e-9
	}
	for _, seg := range segs {
		// один конец луча в вершине, другой на границе окна
		switch {
		case atVertex(seg.A):
			if !onBorder(seg.B) {
				t.Errorf("ray must end on the box border, got %v", seg.B)
			}
		case atVertex(seg.B):
			if !onBorder(seg.A) {
				t.Errorf("ray must end on the box border, got %v", seg.A)
			}
		default:
			t.Errorf("ray does not touch the vertex: %v-%v", seg.A, seg.B)
		}
	}
}
