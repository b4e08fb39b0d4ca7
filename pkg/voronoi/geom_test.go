package voronoi

import (
	"math"
	"testing"
)

const testEps = 1e-9

func TestPointLess(t *testing.T) {
	tests := []struct {
		name string
		l, r Point
		want bool
	}{
		{"x strictly less", Point{0, 0}, Point{1, 0}, true},
		{"x strictly greater", Point{1, 0}, Point{0, 0}, false},
		{"x equal y less", Point{0, 0}, Point{0, 1}, true},
		{"x equal y greater", Point{0, 1}, Point{0, 0}, false},
		{"equal points", Point{1, 1}, Point{1, 1}, false},
		{"x within eps y decides", Point{1, 0}, Point{1 + 1e-10, 1}, true},
		{"x within eps y equal", Point{1, 1}, Point{1 + 1e-10, 1}, false},
		{"x difference above eps", Point{1 + 1e-6, -5}, Point{1, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointLess(tt.l, tt.r, testEps); got != tt.want {
				t.Errorf("pointLess(%v, %v) = %v, want %v", tt.l, tt.r, got, tt.want)
			}
		})
	}
}

func TestCircumcircleEquilateral(t *testing.T) {
	a := Point{0, 0}
	b := Point{0.5, math.Sqrt(3) / 2}
	c := Point{1, 0}

	center, r, ok := circumcircle(a, b, c, testEps)
	if !ok {
		t.Fatal("expected a valid circumcircle")
	}
	wantCenter := Point{0.5, math.Sqrt(3) / 6}
	wantR := 1 / math.Sqrt(3)
	if math.Abs(center.X-wantCenter.X) > 1e-12 || math.Abs(center.Y-wantCenter.Y) > 1e-12 {
		t.Errorf("center = %v, want %v", center, wantCenter)
	}
	if math.Abs(r-wantR) > 1e-12 {
		t.Errorf("R = %v, want %v", r, wantR)
	}
}

func TestCircumcircleRejects(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
	}{
		{"collinear", Point{0, 0}, Point{1, 0}, Point{2, 0}},
		// обратный обход той же тройки, что в TestCircumcircleEquilateral:
		// G меняет знак и окружность не принимается
		{"reversed winding", Point{0, 0}, Point{1, 0}, Point{0.5, math.Sqrt(3) / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := circumcircle(tt.a, tt.b, tt.c, testEps); ok {
				t.Errorf("circumcircle(%v, %v, %v) accepted, want rejected", tt.a, tt.b, tt.c)
			}
		})
	}
}

func TestVertexTouchX(t *testing.T) {
	v := Vertex{P: Point{2, 3}, R: 1.5}
	if got := v.TouchX(); got != 3.5 {
		t.Errorf("TouchX() = %v, want 3.5", got)
	}
}

func TestDividingLine(t *testing.T) {
	sites := []Point{{0, 0}, {1, 0}}
	e := &Edge{L: 0, R: 1}
	p, dir := e.DividingLine(sites)
	if p != (Point{0.5, 0}) {
		t.Errorf("point = %v, want (0.5, 0)", p)
	}
	if dir != (Point{0, -1}) {
		t.Errorf("dir = %v, want (0, -1)", dir)
	}

	// направление обязано держать L слева при обходе B -> E:
	// векторное произведение (dir, l-p) отрицательно в этой ориентации
	l := sites[e.L]
	cross := dir.X*(l.Y-p.Y) - dir.Y*(l.X-p.X)
	if !(cross < 0) {
		t.Errorf("cross(dir, l-p) = %v, want negative", cross)
	}
}
