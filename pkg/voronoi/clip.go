package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// Segment - кусок ребра, попавший в окно обрезки
type Segment struct {
	A    r2.Point
	B    r2.Point
	Edge *Edge
}

// ClipEdges обрезает ребра диаграммы по прямоугольнику box и возвращает
// отрезки для отрисовки. Несвязанные концы продлеваются вдоль
// серединного перпендикуляра заведомо дальше окна и режутся как
// обычные отрезки. Ребро целиком вне окна пропадает
func ClipEdges(d *Diagram, box r2.Rect) []Segment {
	segs := make([]Segment, 0, len(d.Edges))
	for _, e := range d.Edges {
		a, b, ok := edgeSpan(d.Sites, e, box)
		if !ok {
			continue
		}
		if seg, ok := clipSegment(a, b, box); ok {
			seg.Edge = e
			segs = append(segs, seg)
		}
	}
	return segs
}

// edgeSpan возвращает конечный отрезок, накрывающий видимую часть ребра
func edgeSpan(sites []Point, e *Edge, box r2.Rect) (a, b r2.Point, ok bool) {
	if e.B != nil && e.E != nil {
		return r2.Point{X: e.B.P.X, Y: e.B.P.Y}, r2.Point{X: e.E.P.X, Y: e.E.P.Y}, true
	}

	p, dir := e.DividingLine(sites)
	norm := math.Hypot(dir.X, dir.Y)
	if norm == 0 {
		return r2.Point{}, r2.Point{}, false
	}
	u := r2.Point{X: dir.X / norm, Y: dir.Y / norm}
	center := box.Center()

	switch {
	case e.B != nil:
		a = r2.Point{X: e.B.P.X, Y: e.B.P.Y}
		b = a.Add(u.Mul(reach(a, center, box)))
	case e.E != nil:
		b = r2.Point{X: e.E.P.X, Y: e.E.P.Y}
		a = b.Sub(u.Mul(reach(b, center, box)))
	default:
		m := r2.Point{X: p.X, Y: p.Y}
		ext := reach(m, center, box)
		a = m.Sub(u.Mul(ext))
		b = m.Add(u.Mul(ext))
	}
	return a, b, true
}

// reach - длина, с которой луч из from гарантированно выходит за окно
func reach(from, center r2.Point, box r2.Rect) float64 {
	return from.Sub(center).Norm() + box.X.Length() + box.Y.Length() + 1
}

// clipSegment - параметрическая обрезка отрезка по окну
func clipSegment(a, b r2.Point, box r2.Rect) (Segment, bool) {
	t0 := 0.0
	t1 := 1.0
	dx := b.X - a.X
	dy := b.Y - a.Y

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	if !clip(-dx, a.X-box.X.Lo) ||
		!clip(dx, box.X.Hi-a.X) ||
		!clip(-dy, a.Y-box.Y.Lo) ||
		!clip(dy, box.Y.Hi-a.Y) {
		return Segment{}, false
	}
	return Segment{
		A: r2.Point{X: a.X + t0*dx, Y: a.Y + t0*dy},
		B: r2.Point{X: a.X + t1*dx, Y: a.Y + t1*dy},
	}, true
}
