package voronoi

import (
	"fmt"
	"math"
)

// Точка на плоскости
type Point struct {
	X float64
	Y float64
}

// Сайт - стабильный индекс входной точки
type Site int

// Vertex - описанная окружность: центр и радиус.
// Заметающая прямая впервые касается окружности при x = P.X + R
type Vertex struct {
	P Point
	R float64
}

// TouchX возвращает координату касания окружности заметающей прямой
func (v *Vertex) TouchX() float64 {
	return v.P.X + v.R
}

// Edge - ориентированное ребро между сайтами L и R.
// При обходе от B к E сайт L остается слева, R - справа.
// nil на конце означает, что ребро уходит в бесконечность
type Edge struct {
	L Site
	R Site
	B *Vertex
	E *Vertex
}

// DividingLine возвращает серединный перпендикуляр пары сайтов ребра
// в виде точки и направления. Нужен для ребер без вершин (случай двух
// сайтов), у которых иначе нет никакой геометрии. Направление
// согласовано с обходом B -> E
func (e *Edge) DividingLine(sites []Point) (p Point, dir Point) {
	l := sites[e.L]
	r := sites[e.R]
	p = Point{(l.X + r.X) / 2, (l.Y + r.Y) / 2}
	dir = Point{r.Y - l.Y, l.X - r.X}
	return p, dir
}

// pointLess - лексикографическое сравнение с допуском eps:
// p раньше q, если p.x + eps < q.x, либо x совпадают в пределах eps
// и p.y + eps < q.y
func pointLess(l, r Point, eps float64) bool {
	if l.X+eps < r.X {
		return true
	}
	if r.X+eps < l.X {
		return false
	}
	return l.Y+eps < r.Y
}

// circumradius считает радиус через длины сторон: это устойчивее,
// чем расстояние от центра до вершины
func circumradius(a, b, c, eps float64) float64 {
	v := (a + b - c) * (a + c - b) * (b + c - a)
	if !(eps < v) {
		// неравенство треугольника не выполнилось даже с допуском:
		// eps слишком мал для масштаба координат
		panic(fmt.Sprintf("voronoi: degenerate triangle (V=%v, eps=%v)", v, eps))
	}
	return (a * b * c) / math.Sqrt(v*(a+b+c))
}

// circumcircle строит описанную окружность тройки (a, b, c).
// ok == false, если тройка коллинеарна или закручена по часовой -
// такая окружность не пересечет заметающую прямую справа
func circumcircle(a, b, c Point, eps float64) (center Point, r float64, ok bool) {
	A := b.X - a.X
	B := b.Y - a.Y
	C := c.X - b.X
	D := c.Y - b.Y
	G := B*C - A*D
	if !(eps*eps < G) {
		return Point{}, 0, false
	}
	E := c.X - a.X
	F := c.Y - a.Y
	M := A*(a.X+b.X) + B*(a.Y+b.Y)
	N := E*(a.X+c.X) + F*(a.Y+c.Y)
	G += G
	center = Point{(B*N - F*M) / G, (E*M - A*N) / G}
	r = circumradius(math.Hypot(A, B), math.Hypot(C, D), math.Hypot(E, F), eps)
	return center, r, true
}
