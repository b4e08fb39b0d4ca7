package voronoi

import "math"

// endpoint - точка излома береговой линии: пара соседних сайтов (l, r),
// растущее ребро между их ячейками и ссылка на ожидающее событие круга.
// Дуга левее излома принадлежит l, правее (ниже по y) - r
type endpoint struct {
	node  *rbNode
	l     Site
	r     Site
	edge  *Edge
	event *Vertex
}

func (ep *endpoint) bindToNode(node *rbNode) {
	ep.node = node
}

func (ep *endpoint) Node() *rbNode {
	return ep.node
}

func (n *rbNode) endpoint() *endpoint {
	return n.value.(*endpoint)
}

// beachLine - упорядоченная по y последовательность изломов.
// Ключи никогда не перезаписываются: новые изломы вставляются
// позиционно, старые удаляются целиком. Поиск идет спуском от корня
// с вычислением пересечения парабол под текущей директрисой
type beachLine struct {
	tree  rbTree
	sites []Point
	eps   float64
}

// intersectY - y-координата пересечения парабол с фокусами l, r
// и директрисой x = d. Из двух корней выбирается тот, где дуга l
// лежит выше дуги r
func intersectY(l, r Point, d, eps float64) float64 {
	degenerateR := !(r.X+eps < d)
	if !(l.X+eps < d) {
		// l уже на директрисе: ее дуга выродилась в горизонтальный луч
		if degenerateR {
			return (l.Y + r.Y) / 2
		}
		return l.Y
	}
	if degenerateR {
		return r.Y
	}
	ld := l.X - d
	rd := r.X - d
	lb := l.Y / ld
	rb := r.Y / rd
	ld += ld
	rd += rd
	dd := d * d
	lc := (l.X*l.X + l.Y*l.Y - dd) / ld
	rc := (r.X*r.X + r.Y*r.Y - dd) / rd
	b := rb - lb
	c := rc - lc
	if l.X+eps < r.X || r.X+eps < l.X {
		a := (ld - rd) / (ld * rd)
		a += a
		return (b + math.Sqrt(b*b-(a+a)*c)) / a
	}
	// фокусы на одной вертикали: параболы симметричны, квадратный
	// член сокращается
	return c / b
}

func (b *beachLine) intersect(ep *endpoint, d float64) float64 {
	return intersectY(b.sites[ep.l], b.sites[ep.r], d, b.eps)
}

// lowerBound возвращает первый излом, для которого не выполняется less
func (b *beachLine) lowerBound(less func(*endpoint) bool) *rbNode {
	var candidate *rbNode
	node := b.tree.root
	for node != nil {
		if less(node.endpoint()) {
			node = node.right
		} else {
			candidate = node
			node = node.left
		}
	}
	return candidate
}

// locate находит место пробной точки p на береговой линии:
// первый излом, который не строго выше p. nil означает, что p ниже
// всех изломов
func (b *beachLine) locate(p Point) *rbNode {
	return b.lowerBound(func(ep *endpoint) bool {
		return b.intersect(ep, p.X)+b.eps < p.Y
	})
}

// vertexRange возвращает полуинтервал [first, last) изломов,
// сходящихся в вершине v под директрисой v.TouchX()
func (b *beachLine) vertexRange(v *Vertex) (first, last *rbNode) {
	x := v.TouchX()
	y := v.P.Y
	first = b.lowerBound(func(ep *endpoint) bool {
		return b.intersect(ep, x)+b.eps < y
	})
	last = first
	for last != nil && !(y+b.eps < b.intersect(last.endpoint(), x)) {
		last = last.next
	}
	return first, last
}

// endpointBefore - порядок двух изломов без пересчета директрисы.
// Пока дуги двигаются, взаимный порядок несоседних изломов не меняется:
// изломы, которые могли бы пересечься, снимаются событиями круга строго
// раньше. Поэтому достаточно сравнить y самых правых сайтов пар.
// Зеркальная пара (a, b), (b, a) - две копии делимой дуги вокруг новой:
// первым идет излом, у которого l - более ранний сайт
func (b *beachLine) endpointBefore(l, r *endpoint) bool {
	if l.l == r.r && l.r == r.l {
		return pointLess(b.sites[l.l], b.sites[l.r], b.eps)
	}
	if l.r == r.l {
		return true
	}
	if l.l == r.r {
		return false
	}
	if l.l == r.l && l.r == r.r {
		return false
	}
	return b.rightmost(l).Y < b.rightmost(r).Y
}

func (b *beachLine) rightmost(ep *endpoint) Point {
	lp := b.sites[ep.l]
	rp := b.sites[ep.r]
	if pointLess(lp, rp, b.eps) {
		return rp
	}
	return lp
}
