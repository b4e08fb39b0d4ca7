package voronoi

import (
	"fmt"
	"sort"

	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"go.uber.org/zap"
)

// Sweepline - состояние заметания: береговая линия, очередь событий
// круга и накапливаемый выход. Алгоритм строго последовательный,
// очередь событий задает полный порядок работы
type Sweepline struct {
	eps   float64
	sites []Point

	beach beachLine
	queue *eventQueue

	verts vertexSet
	edges []*Edge
	cells []*Cell

	log *logger.ZapLogger
}

// Compute строит диаграмму Вороного для сайтов, уже отсортированных
// лексикографически (x, затем y) с допуском eps. Сортировка и дедупликация
// на вызывающей стороне - см. PrepareSites. Два сайта, совпадающих
// в пределах eps, ломают порядок береговой линии, поведение не определено.
//
// Сайт, чья пробная точка попадает ровно в существующий излом, делит
// дугу над этим изломом; вход никогда не возмущается - если важна
// раскладка в таком случае, подмешайте шум заранее
func Compute(points []Point, eps float64, log *logger.ZapLogger) *Diagram {
	if log == nil {
		log = logger.Nop()
	}
	s := &Sweepline{
		eps:   eps,
		sites: points,
		beach: beachLine{sites: points, eps: eps},
		queue: newEventQueue(eps),
		verts: vertexSet{eps: eps},
		log:   log,
	}

	log.Info("[sw] Заметание запущено", zap.Int("sites", len(points)), zap.Float64("eps", eps))

	for i := range points {
		p := points[i]
		// события, наступающие раньше нового сайта, дожимаем первыми
		for !s.queue.empty() && s.prior(s.queue.first.vertex, p) {
			s.finishEdges(s.queue.first)
		}
		s.beginCell(Site(i))
	}
	for !s.queue.empty() {
		s.finishEdges(s.queue.first)
	}

	log.Info("[sw] Заметание завершено",
		zap.Int("vertices", len(s.verts.items)),
		zap.Int("edges", len(s.edges)),
		zap.Int("cells", len(s.cells)),
	)

	return &Diagram{
		Sites:    s.sites,
		Vertices: s.verts.items,
		Edges:    s.edges,
		Cells:    s.cells,
	}
}

// PrepareSites сортирует точки лексикографически с допуском eps
// и выбрасывает дубликаты в пределах eps. Вставка в упорядоченное
// множество, как в генераторе исходных точек
func PrepareSites(points []Point, eps float64) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		i := sort.Search(len(out), func(i int) bool {
			return !pointLess(out[i], p, eps)
		})
		if i < len(out) && !pointLess(p, out[i], eps) {
			continue
		}
		out = append(out, Point{})
		copy(out[i+1:], out[i:])
		out[i] = p
	}
	return out
}

// prior: событие наступает раньше сайта p, если x касания строго меньше
// p.x с допуском, либо x совпадают и y центра меньше p.y
func (s *Sweepline) prior(v *Vertex, p Point) bool {
	if v.TouchX()+s.eps < p.X {
		return true
	}
	if p.X+s.eps < v.TouchX() {
		return false
	}
	return v.P.Y+s.eps < p.Y
}

// beginCell обрабатывает событие сайта: заводит ячейку и вставляет
// новую дугу в береговую линию
func (s *Sweepline) beginCell(site Site) {
	s.cells = append(s.cells, newCell(site))
	p := s.sites[site]

	s.log.Debug("[sw-site] Новый сайт", zap.Int("site", int(site)), zap.Any("p", p))

	if s.beach.tree.empty() && len(s.cells) == 1 {
		// первый сайт: изломов еще нет
		return
	}

	// ищем дугу над p: первый излом не строго выше p
	hi := s.beach.locate(p)

	var owner Site
	switch {
	case hi != nil:
		// пустой диапазон - p строго внутри дуги hi.l; непустой -
		// p совпал с изломом, новая дуга крепится над ним.
		// Владелец в обоих случаях один
		owner = hi.endpoint().l
	case !s.beach.tree.empty():
		// p ниже всех изломов: делится нижняя дуга
		owner = s.beach.tree.last().endpoint().r
	default:
		// второй сайт: делится дуга единственной ячейки
		owner = s.cells[0].Site
	}

	// событие круга на делимой дуге больше не наступит
	if hi != nil {
		ep := hi.endpoint()
		if prev := hi.previous; ep.event != nil && prev != nil && prev.endpoint().event == ep.event {
			s.log.Debug("[sw-site] Снимаем событие делимой дуги", zap.Any("vertex", ep.event.P))
			s.deleteEvent(ep.event)
		}
	}

	edge := s.createEdge(owner, site)

	// Позиция вставки известна точно, компаратору ничего угадывать
	// не приходится
	var anchor *rbNode
	if hi != nil {
		anchor = hi.previous
	} else {
		anchor = s.beach.tree.last()
	}
	m1 := s.beach.tree.insertSuccessor(anchor, &endpoint{l: owner, r: site, edge: edge})

	if !(s.sites[owner].X+s.eps < p.X) {
		// вертикальная пара: параболы с общим x пересекаются ровно
		// один раз, нижней копии делимой дуги не существует
		if prev := m1.previous; prev != nil {
			s.checkEvent(prev, m1)
		}
		if next := m1.next; next != nil {
			s.checkEvent(m1, next)
		}
		return
	}

	// две копии делимой дуги вокруг новой: оба излома ведут одно ребро
	m2 := s.beach.tree.insertSuccessor(m1, &endpoint{l: site, r: owner, edge: edge})

	// проверяем две новые соседние тройки
	if prev := m1.previous; prev != nil {
		s.checkEvent(prev, m1)
	}
	if next := m2.next; next != nil {
		s.checkEvent(m2, next)
	}
}

// createEdge создает растущее ребро между ячейками l и r и подшивает
// его в оба кольца: левой ячейке в начало, правой в конец
func (s *Sweepline) createEdge(l, r Site) *Edge {
	edge := &Edge{L: l, R: r}
	s.edges = append(s.edges, edge)
	s.cells[l].pushFront(edge)
	s.cells[r].pushBack(edge)
	return edge
}

// makeVertex строит вершину-окружность тройки сайтов, дедуплицируя
// по центру. fresh == false, когда вершина уже была в множестве
func (s *Sweepline) makeVertex(a, b, c Point) (v *Vertex, fresh bool) {
	center, r, ok := circumcircle(a, b, c, s.eps)
	if !ok {
		return nil, false
	}
	return s.verts.insert(center, r)
}

// checkEvent проверяет соседнюю пару изломов (l, r) с общей средней
// дугой на событие круга
func (s *Sweepline) checkEvent(ln, rn *rbNode) {
	l := ln.endpoint()
	r := rn.endpoint()
	if l.r != r.l {
		panic(fmt.Sprintf("voronoi: non-adjacent endpoint pair (%d,%d)-(%d,%d)", l.l, l.r, r.l, r.r))
	}

	v, fresh := s.makeVertex(s.sites[l.l], s.sites[l.r], s.sites[r.r])
	if v == nil {
		return
	}

	if ev := s.queue.find(v); ev != nil {
		if l.event == v && r.event == v {
			// пара уже ведет это событие
			return
		}
		// соокружные сайты: вторая пара сошлась в ту же вершину.
		// Излом в событии больше не хранится, диапазон при финализации
		// найдется прозрачным поиском
		s.log.Debug("[sw-check] Соокружная вершина", zap.Any("vertex", v.P))
		if l.event != nil && l.event != v {
			s.deleteEvent(l.event)
		}
		if r.event != nil && r.event != v {
			s.deleteEvent(r.event)
		}
		l.event = v
		r.event = v
		ev.ep = nil
		return
	}

	// у соседей могут быть свои ожидания: выживает то событие,
	// что наступит раньше
	if l.event != nil {
		if s.queue.less(v, l.event) {
			s.deleteEvent(l.event)
		} else {
			if fresh {
				s.verts.erase(v)
			}
			return
		}
	}
	if r.event != nil {
		if s.queue.less(v, r.event) {
			s.deleteEvent(r.event)
		} else {
			if fresh {
				s.verts.erase(v)
			}
			return
		}
	}

	l.event = v
	r.event = v
	s.queue.push(&circleEvent{vertex: v, ep: rn, shared: !fresh})
	s.log.Debug("[sw-check] Событие поставлено",
		zap.Any("vertex", v.P), zap.Float64("touch", v.TouchX()))
}

// deleteEvent снимает событие вершины v: обнуляет ссылки на него
// в изломах, убирает событие из очереди и вершину из множества,
// если вершина не помечена shared (уже закреплена в выходе)
func (s *Sweepline) deleteEvent(v *Vertex) {
	ev := s.queue.find(v)
	if ev == nil {
		panic(fmt.Sprintf("voronoi: deleting unknown event at %v", v.P))
	}
	var first, last *rbNode
	if ev.ep != nil && ev.ep.previous != nil {
		first, last = ev.ep.previous, ev.ep.next
	} else {
		first, last = s.beach.vertexRange(v)
	}
	for n := first; n != last; n = n.next {
		if n.endpoint().event == v {
			n.endpoint().event = nil
		}
	}
	s.queue.remove(ev)
	if !ev.shared {
		s.verts.erase(v)
	}
}

// truncEdge закрывает один конец ребра вершиной v. Когда оба конца
// свободны, взаимное положение сайтов решает, начало это или конец:
// обход B -> E обязан оставлять L слева
func (s *Sweepline) truncEdge(e *Edge, v *Vertex) {
	if e.B == nil {
		if e.E == nil {
			l := s.sites[e.L]
			r := s.sites[e.R]
			if r.X < l.X {
				if v.P.Y < l.Y {
					e.B = v
					return
				}
			} else if l.X < r.X {
				if r.Y < v.P.Y {
					e.B = v
					return
				}
			}
			e.E = v
			return
		}
		e.B = v
		return
	}
	if e.E != nil {
		panic(fmt.Sprintf("voronoi: edge (%d,%d) already closed", e.L, e.R))
	}
	e.E = v
}

// finishEdges обрабатывает событие круга: все изломы, сошедшиеся
// в вершине, снимаются одним проходом, их ребра получают общий конец,
// на месте диапазона встает один новый излом между выжившими дугами.
// Диапазон из k > 2 изломов дает вершину степени k+1 - соокружные
// сайты обрабатываются той же веткой
func (s *Sweepline) finishEdges(ev *circleEvent) {
	v := ev.vertex

	var first, last *rbNode
	if ev.ep != nil && ev.ep.previous != nil {
		first, last = ev.ep.previous, ev.ep.next
	} else {
		first, last = s.beach.vertexRange(v)
	}
	s.queue.remove(ev)

	s.log.Debug("[sw-circle] Финализация вершины",
		zap.Any("vertex", v.P), zap.Float64("R", v.R))

	lc := first.endpoint().l
	rc := lc
	anchor := first.previous
	for n := first; n != last; {
		next := n.next
		ep := n.endpoint()
		if ep.event != nil && ep.event != v {
			// чужое событие на исчезающем изломе недействительно
			s.deleteEvent(ep.event)
		}
		ep.event = nil
		s.truncEdge(ep.edge, v)
		rc = ep.r
		s.beach.tree.removeNode(n)
		n = next
	}

	edge := s.createEdge(lc, rc)
	edge.B = v
	rep := s.beach.tree.insertSuccessor(anchor, &endpoint{l: lc, r: rc, edge: edge})

	if prev := rep.previous; prev != nil {
		s.checkEvent(prev, rep)
	}
	if next := rep.next; next != nil {
		s.checkEvent(rep, next)
	}
}
