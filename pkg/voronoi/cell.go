package voronoi

// Cell - сайт и циклический список инцидентных ребер.
// Ребра добавляются по ходу заметания: для левой ячейки в начало,
// для правой в конец, так итоговый порядок получается CCW
type Cell struct {
	Site  Site
	Edges []*Edge
}

func newCell(site Site) *Cell {
	return &Cell{Site: site}
}

func (c *Cell) pushFront(e *Edge) {
	c.Edges = append(c.Edges, nil)
	copy(c.Edges[1:], c.Edges)
	c.Edges[0] = e
}

func (c *Cell) pushBack(e *Edge) {
	c.Edges = append(c.Edges, e)
}
