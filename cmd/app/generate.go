package main

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
)

// diskSites генерирует n точек, равномерно распределенных в круге:
// нормальная пара задает направление, корень из равномерной величины -
// радиус. Дубликаты отсеет PrepareSites
func diskSites(n int, radius float64, rng *rand.Rand) []voronoi.Point {
	points := make([]voronoi.Point, 0, n)
	for i := 0; i < n; i++ {
		x := rng.NormFloat64()
		y := rng.NormFloat64()
		norm := x*x + y*y
		if norm == 0 {
			points = append(points, voronoi.Point{})
			continue
		}
		scale := radius * math.Sqrt(rng.Float64()/norm)
		points = append(points, voronoi.Point{X: x * scale, Y: y * scale})
	}
	return points
}

// gridSites раскладывает n точек сеткой по прямоугольнику
func gridSites(n int, width, height float64) []voronoi.Point {
	rows := int(math.Sqrt(float64(n)))
	if rows == 0 {
		rows = 1
	}
	cols := (n + rows - 1) / rows

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	points := make([]voronoi.Point, 0, n)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if len(points) == n {
				break
			}
			points = append(points, voronoi.Point{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return points
}

// sitesFor строит набор сайтов по конфигу: случайный круг вписывается
// в окно, сетка заполняет его целиком
func sitesFor(cfg Config, rng *rand.Rand) []voronoi.Point {
	var points []voronoi.Point
	if cfg.Layout == "grid" {
		points = gridSites(cfg.Sites, cfg.Width, cfg.Height)
	} else {
		r := math.Min(cfg.Width, cfg.Height) / 2
		points = diskSites(cfg.Sites, r, rng)
		for i := range points {
			points[i].X += cfg.Width / 2
			points[i].Y += cfg.Height / 2
		}
	}
	return voronoi.PrepareSites(points, cfg.Eps)
}
