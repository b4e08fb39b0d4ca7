package main

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
)

func clipBox(cfg Config) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: 0, Hi: cfg.Width},
		Y: r1.Interval{Lo: 0, Hi: cfg.Height},
	}
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (заметающая прямая)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
	)
}

// diagramToEcharts собирает страницу: сайты точками, обрезанные ребра
// ломаными поверх
func diagramToEcharts(d *voronoi.Diagram, segments []voronoi.Segment) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter)

	points := make([]opts.ScatterData, 0, len(d.Sites))
	for _, p := range d.Sites {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Сайты", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, seg := range segments {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries("Границы", []opts.LineData{
			{Value: []float64{seg.A.X, seg.A.Y}},
			{Value: []float64{seg.B.X, seg.B.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)
		scatter.Overlap(line)
	}
	return scatter
}

// writeSVG пишет диаграмму в автономный SVG: ребра, сайты, вершины
func writeSVG(w io.Writer, cfg Config, d *voronoi.Diagram, segments []voronoi.Segment) {
	canvas := svg.New(w)
	canvas.Start(int(cfg.Width), int(cfg.Height))
	canvas.Rect(0, 0, int(cfg.Width), int(cfg.Height), "fill:#1F1F1F")

	for _, seg := range segments {
		canvas.Line(
			int(seg.A.X), int(seg.A.Y),
			int(seg.B.X), int(seg.B.Y),
			"stroke:#6fa8dc;stroke-width:2",
		)
	}
	for _, p := range d.Sites {
		canvas.Circle(int(p.X), int(p.Y), 3, "fill:lightgreen")
	}
	for _, v := range d.Vertices {
		canvas.Circle(int(v.P.X), int(v.P.Y), 2, "fill:#e06666")
	}

	canvas.Text(10, 20,
		fmt.Sprintf("сайтов: %d, вершин: %d, ребер: %d", len(d.Sites), len(d.Vertices), len(d.Edges)),
		"fill:#d3d3d3;font-family:monospace;font-size:12px",
	)
	canvas.End()
}
